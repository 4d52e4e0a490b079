package units

import "strings"

// Platform is the host platform tag supplied by the adapter. The engine
// never detects it.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
	PlatformWindows Platform = "windows"
	PlatformMacOS   Platform = "macos"
	PlatformUnknown Platform = "unknown"
)

// Platforms lists every known tag in display order.
var Platforms = []Platform{PlatformIOS, PlatformAndroid, PlatformWeb, PlatformWindows, PlatformMacOS}

// ParsePlatform maps a case-insensitive tag to a Platform. Anything
// unrecognised is PlatformUnknown.
func ParsePlatform(s string) Platform {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case PlatformIOS, PlatformAndroid, PlatformWeb, PlatformWindows, PlatformMacOS:
		return p
	case "darwin":
		return PlatformMacOS
	default:
		return PlatformUnknown
	}
}

// Next cycles through Platforms; used by the live view.
func (p Platform) Next() Platform {
	for i, candidate := range Platforms {
		if candidate == p {
			return Platforms[(i+1)%len(Platforms)]
		}
	}
	return Platforms[0]
}

func (p Platform) String() string {
	if p == "" {
		return string(PlatformUnknown)
	}
	return string(p)
}
