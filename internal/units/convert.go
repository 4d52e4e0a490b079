package units

import (
	"fmt"
	"strings"
)

// Unit names one conversion.
type Unit string

const (
	UnitWp  Unit = "wp"
	UnitHp  Unit = "hp"
	UnitVw  Unit = "vw"
	UnitVh  Unit = "vh"
	UnitRem Unit = "rem"
	UnitRf  Unit = "rf"
)

// AllUnits lists the conversions in display order.
var AllUnits = []Unit{UnitWp, UnitHp, UnitVw, UnitVh, UnitRem, UnitRf}

// ParseUnit resolves a case-insensitive unit name.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllUnits {
		if u == known {
			return u, nil
		}
	}
	return "", fmt.Errorf("unknown unit %q (want one of wp, hp, vw, vh, rem, rf)", s)
}

// IsFont reports whether the unit takes a font size rather than a percentage.
func (u Unit) IsFont() bool {
	return u == UnitRem || u == UnitRf
}

// Convert parses raw with the unit's input rules and applies the unit.
// Percent units treat a missing value as NaN, font units as 0.
func (e Engine) Convert(u Unit, raw interface{}) float64 {
	switch u {
	case UnitWp:
		return e.Wp(ParsePercent(raw))
	case UnitHp:
		return e.Hp(ParsePercent(raw))
	case UnitVw:
		return e.Vw(ParsePercent(raw))
	case UnitVh:
		return e.Vh(ParsePercent(raw))
	case UnitRem:
		return e.Rem(ParseSize(raw))
	case UnitRf:
		return e.Rf(ParseSize(raw))
	}
	panic(fmt.Sprintf("units: unhandled unit %q", u))
}
