package units

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cast"
)

// leadingNumber matches the longest numeric prefix a lenient float parser
// accepts: optional sign, then Infinity or a decimal with optional exponent.
var leadingNumber = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// ParsePercent normalizes a percentage given as a Go number or a numeric
// string such as "50", "50%" or " 12.5% ". Input without a usable leading
// number (including nil) yields NaN; callers get NaN back from the
// conversion rather than an error.
func ParsePercent(v interface{}) float64 {
	if v == nil {
		return math.NaN()
	}
	return parseValue(v)
}

// ParseSize is ParsePercent for font sizes, where an omitted value (nil)
// means 0.
func ParseSize(v interface{}) float64 {
	if v == nil {
		return 0
	}
	return parseValue(v)
}

func parseValue(v interface{}) float64 {
	switch x := v.(type) {
	case string:
		return ParseLeadingFloat(strings.TrimSuffix(strings.TrimRightFunc(x, unicode.IsSpace), "%"))
	case []byte:
		return parseValue(string(x))
	case bool:
		return math.NaN()
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return math.NaN()
	}
	return f
}

// ParseLeadingFloat parses the longest numeric prefix of s after leading
// whitespace, ignoring whatever follows ("12px" is 12). It returns NaN when
// there is no numeric prefix. Overflowing exponents saturate to ±Inf.
func ParseLeadingFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	m := leadingNumber.FindString(s)
	if m == "" {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}
