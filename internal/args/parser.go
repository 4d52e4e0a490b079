package args

import (
	"fmt"
	"io"
	"strings"

	"github.com/jeeftor/responsive-units/internal/units"
)

// Request is one conversion asked for on the command line. Raw is kept as
// typed so the engine applies its own parsing rules to it.
type Request struct {
	Unit    units.Unit
	Raw     string
	Omitted bool // font unit given without a value
}

// Value is what the engine converts: nil for an omitted value, Raw otherwise
func (r Request) Value() interface{} {
	if r.Omitted {
		return nil
	}
	return r.Raw
}

// String renders the request as unit(raw)
func (r Request) String() string {
	return fmt.Sprintf("%s(%s)", r.Unit, r.Raw)
}

// ParsedArguments represents the result of argument parsing
type ParsedArguments struct {
	Requests []Request
	Source   string // For debugging: shows how args were resolved
}

// ArgumentParser interface for different command argument parsing strategies
type ArgumentParser interface {
	Parse(args []string) (*ParsedArguments, error)
	GetExpectedFormats() []string
	GetDescription() string
}

// ConversionArgumentParser handles convert command arguments
type ConversionArgumentParser struct{}

// NewConversionArgumentParser creates a new conversion argument parser
func NewConversionArgumentParser() *ConversionArgumentParser {
	return &ConversionArgumentParser{}
}

// Parse accepts any mix of
//
//	wp 50 25       unit followed by one or more values
//	wp(50) rem:16  unit and value in one token ("(...)", ":" or "=")
//	50wp 12.5%hp   value with the unit as suffix
func (p *ConversionArgumentParser) Parse(args []string) (*ParsedArguments, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one conversion is required")
	}

	result := &ParsedArguments{}
	var current units.Unit
	pending := false // current unit has not received a value yet
	forms := map[string]bool{}

	// A unit still waiting for its value is complete only for font units,
	// which default to size 0.
	flush := func() error {
		if !pending {
			return nil
		}
		if !current.IsFont() {
			return fmt.Errorf("unit %s needs a value", current)
		}
		result.Requests = append(result.Requests, Request{Unit: current, Omitted: true})
		pending = false
		forms["unit-values"] = true
		return nil
	}

	for _, arg := range args {
		token := strings.TrimSpace(arg)
		if token == "" {
			continue
		}

		if u, err := units.ParseUnit(token); err == nil {
			if err := flush(); err != nil {
				return nil, err
			}
			current, pending = u, true
			continue
		}

		if u, raw, ok := splitCombined(token); ok {
			if err := flush(); err != nil {
				return nil, err
			}
			result.Requests = append(result.Requests, Request{Unit: u, Raw: raw})
			forms["combined"] = true
			continue
		}

		if u, raw, ok := splitSuffix(token); ok {
			if err := flush(); err != nil {
				return nil, err
			}
			result.Requests = append(result.Requests, Request{Unit: u, Raw: raw})
			forms["suffix"] = true
			continue
		}

		if current == "" {
			return nil, fmt.Errorf("value %q has no unit", token)
		}
		result.Requests = append(result.Requests, Request{Unit: current, Raw: token})
		pending = false
		forms["unit-values"] = true
	}

	if err := flush(); err != nil {
		return nil, err
	}
	if len(result.Requests) == 0 {
		return nil, fmt.Errorf("at least one conversion is required")
	}

	names := make([]string, 0, len(forms))
	for _, f := range []string{"unit-values", "combined", "suffix"} {
		if forms[f] {
			names = append(names, f)
		}
	}
	result.Source = fmt.Sprintf("%d request(s) from %s", len(result.Requests), strings.Join(names, "+"))
	return result, nil
}

func (p *ConversionArgumentParser) GetExpectedFormats() []string {
	return []string{
		"rsu convert <unit> <value> [value...]",
		"rsu convert <unit>(<value>) [<unit>:<value>...]",
		"rsu convert <value><unit> [...]",
	}
}

func (p *ConversionArgumentParser) GetDescription() string {
	return "Convert values with wp, hp, vw, vh (percentages) or rem, rf (font sizes)"
}

// splitCombined handles wp(50), wp:50 and wp=50
func splitCombined(token string) (units.Unit, string, bool) {
	if name, rest, ok := strings.Cut(token, "("); ok && strings.HasSuffix(rest, ")") {
		u, err := units.ParseUnit(name)
		if err != nil {
			return "", "", false
		}
		return u, strings.TrimSuffix(rest, ")"), true
	}

	for _, sep := range []string{":", "="} {
		if name, raw, ok := strings.Cut(token, sep); ok {
			u, err := units.ParseUnit(name)
			if err != nil {
				return "", "", false
			}
			return u, raw, true
		}
	}
	return "", "", false
}

// splitSuffix handles 50wp and 12.5%hp. The value part must end in a digit,
// a dot or a percent sign.
func splitSuffix(token string) (units.Unit, string, bool) {
	lower := strings.ToLower(token)
	for _, u := range units.AllUnits {
		name := string(u)
		if !strings.HasSuffix(lower, name) || len(lower) == len(name) {
			continue
		}
		raw := token[:len(token)-len(name)]
		last := raw[len(raw)-1]
		if (last >= '0' && last <= '9') || last == '.' || last == '%' {
			return u, raw, true
		}
	}
	return "", "", false
}

// FormatParseError describes err together with the formats parser accepts
func FormatParseError(w io.Writer, err error, parser ArgumentParser) {
	fmt.Fprintf(w, "Error: %v\n\n", err)
	fmt.Fprintf(w, "Expected formats:\n")
	for _, format := range parser.GetExpectedFormats() {
		fmt.Fprintf(w, "  %s\n", format)
	}
	fmt.Fprintf(w, "\nDescription: %s\n", parser.GetDescription())
}
