package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ColorSpec names a colour: an SVG 1.1 colour name ("red",
// "steelblue"), a single-letter plotting alias ("r", "k"), or hex
// notation ("#ff8800", "#f80"). Resolution to an RGB triplet happens
// once, before any drawing.
type ColorSpec string

// RGB builds a ColorSpec from an explicit triplet.
func RGB(r, g, b uint8) ColorSpec {
	return ColorSpec(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// aliases are the single-letter colour shorthands common in plotting
// tools.
var aliases = map[string]string{
	"r": "red",
	"g": "green",
	"b": "blue",
	"c": "cyan",
	"m": "magenta",
	"y": "yellow",
	"k": "black",
	"w": "white",
}

// Resolve maps the spec to an RGB triplet. Names are case-insensitive;
// hex accepts #rgb and #rrggbb.
func (s ColorSpec) Resolve() (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(string(s)))
	if name == "" {
		return color.RGBA{}, fmt.Errorf("empty colour spec")
	}

	if full, ok := aliases[name]; ok {
		name = full
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}

	if strings.HasPrefix(name, "#") {
		return parseHex(name)
	}

	return color.RGBA{}, fmt.Errorf("unknown colour %q", string(s))
}

// Hex renders the resolved colour back to #rrggbb form, which is what
// HTML-oriented backends consume.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func parseHex(s string) (color.RGBA, error) {
	digits := s[1:]
	switch len(digits) {
	case 3:
		// #f80 expands to #ff8800
		var expanded strings.Builder
		for _, r := range digits {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		digits = expanded.String()
	case 6:
		// already full form
	default:
		return color.RGBA{}, fmt.Errorf("hex colour %q must have 3 or 6 digits", s)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("hex colour %q: %v", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
