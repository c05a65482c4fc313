// Package style provides the color and effect model for the statusline
// Style Layer: token parsing and SGR generation
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ColorKind defines how a color was specified
type ColorKind uint8

const (
	ColorNone    ColorKind = iota // terminal default
	ColorNamed                    // 8/16 named colors
	ColorIndexed                  // 256-color palette
	ColorRGB                      // 24-bit truecolor
)

// Color represents a resolved color token.
// Alias is set when the color was reached through a palette reference;
// the other fields then hold the resolved target.
type Color struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
	Alias   string
}

// Palette maps alias names to raw color tokens
type Palette map[string]string

// namedColors lists the 16 named colors in index order
var namedColors = []string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright_black", "bright_red", "bright_green", "bright_yellow",
	"bright_blue", "bright_magenta", "bright_cyan", "bright_white",
}

// IsSet returns true if the color is not the terminal default
func (c Color) IsSet() bool {
	return c.Kind != ColorNone
}

// Named creates a named color (index 0-15)
func Named(index uint8) Color {
	if int(index) >= len(namedColors) {
		return Color{}
	}
	return Color{Kind: ColorNamed, Index: index}
}

// Indexed creates a 256-palette color
func Indexed(index uint8) Color {
	return Color{Kind: ColorIndexed, Index: index}
}

// RGB creates a truecolor color
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// ParseColor resolves a color token. Unknown or malformed tokens return the
// zero Color. Aliases are resolved exactly once against the palette; an alias
// pointing at another alias does not resolve.
func ParseColor(token string, palette Palette) Color {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "$") {
		name := token[1:]
		raw, ok := palette[name]
		if !ok || strings.HasPrefix(strings.TrimSpace(raw), "$") {
			return Color{}
		}
		c := parseDirect(raw)
		if !c.IsSet() {
			return Color{}
		}
		c.Alias = name
		return c
	}
	return parseDirect(token)
}

func parseDirect(token string) Color {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "#") {
		return parseHex(token[1:])
	}
	lower := strings.ToLower(token)
	for i, name := range namedColors {
		if lower == name {
			return Named(uint8(i))
		}
	}
	if n, err := strconv.Atoi(token); err == nil && n >= 0 && n <= 255 {
		return Indexed(uint8(n))
	}
	return Color{}
}

func parseHex(hex string) Color {
	if len(hex) != 6 {
		return Color{}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// RenderColor renders a color back to its token form
func RenderColor(c Color) string {
	if c.Alias != "" {
		return "$" + c.Alias
	}
	switch c.Kind {
	case ColorNamed:
		return namedColors[c.Index]
	case ColorIndexed:
		return strconv.Itoa(int(c.Index))
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	default:
		return ""
	}
}

// terminal converts the color to its x/ansi form
func (c Color) terminal() ansi.Color {
	switch c.Kind {
	case ColorNamed:
		return ansi.BasicColor(c.Index)
	case ColorIndexed:
		return ansi.ExtendedColor(c.Index)
	case ColorRGB:
		return ansi.TrueColor(uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
	default:
		return nil
	}
}
