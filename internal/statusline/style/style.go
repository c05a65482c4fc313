package style

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Reset clears all SGR attributes
var Reset = ansi.Style{}.Reset().String()

// Style is the normalized style of one segment
type Style struct {
	Foreground Color
	Background Color
	Underline  Color
	Effects    Effect
}

// ParseAttributes builds a style from a comma-separated attribute list such
// as "fg=#ff0000,bg=$base,bold". Malformed entries are skipped.
func ParseAttributes(attrs string, palette Palette) Style {
	var s Style
	for _, raw := range strings.Split(attrs, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		if key, value, ok := strings.Cut(token, "="); ok {
			switch strings.TrimSpace(key) {
			case "fg":
				s.Foreground = ParseColor(value, palette)
			case "bg":
				s.Background = ParseColor(value, palette)
			case "us":
				s.Underline = ParseColor(value, palette)
			}
			continue
		}
		if e, ok := ParseEffect(token); ok {
			s.Effects |= e
		}
	}
	return s
}

// IsZero returns true if the style sets nothing
func (s Style) IsZero() bool {
	return s == Style{}
}

// Prefix returns the SGR sequence that turns the style on
func (s Style) Prefix() string {
	var seq ansi.Style
	if s.Foreground.IsSet() {
		seq = seq.ForegroundColor(s.Foreground.terminal())
	}
	if s.Background.IsSet() {
		seq = seq.BackgroundColor(s.Background.terminal())
	}
	if s.Underline.IsSet() {
		seq = seq.UnderlineColor(s.Underline.terminal())
	}
	for _, ec := range effectCodes {
		if s.Effects.Has(ec.effect) {
			seq = ec.apply(seq)
		}
	}
	if len(seq) == 0 {
		return ""
	}
	return seq.String()
}

// Apply wraps text as reset, style-on, text, reset.
// Empty text stays empty so empty regions remain detectable.
func (s Style) Apply(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text) + 32)
	b.WriteString(Reset)
	b.WriteString(s.Prefix())
	b.WriteString(text)
	b.WriteString(Reset)
	return b.String()
}
