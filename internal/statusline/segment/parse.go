package segment

import (
	"regexp"
	"strings"

	"github.com/young1lin/zstatus/internal/statusline/style"
	"github.com/young1lin/zstatus/internal/statusline/widget"
)

const styleOpen = "#["

var placeholderPattern = regexp.MustCompile(`\{([a-z_0-9]+)\}`)

// Parse splits one region's format string into segments in render order.
// Text before the first "#[" becomes a style-less segment. Each "#[" slice
// is split on its first "]": the prefix is the attribute list, the rest is
// content. A slice without "]" is kept as unstyled text, minus the "#[".
func Parse(format string, palette style.Palette) []*Segment {
	parts := strings.Split(format, styleOpen)

	segments := make([]*Segment, 0, len(parts))
	if parts[0] != "" {
		segments = append(segments, New(style.Style{}, parts[0]))
	}

	for _, part := range parts[1:] {
		attrs, content, ok := strings.Cut(part, "]")
		if !ok {
			segments = append(segments, New(style.Style{}, part))
			continue
		}
		segments = append(segments, New(style.ParseAttributes(attrs, palette), content))
	}
	return segments
}

// ParseStyle returns the style of the first bracket in a format string.
// Used for formats that only carry a style, such as the spacer.
func ParseStyle(format string, palette style.Palette) style.Style {
	for _, seg := range Parse(format, palette) {
		if !seg.Style.IsZero() {
			return seg.Style
		}
	}
	return style.Style{}
}

func findPlaceholders(content string) []Placeholder {
	matches := placeholderPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return nil
	}

	out := make([]Placeholder, 0, len(matches))
	for _, m := range matches {
		id := content[m[2]:m[3]]
		family := widget.Family(id)
		out = append(out, Placeholder{
			ID:     id,
			Family: family,
			Mask:   widget.FamilyMask(family),
			start:  m[0],
			end:    m[1],
		})
	}
	return out
}
