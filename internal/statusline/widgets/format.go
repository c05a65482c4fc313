package widgets

import (
	"strings"

	"github.com/young1lin/zstatus/internal/statusline/segment"
	"github.com/young1lin/zstatus/internal/statusline/style"
)

// subformat is a widget-level format string split into styled parts.
// Parts without a "#[...]" directive are emitted as plain text so the
// enclosing region style carries over.
type subformat []*segment.Segment

func parseSubformat(format string, palette style.Palette) subformat {
	return subformat(segment.Parse(format, palette))
}

// expand substitutes placeholders in every part and applies its style.
// A nil replacer leaves the content as is.
func (f subformat) expand(r *strings.Replacer) string {
	var b strings.Builder
	for _, part := range f {
		content := part.Content
		if r != nil {
			content = r.Replace(content)
		}
		if part.Style.IsZero() {
			b.WriteString(content)
			continue
		}
		b.WriteString(part.Style.Apply(content))
	}
	return b.String()
}

// orDefault returns value, or fallback when value is empty
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
