// Package segment parses format strings into styled segments and renders them
// Segment Layer: parsing, per-segment caching and region composition
package segment

import (
	"strings"

	"github.com/young1lin/zstatus/internal/statusline/render"
	"github.com/young1lin/zstatus/internal/statusline/state"
	"github.com/young1lin/zstatus/internal/statusline/style"
	"github.com/young1lin/zstatus/internal/statusline/widget"
)

// Placeholder is one {identifier} occurrence inside segment content
type Placeholder struct {
	ID     string
	Family string
	Mask   state.Mask
	start  int // byte offset of '{' in content
	end    int // byte offset just past '}'
}

// Span is the column range a placeholder occupies in rendered text
type Span struct {
	ID    string
	Start int
	End   int
}

// Segment is a styled run of literal and placeholder content
type Segment struct {
	Style   style.Style
	Content string

	placeholders []Placeholder
	mask         state.Mask

	rendered bool
	hit      bool
	cached   string
	memo     map[string]string
}

// New creates a segment and precomputes its dependency mask
func New(st style.Style, content string) *Segment {
	s := &Segment{
		Style:   st,
		Content: content,
		memo:    make(map[string]string),
	}
	s.placeholders = findPlaceholders(content)
	for _, p := range s.placeholders {
		s.mask |= p.Mask
	}
	return s
}

// Mask returns the dependency mask
func (s *Segment) Mask() state.Mask {
	return s.mask
}

// Placeholders returns the placeholders in content order
func (s *Segment) Placeholders() []Placeholder {
	return s.placeholders
}

// Cached reports whether the last Render was served from cache
func (s *Segment) Cached() bool {
	return s.hit
}

// stale reports whether the cached render can not be reused
func (s *Segment) stale(changed state.Mask) bool {
	if !s.rendered {
		return true
	}
	if changed.Intersects(state.Always) || s.mask.Intersects(state.Always) {
		return true
	}
	return s.mask.Intersects(changed)
}

// Render returns the styled text for the segment, reusing the cached
// render when none of its dependencies changed
func (s *Segment) Render(reg *widget.Registry, st *state.Snapshot) string {
	if !s.stale(st.Changed) {
		s.hit = true
		return s.cached
	}
	s.hit = false

	var b strings.Builder
	last := 0
	for _, p := range s.placeholders {
		b.WriteString(s.Content[last:p.start])
		b.WriteString(s.resolve(p, reg, st))
		last = p.end
	}
	b.WriteString(s.Content[last:])

	s.cached = s.Style.Apply(b.String())
	s.rendered = true
	return s.cached
}

// resolve returns the placeholder text, from memo when its family is unchanged
func (s *Segment) resolve(p Placeholder, reg *widget.Registry, st *state.Snapshot) string {
	fresh := st.Changed.Intersects(state.Always) || p.Mask.Intersects(state.Always) || p.Mask.Intersects(st.Changed)
	if v, ok := s.memo[p.ID]; ok && !fresh {
		return v
	}

	var v string
	if w, ok := reg.Get(p.ID); ok {
		v = w.Render(p.ID, st)
	} else {
		v = widget.UnknownText(p.ID)
	}
	s.memo[p.ID] = v
	return v
}

// Spans renders the segment and returns the column span of every
// placeholder within its style-stripped text, plus the total width
func (s *Segment) Spans(reg *widget.Registry, st *state.Snapshot) ([]Span, int) {
	s.Render(reg, st)
	if s.cached == "" {
		return nil, 0
	}

	spans := make([]Span, 0, len(s.placeholders))
	col := 0
	last := 0
	for _, p := range s.placeholders {
		col += render.Measure(s.Content[last:p.start])
		w := render.Measure(s.memo[p.ID])
		spans = append(spans, Span{ID: p.ID, Start: col, End: col + w})
		col += w
		last = p.end
	}
	col += render.Measure(s.Content[last:])
	return spans, col
}

