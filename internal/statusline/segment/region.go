package segment

import (
	"strings"

	"github.com/young1lin/zstatus/internal/statusline/state"
	"github.com/young1lin/zstatus/internal/statusline/widget"
)

// Region is an ordered run of segments
type Region []*Segment

// Render concatenates the rendered segments in order
func (r Region) Render(reg *widget.Registry, st *state.Snapshot) string {
	var b strings.Builder
	for _, seg := range r {
		b.WriteString(seg.Render(reg, st))
	}
	return b.String()
}

// CacheStats counts segments served from cache by the last Render
func (r Region) CacheStats() (hits, misses int) {
	for _, seg := range r {
		if seg.Cached() {
			hits++
		} else {
			misses++
		}
	}
	return hits, misses
}

// Hit locates the placeholder under a column relative to the region start.
// It returns the placeholder id and the column offset inside its text.
func (r Region) Hit(reg *widget.Registry, st *state.Snapshot, col int) (string, int, bool) {
	offset := 0
	for _, seg := range r {
		spans, width := seg.Spans(reg, st)
		for _, sp := range spans {
			if col >= offset+sp.Start && col < offset+sp.End {
				return sp.ID, col - offset - sp.Start, true
			}
		}
		offset += width
	}
	return "", 0, false
}
