package widgets

import (
	"strings"

	"github.com/young1lin/zstatus/internal/statusline/state"
	"github.com/young1lin/zstatus/internal/statusline/style"
)

// Mode renders the input mode indicator
type Mode struct {
	formats map[string]subformat
	sink    Sink
}

// NewMode creates a mode widget with per-mode formats. "{name}" in a
// format is replaced by the mode name.
func NewMode(formats map[string]string, palette style.Palette, sink Sink) *Mode {
	parsed := make(map[string]subformat, len(formats))
	for mode, format := range formats {
		parsed[mode] = parseSubformat(format, palette)
	}
	return &Mode{formats: parsed, sink: sink}
}

// Render returns the configured text for the mode, or the mode name upper-cased
func (m *Mode) Render(id string, st *state.Snapshot) string {
	if f, ok := m.formats[st.Mode]; ok {
		return f.expand(strings.NewReplacer("{name}", st.Mode))
	}
	return strings.ToUpper(st.Mode)
}

// HandleClick asks the host to cycle the input mode
func (m *Mode) HandleClick(id string, st *state.Snapshot, col int) {
	m.sink.emit(Action{Kind: ActionNextMode, Target: st.Mode, Offset: col})
}
