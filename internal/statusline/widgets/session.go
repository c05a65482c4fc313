package widgets

import (
	"strings"

	"github.com/young1lin/zstatus/internal/statusline/config"
	"github.com/young1lin/zstatus/internal/statusline/state"
	"github.com/young1lin/zstatus/internal/statusline/style"
)

// Session renders the current session name
type Session struct {
	sink Sink
}

// NewSession creates a session widget
func NewSession(sink Sink) *Session {
	return &Session{sink: sink}
}

// Render returns the session name
func (s *Session) Render(id string, st *state.Snapshot) string {
	return st.Session
}

// HandleClick asks the host to switch to the session after the current one
func (s *Session) HandleClick(id string, st *state.Snapshot, col int) {
	if len(st.Sessions) < 2 {
		return
	}
	next := 0
	for i, name := range st.Sessions {
		if name == st.Session {
			next = (i + 1) % len(st.Sessions)
			break
		}
	}
	s.sink.emit(Action{Kind: ActionSwitchSession, Target: st.Sessions[next], Index: next, Offset: col})
}

// SwapLayout renders the active swap layout name
type SwapLayout struct {
	format      subformat
	hideIfEmpty bool
	sink        Sink
}

// NewSwapLayout creates a swap layout widget
func NewSwapLayout(cfg config.SwapLayoutConfig, palette style.Palette, sink Sink) *SwapLayout {
	return &SwapLayout{
		format:      parseSubformat(cfg.Format, palette),
		hideIfEmpty: cfg.HideIfEmpty,
		sink:        sink,
	}
}

// Render returns the formatted swap layout name
func (s *SwapLayout) Render(id string, st *state.Snapshot) string {
	name := st.SwapLayout
	if name == "" && s.hideIfEmpty {
		return ""
	}
	if len(s.format) == 0 {
		return name
	}
	return s.format.expand(strings.NewReplacer("{name}", name))
}

// HandleClick asks the host to advance the swap layout
func (s *SwapLayout) HandleClick(id string, st *state.Snapshot, col int) {
	s.sink.emit(Action{Kind: ActionNextSwapLayout, Target: st.SwapLayout, Offset: col})
}
