package widgets

import (
	"strings"
	"time"

	"github.com/young1lin/zstatus/internal/statusline/config"
	"github.com/young1lin/zstatus/internal/statusline/state"
	"github.com/young1lin/zstatus/internal/statusline/style"
)

// Pipe renders the last payload piped to pipe_NAME
type Pipe struct {
	formats map[string]subformat
	sink    Sink
}

// NewPipe creates a pipe widget. Pipes without a configured format render
// the bare payload.
func NewPipe(pipes map[string]config.PipeConfig, palette style.Palette, sink Sink) *Pipe {
	formats := make(map[string]subformat, len(pipes))
	for name, def := range pipes {
		if def.Format != "" {
			formats[name] = parseSubformat(def.Format, palette)
		}
	}
	return &Pipe{formats: formats, sink: sink}
}

// Render returns the last payload, newlines flattened to spaces
func (p *Pipe) Render(id string, st *state.Snapshot) string {
	name := suffix(id, "pipe")
	payload, ok := st.PipeResults[name]
	if !ok {
		return ""
	}
	output := strings.Join(strings.Fields(payload), " ")

	f, ok := p.formats[name]
	if !ok {
		return output
	}
	return f.expand(strings.NewReplacer("{output}", output))
}

// HandleClick forwards the click to the host
func (p *Pipe) HandleClick(id string, st *state.Snapshot, col int) {
	p.sink.emit(Action{Kind: ActionPipeClick, Target: suffix(id, "pipe"), Offset: col})
}

// Notifications renders the current notification. It uses the unread
// format while the message is within its show interval and the idle
// format afterwards.
type Notifications struct {
	unread subformat
	idle   subformat
	show   time.Duration
	sink   Sink
}

// NewNotifications creates a notifications widget
func NewNotifications(cfg config.NotificationConfig, palette style.Palette, sink Sink) *Notifications {
	return &Notifications{
		unread: parseSubformat(orDefault(cfg.Format, "{message}"), palette),
		idle:   parseSubformat(cfg.None, palette),
		show:   cfg.ShowInterval,
		sink:   sink,
	}
}

// Render returns the formatted notification, or the idle text
func (n *Notifications) Render(id string, st *state.Snapshot) string {
	replacer := strings.NewReplacer("{message}", st.Notification)
	if st.NotificationUnread(n.show) {
		return n.unread.expand(replacer)
	}
	return n.idle.expand(replacer)
}

// HandleClick dismisses the notification
func (n *Notifications) HandleClick(id string, st *state.Snapshot, col int) {
	if st.Notification == "" {
		return
	}
	n.sink.emit(Action{Kind: ActionDismiss, Offset: col})
}
