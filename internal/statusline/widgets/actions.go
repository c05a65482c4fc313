// Package widgets provides the built-in placeholder widgets
package widgets

import (
	"strings"

	"github.com/young1lin/zstatus/internal/statusline/config"
	"github.com/young1lin/zstatus/internal/statusline/style"
	"github.com/young1lin/zstatus/internal/statusline/widget"
)

// ActionKind names a host request raised by a click
type ActionKind string

const (
	ActionSwitchTab      ActionKind = "switch-tab"
	ActionSwitchSession  ActionKind = "switch-session"
	ActionNextSwapLayout ActionKind = "next-swap-layout"
	ActionRunCommand     ActionKind = "run-command"
	ActionClickCommand   ActionKind = "click-command"
	ActionPipeClick      ActionKind = "pipe-click"
	ActionDismiss        ActionKind = "dismiss-notification"
	ActionNextMode       ActionKind = "next-mode"
)

// Action is forwarded to the host when a widget is clicked
type Action struct {
	Kind    ActionKind `json:"kind"`
	Target  string     `json:"target,omitempty"`
	Command string     `json:"command,omitempty"`
	Index   int        `json:"index"`
	Offset  int        `json:"offset"`
}

// Sink receives click actions; nil sinks drop them
type Sink func(Action)

func (s Sink) emit(a Action) {
	if s != nil {
		s(a)
	}
}

// RegisterAll registers every built-in widget family
func RegisterAll(reg *widget.Registry, cfg *config.Config, sink Sink) *Command {
	palette := style.Palette(cfg.Colors)
	cmd := NewCommand(cfg.Commands, palette, sink)
	reg.Register("datetime", NewDatetime(cfg.Datetime))
	reg.Register("mode", NewMode(cfg.Mode, palette, sink))
	reg.Register("session", NewSession(sink))
	reg.Register("tabs", NewTabs(cfg.Tabs, palette, sink))
	reg.Register("swap_layout", NewSwapLayout(cfg.SwapLayout, palette, sink))
	reg.Register("command", cmd)
	reg.Register("pipe", NewPipe(cfg.Pipes, palette, sink))
	reg.Register("notifications", NewNotifications(cfg.Notifications, palette, sink))
	return cmd
}

// suffix returns the user-chosen part of a prefixed identifier
func suffix(id, family string) string {
	return strings.TrimPrefix(id, family+"_")
}
