package tui

import (
	"time"

	"github.com/young1lin/zstatus/internal/statusline/config"
)

// TickMsg is sent every second so time-dependent widgets refresh
type TickMsg struct {
	Time time.Time
}

// CommandResultMsg carries the output of a command widget run
type CommandResultMsg struct {
	Name   string
	Output string
	Err    error
}

// ConfigReloadedMsg is sent when the watched config file changes
type ConfigReloadedMsg struct {
	Config *config.Config
}

// WatcherClosedMsg is sent when the config watcher stops
type WatcherClosedMsg struct{}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}

// PipeLineMsg carries one line read from the protocol pipe
type PipeLineMsg struct {
	Line string
}

// PipeClosedMsg is sent when the protocol pipe has no more lines
type PipeClosedMsg struct{}

// ClickActionMsg reports the end of a command widget click action
type ClickActionMsg struct {
	Name string
	Err  error
}
