package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/zstatus/internal/logging"
	"github.com/young1lin/zstatus/internal/logging/events"
	"github.com/young1lin/zstatus/internal/statusline/pipe"
	"github.com/young1lin/zstatus/internal/statusline/state"
	"github.com/young1lin/zstatus/internal/statusline/widgets"
	"github.com/young1lin/zstatus/internal/store"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.refresh()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case TickMsg:
		m.host.Now = msg.Time
		cmds := []tea.Cmd{tickCmd()}
		for _, name := range m.cfg.CommandNames() {
			interval := m.cfg.Commands[name].Interval
			if interval <= 0 {
				continue
			}
			if msg.Time.Sub(m.lastRun[name]) >= interval {
				m.lastRun[name] = msg.Time
				cmds = append(cmds, m.runCommand(name))
			}
		}
		m.refresh()
		return m, tea.Batch(cmds...)

	case CommandResultMsg:
		if msg.Err != nil {
			m.err = fmt.Errorf("command %s: %w", msg.Name, msg.Err)
			logging.Error(m.err)
			return m, nil
		}
		m.host.CommandResults[msg.Name] = msg.Output
		m.known[msg.Name] = msg.Output
		m.refresh()
		return m, m.saveResult(store.KindCommand, msg.Name, msg.Output)

	case PipeLineMsg:
		return m.handlePipeLine(msg.Line)

	case PipeClosedMsg:
		m.pipe = nil
		return m, nil

	case ClickActionMsg:
		if msg.Err != nil {
			m.err = fmt.Errorf("click action %s: %w", msg.Name, msg.Err)
			logging.Error(m.err)
		}
		return m, nil

	case ConfigReloadedMsg:
		if err := m.bar.Reparse(msg.Config); err != nil {
			events.Config.Error(err)
			m.err = err
			return m, m.nextConfig()
		}
		m.cfg = msg.Config
		m.tracker.ShowInterval = m.cfg.Notifications.ShowInterval
		m.command = widgets.RegisterAll(m.registry, m.cfg, m.actions.push)
		m.command.Seed(m.known)
		m.err = nil
		events.Config.Reloaded(m.configPath)
		m.refresh()
		return m, m.nextConfig()

	case ErrorMsg:
		m.err = msg.Err
		return m, m.nextConfig()

	case WatcherClosedMsg:
		m.watcher = nil
		return m, nil
	}

	return m, nil
}

// handlePipeLine applies one protocol line and waits for the next
func (m Model) handlePipeLine(line string) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.nextPipe()}

	msg, ok := pipe.Parse(line)
	if !ok {
		events.Pipe.Ignored(line)
		return m, tea.Batch(cmds...)
	}

	switch msg.Kind {
	case pipe.KindRerun:
		if _, known := m.cfg.Commands[msg.Name]; known {
			m.lastRun[msg.Name] = m.host.Now
			cmds = append(cmds, m.runCommand(msg.Name))
		}
		return m, tea.Batch(cmds...)
	case pipe.KindPipe:
		cmds = append(cmds, m.saveResult(store.KindPipe, msg.Name, msg.Payload))
	}

	pipe.Apply(&m.host, msg, m.host.Now)
	m.refresh()
	return m, tea.Batch(cmds...)
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "m":
		m.host.Mode = nextIn(modeCycle, m.host.Mode)
	case "n":
		m.addTab()
	case "tab":
		m.switchTab(m.activeIndex() + 1)
	case "shift+tab":
		m.switchTab(m.activeIndex() - 1)
	case "s":
		m.host.Session = nextIn(m.host.Sessions, m.host.Session)
	case "!":
		m.host.Notification = fmt.Sprintf("%d tabs open", len(m.host.Tabs))
		m.host.NotificationAt = m.host.Now
	case "x":
		m.host.Notification = ""
	case "r":
		cmds := make([]tea.Cmd, 0, len(m.cfg.Commands))
		for _, name := range m.cfg.CommandNames() {
			m.lastRun[name] = m.host.Now
			cmds = append(cmds, m.runCommand(name))
		}
		return m, tea.Batch(cmds...)
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

// handleMouseMsg routes left-button presses on the status line to the bar
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y != m.barRow() {
		return m, nil
	}

	// bubbletea reports 0-based cells, the bar takes terminal columns
	m.bar.Click(&m.shown, msg.X+1)

	var cmds []tea.Cmd
	for _, a := range m.actions.drain() {
		if cmd := m.apply(a); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	m.refresh()
	return m, tea.Batch(cmds...)
}

// apply performs a widget action against the simulated host
func (m *Model) apply(a widgets.Action) tea.Cmd {
	m.lastAction = describe(a)
	switch a.Kind {
	case widgets.ActionSwitchTab:
		m.switchTab(a.Index)
	case widgets.ActionSwitchSession:
		m.host.Session = a.Target
	case widgets.ActionNextSwapLayout:
		m.host.SwapLayout = nextIn(swapLayouts, m.host.SwapLayout)
	case widgets.ActionNextMode:
		m.host.Mode = nextIn(modeCycle, m.host.Mode)
	case widgets.ActionDismiss:
		m.host.Notification = ""
	case widgets.ActionRunCommand:
		m.lastRun[a.Target] = m.host.Now
		return m.runCommand(a.Target)
	case widgets.ActionClickCommand:
		return m.runClickAction(a.Target, a.Command)
	}
	return nil
}

func describe(a widgets.Action) string {
	parts := []string{string(a.Kind)}
	if a.Target != "" {
		parts = append(parts, a.Target)
	}
	parts = append(parts, fmt.Sprintf("@%d", a.Offset))
	return strings.Join(parts, " ")
}

func (m Model) activeIndex() int {
	for i, tab := range m.host.Tabs {
		if tab.Active {
			return i
		}
	}
	return 0
}

// switchTab activates the tab at index, wrapping around
func (m *Model) switchTab(index int) {
	n := len(m.host.Tabs)
	if n == 0 {
		return
	}
	index = ((index % n) + n) % n

	tabs := make([]state.TabInfo, n)
	copy(tabs, m.host.Tabs)
	for i := range tabs {
		tabs[i].Active = i == index
	}
	m.host.Tabs = tabs
}

func (m *Model) addTab() {
	n := len(m.host.Tabs)
	tabs := make([]state.TabInfo, n, n+1)
	copy(tabs, m.host.Tabs)
	tabs = append(tabs, state.TabInfo{Name: fmt.Sprintf("tab%d", n+1), Position: n, Panes: 1})
	m.host.Tabs = tabs
	m.switchTab(n)
}

// nextIn returns the element after current, or the first one
func nextIn(list []string, current string) string {
	if len(list) == 0 {
		return current
	}
	for i, v := range list {
		if v == current {
			return list[(i+1)%len(list)]
		}
	}
	return list[0]
}
