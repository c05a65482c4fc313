package tui

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/zstatus/internal/logging"
	"github.com/young1lin/zstatus/internal/statusline/bar"
	"github.com/young1lin/zstatus/internal/statusline/config"
	"github.com/young1lin/zstatus/internal/statusline/layout"
	"github.com/young1lin/zstatus/internal/statusline/state"
	"github.com/young1lin/zstatus/internal/statusline/watch"
	"github.com/young1lin/zstatus/internal/statusline/widget"
	"github.com/young1lin/zstatus/internal/statusline/widgets"
	"github.com/young1lin/zstatus/internal/store"
)

const defaultCommandTimeout = 5 * time.Second

// Modes cycled by the mode key and mode widget clicks
var modeCycle = []string{"normal", "locked", "pane", "tab", "resize", "scroll"}

// Swap layouts cycled by swap_layout clicks
var swapLayouts = []string{"BASE", "VERTICAL", "HORIZONTAL"}

// Job is one shell command to run
type Job struct {
	Command string
	Env     map[string]string
	Cwd     string
}

// Runner executes a job and returns its stdout
type Runner func(ctx context.Context, job Job) (string, error)

// ResultStore persists last known widget results
type ResultStore interface {
	SaveResult(kind, name, value string) error
	LoadResults(kind string) (map[string]string, error)
}

// Options configures the preview host
type Options struct {
	Config     *config.Config
	ConfigPath string
	Store      ResultStore
	Watcher    watch.WatcherInterface
	Runner     Runner
	// Pipe delivers protocol lines written by external tools
	Pipe <-chan string
}

// actionQueue collects widget actions raised while routing a click
type actionQueue struct {
	items []widgets.Action
}

func (q *actionQueue) push(a widgets.Action) {
	q.items = append(q.items, a)
}

func (q *actionQueue) drain() []widgets.Action {
	items := q.items
	q.items = nil
	return items
}

// Model is the preview host state
type Model struct {
	cfg      *config.Config
	bar      *bar.Bar
	registry *widget.Registry
	command  *widgets.Command
	tracker  *state.Tracker
	actions  *actionQueue

	configPath string
	store      ResultStore
	watcher    watch.WatcherInterface
	runner     Runner
	pipe       <-chan string

	// host is the multiplexer state the preview simulates
	host    state.Snapshot
	shown   state.Snapshot
	line    string
	width   int
	lastRun map[string]time.Time
	known   map[string]string

	lastAction string
	quitting   bool
	err        error

	styles Styles
}

// Styles contains the Lipgloss styles for the preview chrome
type Styles struct {
	Help   lipgloss.Style
	Key    lipgloss.Style
	Action lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns the default UI styles
func DefaultStyles() Styles {
	return Styles{
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Key:    lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		Action: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// NewModel builds the preview host. Construction errors from the config
// are returned so the caller can report them instead of drawing a bar.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	queue := &actionQueue{}
	reg := widget.NewRegistry()
	cmd := widgets.RegisterAll(reg, cfg, queue.push)

	b, err := bar.New(cfg, reg)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		cfg:      cfg,
		bar:      b,
		registry: reg,
		command:  cmd,
		tracker:  state.NewTracker(),
		actions:  queue,

		configPath: opts.ConfigPath,
		store:      opts.Store,
		watcher:    opts.Watcher,
		runner:     opts.Runner,
		pipe:       opts.Pipe,
		width:      80,
		lastRun:    make(map[string]time.Time),
		known:      make(map[string]string),
		styles:     DefaultStyles(),
		host: state.Snapshot{
			Mode:       modeCycle[0],
			SwapLayout: swapLayouts[0],
			Session:    "main",
			Sessions:   []string{"main", "work"},
			Tabs: []state.TabInfo{
				{Name: "editor", Position: 0, Active: true, Panes: 1},
				{Name: "shell", Position: 1, Panes: 1},
			},
			CommandResults: make(map[string]string),
			PipeResults:    make(map[string]string),
		},
	}
	if m.runner == nil {
		m.runner = shellRunner
	}
	m.tracker.ShowInterval = cfg.Notifications.ShowInterval

	if m.store != nil {
		if results, err := m.store.LoadResults(store.KindCommand); err != nil {
			logging.Error(err)
		} else {
			for name, v := range results {
				m.known[name] = v
			}
			cmd.Seed(results)
		}
	}

	m.host.Now = time.Now()
	m.refresh()
	return m, nil
}

// Init starts the clock, the first command runs and the config watcher
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd()}
	for _, name := range m.cfg.CommandNames() {
		m.lastRun[name] = m.host.Now
		cmds = append(cmds, m.runCommand(name))
	}
	cmds = append(cmds, m.nextConfig(), m.nextPipe())
	return tea.Batch(cmds...)
}

// refresh renders the bar for the current host state
func (m *Model) refresh() {
	m.shown = m.tracker.Next(m.host)
	m.line = m.bar.Render(&m.shown, m.width)
}

// barRow is the screen row the status line is drawn on
func (m Model) barRow() int {
	if !m.cfg.Border.Enabled {
		return 0
	}
	if pos, err := layout.ParseBorderPosition(m.cfg.Border.Position); err == nil && pos == layout.BorderTop {
		return 1
	}
	return 0
}

func (m Model) runCommand(name string) tea.Cmd {
	def, ok := m.cfg.Commands[name]
	if !ok {
		return nil
	}
	job := Job{Command: def.Command, Env: def.Env, Cwd: def.Cwd}
	run := m.runner
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout(def))
		defer cancel()
		out, err := run(ctx, job)
		return CommandResultMsg{Name: name, Output: out, Err: err}
	}
}

// runClickAction runs a command widget's click action in the widget's
// environment. Its output is discarded.
func (m Model) runClickAction(name, command string) tea.Cmd {
	def, ok := m.cfg.Commands[name]
	if !ok || command == "" {
		return nil
	}
	job := Job{Command: command, Env: def.Env, Cwd: def.Cwd}
	run := m.runner
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout(def))
		defer cancel()
		_, err := run(ctx, job)
		return ClickActionMsg{Name: name, Err: err}
	}
}

func commandTimeout(def config.CommandConfig) time.Duration {
	if def.Timeout <= 0 {
		return defaultCommandTimeout
	}
	return def.Timeout
}

func (m Model) saveResult(kind, name, value string) tea.Cmd {
	if m.store == nil {
		return nil
	}
	db := m.store
	return func() tea.Msg {
		if err := db.SaveResult(kind, name, value); err != nil {
			return ErrorMsg{Err: err}
		}
		return nil
	}
}

func shellRunner(ctx context.Context, job Job) (string, error) {
	out, err := shellCommand(ctx, job).Output()
	return string(out), err
}

// shellCommand builds the process for a job. Job variables are appended to
// the inherited environment so they take precedence.
func shellCommand(ctx context.Context, job Job) *exec.Cmd {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", job.Command)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", job.Command)
	}
	cmd.Dir = job.Cwd
	if len(job.Env) > 0 {
		keys := make([]string, 0, len(job.Env))
		for k := range job.Env {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		env := os.Environ()
		for _, k := range keys {
			env = append(env, k+"="+job.Env[k])
		}
		cmd.Env = env
	}
	return cmd
}

// nextConfig waits for the next watcher event, if a watcher is attached
func (m Model) nextConfig() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Configs():
			if !ok {
				return WatcherClosedMsg{}
			}
			return ConfigReloadedMsg{Config: cfg}
		case err, ok := <-w.Errors():
			if !ok {
				return WatcherClosedMsg{}
			}
			return ErrorMsg{Err: err}
		}
	}
}

// nextPipe waits for the next protocol line, if a pipe is attached
func (m Model) nextPipe() tea.Cmd {
	if m.pipe == nil {
		return nil
	}
	lines := m.pipe
	return func() tea.Msg {
		line, ok := <-lines
		if !ok {
			return PipeClosedMsg{}
		}
		return PipeLineMsg{Line: line}
	}
}

// tickCmd returns a command that sends TickMsg messages
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
