// Package config provides YAML configuration support for the status bar
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// SchemaConstraint is the range of schema versions this build understands
const SchemaConstraint = "^1"

var ErrUnsupportedVersion = errors.New("unsupported config version")

// Config represents the status bar configuration
type Config struct {
	Version       string                   `yaml:"version"`
	Strict        bool                     `yaml:"strict"`
	Format        FormatConfig             `yaml:"format"`
	Border        BorderConfig             `yaml:"border"`
	Colors        map[string]string        `yaml:"colors"`
	Datetime      DatetimeConfig           `yaml:"datetime"`
	Mode          map[string]string        `yaml:"mode"`
	Tabs          TabsConfig               `yaml:"tabs"`
	SwapLayout    SwapLayoutConfig         `yaml:"swap_layout"`
	Commands      map[string]CommandConfig `yaml:"commands"`
	Pipes         map[string]PipeConfig    `yaml:"pipes"`
	Notifications NotificationConfig       `yaml:"notifications"`
	Store         StoreConfig              `yaml:"store"`
	Log           LogConfig                `yaml:"log"`
}

// FormatConfig holds the region format strings
type FormatConfig struct {
	Left             string `yaml:"left"`
	Center           string `yaml:"center"`
	Right            string `yaml:"right"`
	Space            string `yaml:"space"`
	Precedence       string `yaml:"precedence"` // permutation of l, c, r
	HideOnOverlength bool   `yaml:"hide_on_overlength"`
}

// BorderConfig controls the optional border line
type BorderConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Char     string `yaml:"char"`
	Format   string `yaml:"format"`
	Position string `yaml:"position"` // "top" or "bottom"
}

// DatetimeConfig controls the datetime widget
type DatetimeConfig struct {
	Format   string `yaml:"format"` // Go time layout
	Timezone string `yaml:"timezone"`
}

// TabsConfig controls the tabs widget. Formats substitute "{name}",
// "{index}", "{floating_total_count}" and the three indicators. The
// fullscreen and sync variants fall back to the plain normal/active format.
type TabsConfig struct {
	Normal           string `yaml:"normal"`
	NormalFullscreen string `yaml:"normal_fullscreen"`
	NormalSync       string `yaml:"normal_sync"`
	Active           string `yaml:"active"`
	ActiveFullscreen string `yaml:"active_fullscreen"`
	ActiveSync       string `yaml:"active_sync"`
	Separator        string `yaml:"separator"`

	FullscreenIndicator string `yaml:"fullscreen_indicator"`
	SyncIndicator       string `yaml:"sync_indicator"`
	FloatingIndicator   string `yaml:"floating_indicator"`
}

// SwapLayoutConfig controls the swap_layout widget
type SwapLayoutConfig struct {
	Format      string `yaml:"format"` // "{name}" is substituted
	HideIfEmpty bool   `yaml:"hide_if_empty"`
}

// RenderMode selects how command output is turned into bar text
type RenderMode string

const (
	// RenderStatic substitutes output into the command format and applies
	// the format's own styles
	RenderStatic RenderMode = "static"
	// RenderDynamic substitutes output and then parses the result as a
	// format string, so commands can emit "#[...]" directives
	RenderDynamic RenderMode = "dynamic"
	// RenderRaw substitutes output and passes the result through untouched
	RenderRaw RenderMode = "raw"
)

// CommandConfig defines a command_NAME widget
type CommandConfig struct {
	Command     string            `yaml:"command"`
	Interval    time.Duration     `yaml:"interval"`
	Timeout     time.Duration     `yaml:"timeout"`
	Format      string            `yaml:"format"` // "{stdout}" is substituted
	RenderMode  RenderMode        `yaml:"rendermode"`
	Env         map[string]string `yaml:"env"`
	Cwd         string            `yaml:"cwd"`
	ClickAction string            `yaml:"clickaction"`
}

// Mode returns the render mode, defaulting to static
func (c CommandConfig) Mode() RenderMode {
	if c.RenderMode == "" {
		return RenderStatic
	}
	return c.RenderMode
}

// PipeConfig defines the format of a pipe_NAME widget
type PipeConfig struct {
	Format string `yaml:"format"` // "{output}" is substituted
}

// NotificationConfig controls the notifications widget. A notification
// counts as unread for ShowInterval after it arrived; zero keeps it unread
// until dismissed.
type NotificationConfig struct {
	Format       string        `yaml:"format"` // "{message}" is substituted
	None         string        `yaml:"none"`
	ShowInterval time.Duration `yaml:"show_interval"`
}

// StoreConfig controls result persistence. Results older than Retention
// are pruned when a host opens the store; zero keeps everything.
type StoreConfig struct {
	Path      string        `yaml:"path"`
	Retention time.Duration `yaml:"retention"`
}

// LogConfig controls logging
type LogConfig struct {
	File  string `yaml:"file"`
	Trace bool   `yaml:"trace"`
}

// LoadFirst loads the first existing file among candidates and returns
// its path. Without any existing candidate the default config is returned.
func LoadFirst(candidates ...string) (*Config, string, error) {
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			cfg, err := LoadFile(path)
			return cfg, path, err
		}
	}
	return DefaultConfig(), "", nil
}

// LoadFile loads configuration from a specific file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates it
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the schema version and command definitions
func (c *Config) Validate() error {
	if c.Version != "" {
		v, err := semver.NewVersion(c.Version)
		if err != nil {
			return fmt.Errorf("%w %q: %v", ErrUnsupportedVersion, c.Version, err)
		}
		constraint, err := semver.NewConstraint(SchemaConstraint)
		if err != nil {
			return err
		}
		if !constraint.Check(v) {
			return fmt.Errorf("%w %q: want %s", ErrUnsupportedVersion, c.Version, SchemaConstraint)
		}
	}

	for name, cmd := range c.Commands {
		if strings.TrimSpace(cmd.Command) == "" {
			return fmt.Errorf("command %q: command is required", name)
		}
		if cmd.Interval < 0 {
			return fmt.Errorf("command %q: interval must be >= 0", name)
		}
		switch cmd.RenderMode {
		case "", RenderStatic, RenderDynamic, RenderRaw:
		default:
			return fmt.Errorf("command %q: unknown rendermode %q", name, cmd.RenderMode)
		}
	}
	if c.Notifications.ShowInterval < 0 {
		return errors.New("notifications: show_interval must be >= 0")
	}
	if c.Store.Retention < 0 {
		return errors.New("store: retention must be >= 0")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Format: FormatConfig{
			Left:       "#[fg=$accent,bold] {session} #[fg=$muted]{mode} {tabs}",
			Center:     "",
			Right:      "#[fg=$muted]{notifications} #[fg=$accent]{datetime} ",
			Space:      "",
			Precedence: "lrc",
		},
		Border: BorderConfig{
			Enabled:  false,
			Char:     "─",
			Format:   "#[fg=$muted]",
			Position: "top",
		},
		Colors: map[string]string{
			"accent": "#89b4fa",
			"muted":  "#6c7086",
		},
		Datetime: DatetimeConfig{
			Format: "2006-01-02 15:04",
		},
		Mode: map[string]string{
			"normal": "NORMAL",
			"locked": "LOCKED",
			"pane":   "PANE",
			"tab":    "TAB",
			"resize": "RESIZE",
			"scroll": "SCROLL",
		},
		Tabs: TabsConfig{
			Normal:    " {index}:{name} ",
			Active:    "[{index}:{name}]",
			Separator: "",
		},
		Notifications: NotificationConfig{
			Format:       "! {message}",
			ShowInterval: 5 * time.Second,
		},
		Store: StoreConfig{
			Retention: 30 * 24 * time.Hour,
		},
	}
}

// CommandNames returns the configured command widget names in sorted order
func (c *Config) CommandNames() []string {
	names := make([]string, 0, len(c.Commands))
	for name := range c.Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
