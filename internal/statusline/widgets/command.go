package widgets

import (
	"strings"

	"github.com/young1lin/zstatus/internal/statusline/config"
	"github.com/young1lin/zstatus/internal/statusline/state"
	"github.com/young1lin/zstatus/internal/statusline/style"
)

// Command renders results of command_NAME widgets. Results are produced
// asynchronously by the host; without a fresh result the last known value
// is shown.
type Command struct {
	commands  map[string]config.CommandConfig
	formats   map[string]subformat
	palette   style.Palette
	lastKnown map[string]string
	sink      Sink
}

// NewCommand creates a command widget
func NewCommand(commands map[string]config.CommandConfig, palette style.Palette, sink Sink) *Command {
	formats := make(map[string]subformat, len(commands))
	for name, def := range commands {
		if def.Mode() == config.RenderStatic && def.Format != "" {
			formats[name] = parseSubformat(def.Format, palette)
		}
	}
	return &Command{
		commands:  commands,
		formats:   formats,
		palette:   palette,
		lastKnown: make(map[string]string),
		sink:      sink,
	}
}

// Seed preloads last known results, e.g. from persistent storage
func (c *Command) Seed(results map[string]string) {
	for name, v := range results {
		c.lastKnown[name] = v
	}
}

// Render returns the formatted output of the named command
func (c *Command) Render(id string, st *state.Snapshot) string {
	name := suffix(id, "command")
	out, ok := st.CommandResults[name]
	if ok {
		c.lastKnown[name] = out
	} else {
		out = c.lastKnown[name]
	}
	out = strings.TrimRight(out, "\r\n")

	def := c.commands[name]
	replacer := strings.NewReplacer("{stdout}", out)

	switch def.Mode() {
	case config.RenderDynamic:
		text := out
		if def.Format != "" {
			text = replacer.Replace(def.Format)
		}
		return parseSubformat(text, c.palette).expand(nil)
	case config.RenderRaw:
		if def.Format == "" {
			return out
		}
		return replacer.Replace(def.Format)
	default:
		f, ok := c.formats[name]
		if !ok {
			return out
		}
		return f.expand(replacer)
	}
}

// HandleClick runs the configured click action, or asks the host to
// re-run the command when there is none
func (c *Command) HandleClick(id string, st *state.Snapshot, col int) {
	name := suffix(id, "command")
	if action := c.commands[name].ClickAction; action != "" {
		c.sink.emit(Action{Kind: ActionClickCommand, Target: name, Command: action, Offset: col})
		return
	}
	c.sink.emit(Action{Kind: ActionRunCommand, Target: name, Offset: col})
}
