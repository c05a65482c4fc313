// Package bar assembles the three regions into a status line and routes
// clicks back to the widgets that produced them
package bar

import (
	"errors"
	"fmt"

	"github.com/young1lin/zstatus/internal/logging"
	"github.com/young1lin/zstatus/internal/logging/events"
	"github.com/young1lin/zstatus/internal/statusline/config"
	"github.com/young1lin/zstatus/internal/statusline/layout"
	"github.com/young1lin/zstatus/internal/statusline/render"
	"github.com/young1lin/zstatus/internal/statusline/segment"
	"github.com/young1lin/zstatus/internal/statusline/state"
	"github.com/young1lin/zstatus/internal/statusline/style"
	"github.com/young1lin/zstatus/internal/statusline/widget"
)

// ErrUnknownWidget is returned in strict mode for unregistered placeholders
var ErrUnknownWidget = errors.New("unknown widget")

// Bar is a parsed status line ready to render
type Bar struct {
	registry *widget.Registry
	regions  [3]segment.Region
	layout   layout.Config

	// last displayed layout, used for click routing
	last    layout.Result
	lastSet bool
}

// New parses the configured formats into a bar
func New(cfg *config.Config, reg *widget.Registry) (*Bar, error) {
	b := &Bar{registry: reg}
	if err := b.Reparse(cfg); err != nil {
		return nil, err
	}
	return b, nil
}

// Reparse replaces formats and layout settings. On error the bar is unchanged.
func (b *Bar) Reparse(cfg *config.Config) error {
	prec, err := layout.ParsePrecedence(cfg.Format.Precedence)
	if err != nil {
		return err
	}
	pos, err := layout.ParseBorderPosition(cfg.Border.Position)
	if err != nil {
		return err
	}

	palette := style.Palette(cfg.Colors)
	regions := [3]segment.Region{
		layout.Left:   segment.Parse(cfg.Format.Left, palette),
		layout.Center: segment.Parse(cfg.Format.Center, palette),
		layout.Right:  segment.Parse(cfg.Format.Right, palette),
	}
	if err := b.checkPlaceholders(regions, cfg.Strict); err != nil {
		return err
	}

	b.regions = regions
	b.layout = layout.Config{
		Precedence:       prec,
		HideOnOverlength: cfg.Format.HideOnOverlength,
		SpacerStyle:      segment.ParseStyle(cfg.Format.Space, palette),
		Border: layout.Border{
			Enabled:  cfg.Border.Enabled,
			Char:     cfg.Border.Char,
			Style:    segment.ParseStyle(cfg.Border.Format, palette),
			Position: pos,
		},
	}
	b.last = layout.Result{}
	b.lastSet = false
	return nil
}

func (b *Bar) checkPlaceholders(regions [3]segment.Region, strict bool) error {
	for _, region := range regions {
		for _, seg := range region {
			for _, ph := range seg.Placeholders() {
				if _, ok := b.registry.Get(ph.ID); ok {
					continue
				}
				if strict {
					return fmt.Errorf("%w: %s", ErrUnknownWidget, ph.ID)
				}
				if hint, ok := b.registry.Suggest(ph.ID); ok {
					logging.Warn("unknown widget %q, did you mean %q?", ph.ID, hint)
				} else {
					logging.Warn("unknown widget %q", ph.ID)
				}
			}
		}
	}
	return nil
}

// Render produces the status line for a snapshot at the given width
func (b *Bar) Render(st *state.Snapshot, width int) string {
	var rendered layout.Regions
	hits, misses := 0, 0
	for side, region := range b.regions {
		rendered[side] = region.Render(b.registry, st)
		h, m := region.CacheStats()
		hits += h
		misses += m
	}

	res := layout.Compose(rendered, width, b.layout)
	for side := range rendered {
		if rendered[side] != "" && res.Regions[side] == "" {
			events.Render.Trimmed(layout.Side(side).String(), width)
		}
	}
	events.Render.Cycle(uint16(st.Changed), width, hits, misses)

	b.last = res
	b.lastSet = true
	return res.Line
}

// Click routes a click at a 1-based column of the status line to the
// widget under it. Columns outside any placeholder are ignored.
func (b *Bar) Click(st *state.Snapshot, col int) {
	id, offset, ok := b.locate(st, col-1)
	if !ok {
		events.Click.Miss(col)
		return
	}
	w, found := b.registry.Get(id)
	if !found {
		events.Click.Miss(col)
		return
	}
	events.Click.Hit(id, col, offset)
	w.HandleClick(id, st, offset)
}

// locate resolves a 0-based cell against the last displayed layout
func (b *Bar) locate(st *state.Snapshot, cell int) (string, int, bool) {
	if !b.lastSet || cell < 0 {
		return "", 0, false
	}
	res := b.last

	start := 0
	order := []struct {
		side   layout.Side
		spacer int
	}{
		{layout.Left, res.SpacerLeft},
		{layout.Center, res.SpacerRight},
		{layout.Right, 0},
	}
	for _, o := range order {
		text := res.Regions[o.side]
		if text == "" {
			if o.side == layout.Left {
				start += o.spacer
			}
			continue
		}
		w := render.Measure(text)
		if cell >= start && cell < start+w {
			return b.regions[o.side].Hit(b.registry, st, cell-start)
		}
		start += w + o.spacer
	}
	return "", 0, false
}
