package widgets

import (
	"strconv"
	"strings"

	"github.com/young1lin/zstatus/internal/statusline/config"
	"github.com/young1lin/zstatus/internal/statusline/render"
	"github.com/young1lin/zstatus/internal/statusline/state"
	"github.com/young1lin/zstatus/internal/statusline/style"
)

// Tabs renders the tab list
type Tabs struct {
	normal           subformat
	normalFullscreen subformat
	normalSync       subformat
	active           subformat
	activeFullscreen subformat
	activeSync       subformat
	separator        subformat

	fullscreenIndicator string
	syncIndicator       string
	floatingIndicator   string

	sink Sink
}

// NewTabs creates a tabs widget
func NewTabs(cfg config.TabsConfig, palette style.Palette, sink Sink) *Tabs {
	normal := orDefault(cfg.Normal, " {name} ")
	active := orDefault(cfg.Active, normal)

	return &Tabs{
		normal:           parseSubformat(normal, palette),
		normalFullscreen: parseSubformat(orDefault(cfg.NormalFullscreen, normal), palette),
		normalSync:       parseSubformat(orDefault(cfg.NormalSync, normal), palette),
		active:           parseSubformat(active, palette),
		activeFullscreen: parseSubformat(orDefault(cfg.ActiveFullscreen, active), palette),
		activeSync:       parseSubformat(orDefault(cfg.ActiveSync, active), palette),
		separator:        parseSubformat(cfg.Separator, palette),

		fullscreenIndicator: cfg.FullscreenIndicator,
		syncIndicator:       cfg.SyncIndicator,
		floatingIndicator:   cfg.FloatingIndicator,

		sink: sink,
	}
}

// selectFormat picks the format for a tab. Fullscreen wins over sync.
func (t *Tabs) selectFormat(tab state.TabInfo) subformat {
	switch {
	case tab.Active && tab.Fullscreen:
		return t.activeFullscreen
	case tab.Active && tab.Sync:
		return t.activeSync
	case tab.Active:
		return t.active
	case tab.Fullscreen:
		return t.normalFullscreen
	case tab.Sync:
		return t.normalSync
	default:
		return t.normal
	}
}

func (t *Tabs) tabText(tab state.TabInfo) string {
	return t.selectFormat(tab).expand(strings.NewReplacer(
		"{name}", tab.Name,
		"{index}", strconv.Itoa(tab.Position+1),
		"{floating_total_count}", strconv.Itoa(tab.FloatingPanes),
		"{fullscreen_indicator}", indicator(tab.Fullscreen, t.fullscreenIndicator),
		"{sync_indicator}", indicator(tab.Sync, t.syncIndicator),
		"{floating_indicator}", indicator(tab.FloatingPanes > 0, t.floatingIndicator),
	))
}

func indicator(on bool, text string) string {
	if on {
		return text
	}
	return ""
}

// Render joins all tabs with the separator
func (t *Tabs) Render(id string, st *state.Snapshot) string {
	parts := make([]string, len(st.Tabs))
	for i, tab := range st.Tabs {
		parts[i] = t.tabText(tab)
	}
	return strings.Join(parts, t.separator.expand(nil))
}

// HandleClick switches to the tab under col. Clicks on a separator are ignored.
func (t *Tabs) HandleClick(id string, st *state.Snapshot, col int) {
	sep := render.Measure(t.separator.expand(nil))
	start := 0
	for _, tab := range st.Tabs {
		end := start + render.Measure(t.tabText(tab))
		if col >= start && col < end {
			t.sink.emit(Action{Kind: ActionSwitchTab, Target: tab.Name, Index: tab.Position, Offset: col - start})
			return
		}
		start = end + sep
	}
}
