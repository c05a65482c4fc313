// Package widget provides the widget contract and registry for the statusline
// Widget Layer: placeholder providers keyed by family name
package widget

//go:generate mockgen -source=widget.go -destination=mock_widget.go -package=widget

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/young1lin/zstatus/internal/statusline/state"
)

// Widget renders content for placeholders of one family
type Widget interface {
	// Render returns unstyled text for the placeholder identifier
	Render(id string, st *state.Snapshot) string

	// HandleClick handles a click at a column relative to the start of
	// the placeholder's rendered text
	HandleClick(id string, st *state.Snapshot, col int)
}

// Families whose identifiers carry a user-chosen suffix, e.g. command_git
var prefixFamilies = []string{"command", "pipe"}

// familyMasks lists the state categories each family depends on
var familyMasks = map[string]state.Mask{
	"mode":          state.Mode,
	"session":       state.Session,
	"tabs":          state.Tab | state.Pane,
	"swap_layout":   state.Tab,
	"command":       state.Command,
	"pipe":          state.Pipe,
	"notifications": state.Notification,
	"datetime":      state.Always,
}

// Family normalizes a placeholder identifier to its family name
func Family(id string) string {
	for _, prefix := range prefixFamilies {
		if strings.HasPrefix(id, prefix+"_") {
			return prefix
		}
	}
	return id
}

// FamilyMask returns the dependency mask for a family.
// Unknown families render a fixed diagnostic and never need recomputing.
func FamilyMask(family string) state.Mask {
	return familyMasks[family]
}

// UnknownText is substituted for placeholders without a registered widget
func UnknownText(id string) string {
	return fmt.Sprintf("{unknown widget: %s}", id)
}

// Registry holds widgets keyed by family name
type Registry struct {
	widgets map[string]Widget
}

// NewRegistry creates a new widget registry
func NewRegistry() *Registry {
	return &Registry{
		widgets: make(map[string]Widget),
	}
}

// Register adds a widget for a family
func (r *Registry) Register(family string, w Widget) {
	r.widgets[family] = w
}

// Get retrieves the widget for a placeholder identifier
func (r *Registry) Get(id string) (Widget, bool) {
	w, ok := r.widgets[Family(id)]
	return w, ok
}

// Names returns the registered family names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.widgets))
	for name := range r.widgets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Suggest returns the registered family closest to an unknown identifier
func (r *Registry) Suggest(id string) (string, bool) {
	ranks := fuzzy.RankFindFold(Family(id), r.Names())
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}
