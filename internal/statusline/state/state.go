// Package state defines the host state snapshot handed to every render
// State Layer: change categories and snapshot tracking
package state

import (
	"maps"
	"slices"
	"time"
)

// Mask is a set of state-change categories
type Mask uint16

const (
	Mode Mask = 1 << iota
	Tab
	Pane
	Command
	Session
	Notification
	Pipe

	// Always means the cache can never be trusted
	Always Mask = 1 << 15

	None Mask = 0
)

// Intersects returns true if any bit is shared
func (m Mask) Intersects(other Mask) bool {
	return m&other != 0
}

// TabInfo describes one tab of the host session
type TabInfo struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
	Panes    int    `json:"panes"`

	Fullscreen    bool `json:"fullscreen"`
	Sync          bool `json:"sync"`
	FloatingPanes int  `json:"floating_panes"`
}

// Snapshot is the host state at the start of one render cycle
type Snapshot struct {
	Changed        Mask              `json:"-"`
	Mode           string            `json:"mode"`
	Tabs           []TabInfo         `json:"tabs"`
	SwapLayout     string            `json:"swap_layout"`
	Session        string            `json:"session"`
	Sessions       []string          `json:"sessions"`
	CommandResults map[string]string `json:"command_results"`
	PipeResults    map[string]string `json:"pipe_results"`
	Notification   string            `json:"notification"`
	NotificationAt time.Time         `json:"notification_at"`
	Now            time.Time         `json:"now"`
}

// NotificationUnread reports whether the notification is still within its
// show interval. A notification without an arrival time, or a non-positive
// interval, stays unread until it is cleared.
func (s *Snapshot) NotificationUnread(show time.Duration) bool {
	if s.Notification == "" {
		return false
	}
	if show <= 0 || s.NotificationAt.IsZero() {
		return true
	}
	return !s.Now.After(s.NotificationAt.Add(show))
}

// ActiveTab returns the active tab, if any
func (s *Snapshot) ActiveTab() (TabInfo, bool) {
	for _, t := range s.Tabs {
		if t.Active {
			return t, true
		}
	}
	return TabInfo{}, false
}

// Tracker computes the change mask between consecutive snapshots.
// ShowInterval lets the tracker flag a notification that turned read.
type Tracker struct {
	ShowInterval time.Duration

	prev    *Snapshot
	started bool
}

// NewTracker creates a new tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// Next stamps snap.Changed with the categories that differ from the
// previously tracked snapshot. The first snapshot reports every category.
func (t *Tracker) Next(snap Snapshot) Snapshot {
	if !t.started {
		snap.Changed = Mode | Tab | Pane | Command | Session | Notification | Pipe
		t.started = true
	} else {
		snap.Changed = diff(t.prev, &snap)
		if t.prev.NotificationUnread(t.ShowInterval) != snap.NotificationUnread(t.ShowInterval) {
			snap.Changed |= Notification
		}
	}
	copied := snap.clone()
	t.prev = &copied
	return snap
}

func diff(prev, next *Snapshot) Mask {
	var m Mask
	if prev.Mode != next.Mode {
		m |= Mode
	}
	if !slices.Equal(prev.Tabs, next.Tabs) || prev.SwapLayout != next.SwapLayout {
		m |= Tab
	}
	prevPanes, prevFloating := paneCount(prev.Tabs)
	nextPanes, nextFloating := paneCount(next.Tabs)
	if prevPanes != nextPanes || prevFloating != nextFloating {
		m |= Pane
	}
	if !maps.Equal(prev.CommandResults, next.CommandResults) {
		m |= Command
	}
	if prev.Session != next.Session || !slices.Equal(prev.Sessions, next.Sessions) {
		m |= Session
	}
	if prev.Notification != next.Notification || !prev.NotificationAt.Equal(next.NotificationAt) {
		m |= Notification
	}
	if !maps.Equal(prev.PipeResults, next.PipeResults) {
		m |= Pipe
	}
	return m
}

func paneCount(tabs []TabInfo) (panes, floating int) {
	for _, t := range tabs {
		panes += t.Panes
		floating += t.FloatingPanes
	}
	return panes, floating
}

func (s Snapshot) clone() Snapshot {
	s.Tabs = slices.Clone(s.Tabs)
	s.Sessions = slices.Clone(s.Sessions)
	s.CommandResults = maps.Clone(s.CommandResults)
	s.PipeResults = maps.Clone(s.PipeResults)
	return s
}
