package widgets

import (
	"time"

	"github.com/young1lin/zstatus/internal/logging"
	"github.com/young1lin/zstatus/internal/statusline/config"
	"github.com/young1lin/zstatus/internal/statusline/state"
)

const defaultDatetimeLayout = "2006-01-02 15:04"

// Datetime renders the snapshot time
type Datetime struct {
	layout   string
	location *time.Location
}

// NewDatetime creates a datetime widget. An unknown timezone falls back
// to local time.
func NewDatetime(cfg config.DatetimeConfig) *Datetime {
	d := &Datetime{layout: cfg.Format, location: time.Local}
	if d.layout == "" {
		d.layout = defaultDatetimeLayout
	}
	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			logging.Error(err)
		} else {
			d.location = loc
		}
	}
	return d
}

// Render formats the snapshot time, or the wall clock when unset
func (d *Datetime) Render(id string, st *state.Snapshot) string {
	now := st.Now
	if now.IsZero() {
		now = time.Now()
	}
	return now.In(d.location).Format(d.layout)
}

// HandleClick does nothing
func (d *Datetime) HandleClick(id string, st *state.Snapshot, col int) {}
