package events

import "github.com/young1lin/zstatus/internal/logging"

type RenderTracer struct{}

type ClickTracer struct{}

type ConfigTracer struct{}

var (
	Render = RenderTracer{}
	Click  = ClickTracer{}
	Config = ConfigTracer{}
)

func (RenderTracer) Cycle(changed uint16, width, hits, misses int) {
	logging.Trace("render.cycle", map[string]interface{}{
		"changed": changed,
		"width":   width,
		"hits":    hits,
		"misses":  misses,
	})
}

func (RenderTracer) Trimmed(side string, width int) {
	logging.Trace("render.trimmed", map[string]interface{}{"side": side, "width": width})
}

func (ClickTracer) Hit(id string, col, offset int) {
	logging.Trace("click.hit", map[string]interface{}{"id": id, "col": col, "offset": offset})
}

func (ClickTracer) Miss(col int) {
	logging.Trace("click.miss", map[string]interface{}{"col": col})
}

func (ConfigTracer) Reloaded(path string) {
	logging.Trace("config.reloaded", map[string]interface{}{"path": path})
}

func (ConfigTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	logging.Trace("config.error", map[string]interface{}{"error": err.Error()})
}
