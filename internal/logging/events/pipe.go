package events

import "github.com/young1lin/zstatus/internal/logging"

type PipeTracer struct{}

type StoreTracer struct{}

var (
	Pipe  = PipeTracer{}
	Store = StoreTracer{}
)

func (PipeTracer) Received(kind, name string) {
	logging.Trace("pipe.received", map[string]interface{}{"kind": kind, "name": name})
}

func (PipeTracer) Ignored(line string) {
	logging.Trace("pipe.ignored", map[string]interface{}{"line": line})
}

func (StoreTracer) Pruned(rows int64, retention string) {
	logging.Trace("store.pruned", map[string]interface{}{"rows": rows, "retention": retention})
}
