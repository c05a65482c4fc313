package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/young1lin/zstatus/internal/logging"
	"github.com/young1lin/zstatus/internal/statusline/bar"
	"github.com/young1lin/zstatus/internal/statusline/pipe"
	"github.com/young1lin/zstatus/internal/statusline/render"
	"github.com/young1lin/zstatus/internal/statusline/state"
	"github.com/young1lin/zstatus/internal/statusline/style"
	"github.com/young1lin/zstatus/internal/statusline/widget"
	"github.com/young1lin/zstatus/internal/statusline/widgets"
	"github.com/young1lin/zstatus/internal/store"
)

// errorLineStyle marks the static line shown when the bar can't be built
var errorLineStyle = style.Style{Foreground: style.Named(1), Effects: style.EffectBold}

// runRender renders one status line for a JSON snapshot read from stdin.
// Protocol lines given with --pipe are applied to the snapshot first.
// With --click the click is routed and the resulting actions are printed
// as JSON lines after the status line.
func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file (default: search path)")
	width := fs.Int("width", 80, "terminal columns")
	click := fs.Int("click", 0, "1-based column to click after rendering")
	var pipeLines []string
	fs.Func("pipe", "protocol line to apply, e.g. zstatus::notify::hi (repeatable)", func(v string) error {
		pipeLines = append(pipeLines, v)
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	setupLogging(cfg)

	snap, err := readSnapshot(stdin)
	if err != nil {
		return err
	}
	applyPipeLines(&snap, pipeLines)

	var actions []widgets.Action
	reg := widget.NewRegistry()
	cmd := widgets.RegisterAll(reg, cfg, func(a widgets.Action) {
		actions = append(actions, a)
	})

	if path := storePath(cfg); path != "" {
		db, err := store.Open(path)
		if err != nil {
			logging.Error(fmt.Errorf("open results store: %w", err))
		} else {
			defer db.Close()
			pruneResults(db, cfg)
			syncResults(db, cmd, &snap)
		}
	}

	b, err := bar.New(cfg, reg)
	if err != nil {
		fmt.Fprintln(stdout, errorLine(err, *width))
		return err
	}

	st := state.NewTracker().Next(snap)
	fmt.Fprintln(stdout, b.Render(&st, *width))

	if *click > 0 {
		b.Click(&st, *click)
		enc := json.NewEncoder(stdout)
		for _, a := range actions {
			if err := enc.Encode(a); err != nil {
				return err
			}
		}
	}
	return nil
}

func readSnapshot(r io.Reader) (state.Snapshot, error) {
	var snap state.Snapshot

	data, err := io.ReadAll(r)
	if err != nil {
		return snap, fmt.Errorf("read stdin: %w", err)
	}
	data = bytes.TrimSpace(trimNullBytes(data))
	if len(data) > 0 {
		if err := json.Unmarshal(data, &snap); err != nil {
			return snap, fmt.Errorf("parse snapshot: %w", err)
		}
	}
	if snap.Now.IsZero() {
		snap.Now = time.Now()
	}
	return snap, nil
}

// applyPipeLines applies protocol lines to the snapshot. A one-shot render
// has no running commands, so rerun messages are skipped.
func applyPipeLines(snap *state.Snapshot, lines []string) {
	for _, line := range lines {
		for _, msg := range pipe.ParseAll(line) {
			if msg.Kind == pipe.KindRerun {
				logging.Warn("render: rerun of %s skipped", msg.Name)
				continue
			}
			pipe.Apply(snap, msg, snap.Now)
		}
	}
}

// syncResults persists the snapshot's results and fills in what it lacks
// from earlier runs
func syncResults(db *store.DB, cmd *widgets.Command, snap *state.Snapshot) {
	for name, v := range snap.CommandResults {
		if err := db.SaveResult(store.KindCommand, name, v); err != nil {
			logging.Error(err)
		}
	}
	for name, v := range snap.PipeResults {
		if err := db.SaveResult(store.KindPipe, name, v); err != nil {
			logging.Error(err)
		}
	}

	if results, err := db.LoadResults(store.KindCommand); err != nil {
		logging.Error(err)
	} else {
		cmd.Seed(results)
	}

	pipes, err := db.LoadResults(store.KindPipe)
	if err != nil {
		logging.Error(err)
		return
	}
	if snap.PipeResults == nil {
		snap.PipeResults = make(map[string]string, len(pipes))
	}
	for name, v := range pipes {
		if _, ok := snap.PipeResults[name]; !ok {
			snap.PipeResults[name] = v
		}
	}
}

// errorLine is the static line shown in place of a bar that failed to build
func errorLine(err error, width int) string {
	text := render.Truncate("zstatus: "+err.Error(), width)
	return errorLineStyle.Apply(text)
}
