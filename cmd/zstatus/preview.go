package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/zstatus/internal/logging"
	"github.com/young1lin/zstatus/internal/statusline/pipe"
	"github.com/young1lin/zstatus/internal/statusline/watch"
	"github.com/young1lin/zstatus/internal/store"
	"github.com/young1lin/zstatus/tui"
)

// PreviewDependencies contains the dependencies for the preview host
type PreviewDependencies struct {
	DBOpener       func(string) (*store.DB, error)
	WatcherCreator func(string) (watch.WatcherInterface, error)
	ProgramRunner  func(*tea.Program) error
}

func defaultPreviewDependencies() *PreviewDependencies {
	return &PreviewDependencies{
		DBOpener: store.Open,
		WatcherCreator: func(path string) (watch.WatcherInterface, error) {
			return watch.NewWatcher(path, watch.DefaultDebounce)
		},
		ProgramRunner: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
	}
}

// runPreview runs the interactive bar preview
func runPreview(args []string, stderr io.Writer, deps *PreviewDependencies) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file (default: search path)")
	pipePath := fs.String("pipe", "", "file or named pipe to read protocol lines from")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, path, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	setupLogging(cfg)

	opts := tui.Options{Config: cfg, ConfigPath: path}

	if dbPath := storePath(cfg); dbPath != "" {
		db, err := deps.DBOpener(dbPath)
		if err != nil {
			// Warning, not fatal
			fmt.Fprintf(stderr, "Warning: failed to open results store: %v\n", err)
		} else {
			defer db.Close()
			pruneResults(db, cfg)
			opts.Store = db
		}
	}

	if *pipePath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		opts.Pipe = pipe.Follow(ctx, *pipePath)
	}

	if path != "" {
		watcher, err := deps.WatcherCreator(path)
		if err != nil {
			logging.Error(fmt.Errorf("config watcher: %w", err))
		} else {
			defer watcher.Close()
			opts.Watcher = watcher
		}
	}

	model, err := tui.NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithMouseCellMotion())
	return deps.ProgramRunner(p)
}
