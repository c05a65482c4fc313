package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/young1lin/zstatus/internal/config"
	"github.com/young1lin/zstatus/internal/logging"
	"github.com/young1lin/zstatus/internal/logging/events"
	statusconfig "github.com/young1lin/zstatus/internal/statusline/config"
	"github.com/young1lin/zstatus/internal/store"
	"github.com/young1lin/zstatus/internal/update"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

var errUsage = errors.New("usage: zstatus <render|preview|version> [flags]")

func main() {
	// Initialize Windows console for UTF-8 and ANSI support
	initConsole()

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "zstatus: %v\n", err)
		exitFunc(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "render":
		return runRender(args[1:], stdin, stdout, stderr)
	case "preview":
		return runPreview(args[1:], stderr, defaultPreviewDependencies())
	case "version", "--version":
		fmt.Fprintln(stdout, update.String())
		return nil
	case "help", "-h", "--help":
		fmt.Fprintln(stdout, errUsage.Error())
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

// loadConfig loads an explicit config file, or the first file found on the
// platform search path. It returns the path that was loaded, if any.
func loadConfig(path string) (*statusconfig.Config, string, error) {
	if path != "" {
		cfg, err := statusconfig.LoadFile(path)
		return cfg, path, err
	}
	return statusconfig.LoadFirst(config.ConfigFileCandidates()...)
}

func setupLogging(cfg *statusconfig.Config) {
	path := cfg.Log.File
	if path == "" {
		path = config.LogFilePath()
	}
	logging.Configure(path)
	logging.SetTraceEnabled(cfg.Log.Trace)
}

// storePath returns the results database path, or "" when persistence is off
func storePath(cfg *statusconfig.Config) string {
	switch cfg.Store.Path {
	case "-":
		return ""
	case "":
		return config.ResultsDBPath()
	default:
		return cfg.Store.Path
	}
}

// pruneResults drops stored results older than the configured retention
func pruneResults(db *store.DB, cfg *statusconfig.Config) {
	if cfg.Store.Retention <= 0 {
		return
	}
	n, err := db.Prune(time.Now().Add(-cfg.Store.Retention))
	if err != nil {
		logging.Error(fmt.Errorf("prune results: %w", err))
		return
	}
	events.Store.Pruned(n, cfg.Store.Retention.String())
}

func trimNullBytes(data []byte) []byte {
	result := make([]byte, 0, len(data))
	for _, b := range data {
		if b != 0 {
			result = append(result, b)
		}
	}
	return result
}
