// Package logging writes errors and opt-in JSON trace entries to a log file.
// The status line owns stdout, so nothing is ever printed there.
package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "zstatus.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	disabled     bool
)

// Error appends err to the log file
func Error(err error) {
	if err == nil {
		return
	}

	mu.Lock()
	path, off := logPath, disabled
	mu.Unlock()
	if off {
		return
	}

	f, ferr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if ferr != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", ferr)
		return
	}
	defer f.Close()

	logger := log.New(f, "", log.LstdFlags)
	logger.Println(err)
}

// Warn appends a formatted warning to the log file
func Warn(format string, args ...interface{}) {
	Error(fmt.Errorf("warning: "+format, args...))
}

// SetTraceEnabled toggles emission of structured trace entries
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether tracing is on
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled && !disabled
}

// Trace appends a structured JSON entry when tracing is enabled
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	mu.Lock()
	path := logPath
	mu.Unlock()

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
		return
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path; "-" disables logging. Directories are created when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()

	path = strings.TrimSpace(path)
	disabled = path == "-"
	if path == "" || disabled {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}
