// Package watch reloads the status bar configuration when its file changes
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/young1lin/zstatus/internal/statusline/config"
)

// DefaultDebounce coalesces the bursts of events editors produce on save
const DefaultDebounce = 150 * time.Millisecond

// WatcherInterface defines the interface for config watchers
type WatcherInterface interface {
	Configs() <-chan *config.Config
	Errors() <-chan error
	Close() error
}

// Watcher monitors a config file and emits each successfully parsed revision
type Watcher struct {
	watcher    *fsnotify.Watcher
	filePath   string
	debounce   time.Duration
	configChan chan *config.Config
	errorChan  chan error
	done       chan struct{}
}

// NewWatcher starts watching the directory that holds filePath. Watching the
// directory survives editors that replace the file on save.
func NewWatcher(filePath string, debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	filePath = filepath.Clean(filePath)
	if err := fsWatcher.Add(filepath.Dir(filePath)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		watcher:    fsWatcher,
		filePath:   filePath,
		debounce:   debounce,
		configChan: make(chan *config.Config, 1),
		errorChan:  make(chan error, 10),
		done:       make(chan struct{}),
	}

	go w.watch()

	return w, nil
}

func (w *Watcher) watch() {
	defer close(w.configChan)
	defer close(w.errorChan)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timer.Reset(w.debounce)
			}

		case <-timer.C:
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := config.LoadFile(w.filePath)
	if err != nil {
		w.sendError(err)
		return
	}

	// Only the newest revision matters, drop a pending one
	select {
	case <-w.configChan:
	default:
	}
	select {
	case w.configChan <- cfg:
	case <-w.done:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errorChan <- err:
	case <-w.done:
	}
}

// Configs returns a channel of reloaded configurations
func (w *Watcher) Configs() <-chan *config.Config {
	return w.configChan
}

// Errors returns a channel of watch and parse errors
func (w *Watcher) Errors() <-chan error {
	return w.errorChan
}

// Close stops watching the file
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}

// TestWatcher is a helper for testing that provides direct control over channels
type TestWatcher struct {
	configChan chan *config.Config
	errorChan  chan error
	closed     bool
	mu         sync.Mutex
}

// NewTestWatcher creates a test watcher with controllable channels
func NewTestWatcher() *TestWatcher {
	return &TestWatcher{
		configChan: make(chan *config.Config, 10),
		errorChan:  make(chan error, 10),
	}
}

func (tw *TestWatcher) Configs() <-chan *config.Config {
	return tw.configChan
}

func (tw *TestWatcher) Errors() <-chan error {
	return tw.errorChan
}

func (tw *TestWatcher) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.closed {
		return nil
	}
	tw.closed = true
	close(tw.configChan)
	close(tw.errorChan)
	return nil
}

// SendConfig delivers a config revision
func (tw *TestWatcher) SendConfig(cfg *config.Config) {
	tw.configChan <- cfg
}

// SendError delivers an error
func (tw *TestWatcher) SendError(err error) {
	tw.errorChan <- err
}
