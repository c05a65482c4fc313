package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/zstatus/internal/logging"
	"github.com/young1lin/zstatus/internal/statusline/render"
	"github.com/young1lin/zstatus/internal/statusline/watch"
	"github.com/young1lin/zstatus/internal/statusline/widgets"
	"github.com/young1lin/zstatus/internal/store"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zstatus.yaml")
	if err := os.WriteFile(path, []byte(body+"\nlog:\n  file: \"-\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Cleanup(func() { logging.Configure("-") })
	return path
}

func TestRunUsage(t *testing.T) {
	var out, errOut bytes.Buffer

	if err := run(nil, nil, &out, &errOut); !errors.Is(err, errUsage) {
		t.Errorf("run() = %v, want usage error", err)
	}
	if err := run([]string{"bogus"}, nil, &out, &errOut); !errors.Is(err, errUsage) {
		t.Errorf("run(bogus) = %v, want usage error", err)
	}
	if err := run([]string{"help"}, nil, &out, &errOut); err != nil {
		t.Errorf("run(help) = %v", err)
	}
	if !strings.Contains(out.String(), "usage") {
		t.Errorf("help output = %q", out.String())
	}

	out.Reset()
	if err := run([]string{"version"}, nil, &out, &errOut); err != nil {
		t.Errorf("run(version) = %v", err)
	}
	if !strings.HasPrefix(out.String(), "zstatus ") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestRenderOneShot(t *testing.T) {
	path := writeConfig(t, "format:\n  left: \"AA{mode}BB\"\n  right: \"\"\nstore:\n  path: \"-\"")

	var out, errOut bytes.Buffer
	err := run([]string{"render", "--config", path, "--width", "20"}, strings.NewReader(`{"mode":"normal"}`), &out, &errOut)
	if err != nil {
		t.Fatalf("render: %v (stderr %q)", err, errOut.String())
	}

	line := strings.TrimSuffix(render.Strip(out.String()), "\n")
	if line != "AANORMALBB          " {
		t.Errorf("line = %q", line)
	}
}

func TestRenderClick(t *testing.T) {
	path := writeConfig(t, "format:\n  left: \"AA{mode}BB\"\n  right: \"\"\nstore:\n  path: \"-\"")

	var out, errOut bytes.Buffer
	err := run([]string{"render", "--config", path, "--width", "20", "--click", "3"}, strings.NewReader(`{"mode":"normal"}`), &out, &errOut)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), out.String())
	}
	var action widgets.Action
	if err := json.Unmarshal([]byte(lines[1]), &action); err != nil {
		t.Fatalf("action line: %v", err)
	}
	if action.Kind != widgets.ActionNextMode || action.Offset != 0 || action.Target != "normal" {
		t.Errorf("action = %+v", action)
	}
}

func TestRenderClickMiss(t *testing.T) {
	path := writeConfig(t, "format:\n  left: \"AA{mode}BB\"\n  right: \"\"\nstore:\n  path: \"-\"")

	var out, errOut bytes.Buffer
	err := run([]string{"render", "--config", path, "--width", "20", "--click", "1"}, strings.NewReader(`{"mode":"normal"}`), &out, &errOut)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(out.String()), "\n"); len(lines) != 1 {
		t.Errorf("a click on literal text should not produce actions: %q", out.String())
	}
}

func TestRenderPersistsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")
	path := writeConfig(t, "format:\n  left: \"{command_git}|{pipe_build}\"\n  right: \"\"\nstore:\n  path: \""+dbPath+"\"")

	var out, errOut bytes.Buffer
	stdin := `{"command_results":{"git":"main"},"pipe_results":{"build":"ok"}}`
	if err := run([]string{"render", "--config", path, "--width", "10"}, strings.NewReader(stdin), &out, &errOut); err != nil {
		t.Fatalf("first render: %v", err)
	}
	if got := strings.TrimSpace(render.Strip(out.String())); got != "main|ok" {
		t.Errorf("first line = %q", got)
	}

	out.Reset()
	if err := run([]string{"render", "--config", path, "--width", "10"}, strings.NewReader(""), &out, &errOut); err != nil {
		t.Fatalf("second render: %v", err)
	}
	if got := strings.TrimSpace(render.Strip(out.String())); got != "main|ok" {
		t.Errorf("results should come from the store, line = %q", got)
	}
}

func TestRenderPipeLines(t *testing.T) {
	path := writeConfig(t, "format:\n  left: \"{pipe_build}|{notifications}\"\n  right: \"\"\nstore:\n  path: \"-\"")

	var out, errOut bytes.Buffer
	args := []string{
		"render", "--config", path, "--width", "20",
		"--pipe", "zstatus::pipe::build::ok",
		"--pipe", "noise\nzjstatus::notify::hi",
		"--pipe", "zstatus::rerun::command_git",
	}
	if err := run(args, strings.NewReader(""), &out, &errOut); err != nil {
		t.Fatalf("render: %v (stderr %q)", err, errOut.String())
	}
	if got := strings.TrimSpace(render.Strip(out.String())); got != "ok|! hi" {
		t.Errorf("line = %q", got)
	}
}

func TestRenderPrunesStaleResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")
	db, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := db.SaveResult(store.KindCommand, "old", "stale"); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	if _, err := db.Exec("UPDATE widget_results SET updated_at = ?", time.Now().Add(-2*time.Hour).Unix()); err != nil {
		t.Fatalf("backdate: %v", err)
	}
	if err := db.SaveResult(store.KindCommand, "new", "fresh"); err != nil {
		t.Fatalf("SaveResult: %v", err)
	}
	db.Close()

	path := writeConfig(t, "format:\n  left: \"{command_old}{command_new}\"\n  right: \"\"\nstore:\n  path: \""+dbPath+"\"\n  retention: 1h")

	var out, errOut bytes.Buffer
	if err := run([]string{"render", "--config", path, "--width", "20"}, strings.NewReader(""), &out, &errOut); err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := strings.TrimSpace(render.Strip(out.String())); got != "fresh" {
		t.Errorf("line = %q, stale result should be pruned", got)
	}

	db, err = store.Open(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer db.Close()
	results, err := db.LoadResults(store.KindCommand)
	if err != nil {
		t.Fatalf("LoadResults: %v", err)
	}
	if _, ok := results["old"]; ok || results["new"] != "fresh" {
		t.Errorf("results = %v", results)
	}
}

func TestRenderConfigError(t *testing.T) {
	path := writeConfig(t, "format:\n  precedence: \"xx\"\nstore:\n  path: \"-\"")

	var out, errOut bytes.Buffer
	err := run([]string{"render", "--config", path}, strings.NewReader(""), &out, &errOut)
	if err == nil {
		t.Fatal("render should fail")
	}
	if !strings.Contains(render.Strip(out.String()), "invalid precedence") {
		t.Errorf("error line = %q", out.String())
	}
}

func TestRenderBadInput(t *testing.T) {
	path := writeConfig(t, "store:\n  path: \"-\"")

	var out, errOut bytes.Buffer
	if err := run([]string{"render", "--config", path}, strings.NewReader("{"), &out, &errOut); err == nil {
		t.Error("invalid JSON should fail")
	}
	if err := run([]string{"render", "--config", filepath.Join(t.TempDir(), "missing.yaml")}, strings.NewReader(""), &out, &errOut); err == nil {
		t.Error("missing config should fail")
	}
	if err := run([]string{"render", "--nope"}, strings.NewReader(""), &out, &errOut); err == nil {
		t.Error("unknown flag should fail")
	}
}

func TestPreview(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")
	path := writeConfig(t, "store:\n  path: \""+dbPath+"\"")

	var openedDB, watched string
	var ran bool
	deps := &PreviewDependencies{
		DBOpener: func(p string) (*store.DB, error) {
			openedDB = p
			return store.Open(p)
		},
		WatcherCreator: func(p string) (watch.WatcherInterface, error) {
			watched = p
			return watch.NewTestWatcher(), nil
		},
		ProgramRunner: func(p *tea.Program) error {
			ran = true
			return nil
		},
	}

	var errOut bytes.Buffer
	if err := runPreview([]string{"--config", path}, &errOut, deps); err != nil {
		t.Fatalf("runPreview: %v", err)
	}
	if !ran {
		t.Error("program should run")
	}
	if openedDB != dbPath {
		t.Errorf("opened %q, want %q", openedDB, dbPath)
	}
	if watched != path {
		t.Errorf("watched %q, want %q", watched, path)
	}
}

func TestPreviewPipe(t *testing.T) {
	dir := t.TempDir()
	pipePath := filepath.Join(dir, "pipe.txt")
	if err := os.WriteFile(pipePath, []byte("zstatus::notify::hi\n"), 0o644); err != nil {
		t.Fatalf("write pipe: %v", err)
	}
	path := writeConfig(t, "store:\n  path: \"-\"")

	var ran bool
	deps := &PreviewDependencies{
		WatcherCreator: func(p string) (watch.WatcherInterface, error) {
			return watch.NewTestWatcher(), nil
		},
		ProgramRunner: func(p *tea.Program) error {
			ran = true
			return nil
		},
	}

	var errOut bytes.Buffer
	if err := runPreview([]string{"--config", path, "--pipe", pipePath}, &errOut, deps); err != nil {
		t.Fatalf("runPreview: %v", err)
	}
	if !ran {
		t.Error("program should run")
	}
}

func TestPreviewDegradesWithoutStore(t *testing.T) {
	path := writeConfig(t, "store:\n  path: \"/nonexistent/dir/results.db\"")

	deps := &PreviewDependencies{
		DBOpener: func(p string) (*store.DB, error) {
			return nil, errors.New("disk full")
		},
		WatcherCreator: func(p string) (watch.WatcherInterface, error) {
			return nil, errors.New("no inotify")
		},
		ProgramRunner: func(p *tea.Program) error { return nil },
	}

	var errOut bytes.Buffer
	if err := runPreview([]string{"--config", path}, &errOut, deps); err != nil {
		t.Fatalf("runPreview: %v", err)
	}
	if !strings.Contains(errOut.String(), "Warning") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestPreviewConfigError(t *testing.T) {
	path := writeConfig(t, "border:\n  position: \"left\"\nstore:\n  path: \"-\"")

	deps := &PreviewDependencies{
		WatcherCreator: func(p string) (watch.WatcherInterface, error) {
			return watch.NewTestWatcher(), nil
		},
		ProgramRunner: func(p *tea.Program) error {
			t.Error("program should not run with a broken config")
			return nil
		},
	}

	var errOut bytes.Buffer
	if err := runPreview([]string{"--config", path}, &errOut, deps); err == nil {
		t.Error("runPreview should fail")
	}
}

func TestTrimNullBytes(t *testing.T) {
	if got := string(trimNullBytes([]byte("a\x00b\x00"))); got != "ab" {
		t.Errorf("trimNullBytes = %q", got)
	}
}
