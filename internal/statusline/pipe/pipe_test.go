package pipe

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/young1lin/zstatus/internal/logging"
	"github.com/young1lin/zstatus/internal/statusline/state"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Message
		ok   bool
	}{
		{name: "pipe", line: "zstatus::pipe::build::ok", want: Message{Kind: KindPipe, Name: "build", Payload: "ok"}, ok: true},
		{name: "legacy prefix", line: "zjstatus::pipe::build::ok", want: Message{Kind: KindPipe, Name: "build", Payload: "ok"}, ok: true},
		{name: "payload keeps separators", line: "zstatus::pipe::url::http://x::y", want: Message{Kind: KindPipe, Name: "url", Payload: "http://x::y"}, ok: true},
		{name: "empty payload", line: "zstatus::pipe::build::", want: Message{Kind: KindPipe, Name: "build"}, ok: true},
		{name: "pipe without payload", line: "zstatus::pipe::build"},
		{name: "pipe without name", line: "zstatus::pipe::::x"},
		{name: "notify", line: "zstatus::notify::saved 3 files", want: Message{Kind: KindNotify, Payload: "saved 3 files"}, ok: true},
		{name: "notify trims carriage return", line: "zjstatus::notify::hi\r", want: Message{Kind: KindNotify, Payload: "hi"}, ok: true},
		{name: "rerun", line: "zstatus::rerun::command_git", want: Message{Kind: KindRerun, Name: "git"}, ok: true},
		{name: "rerun bare name", line: "zstatus::rerun::git", want: Message{Kind: KindRerun, Name: "git"}, ok: true},
		{name: "rerun empty", line: "zstatus::rerun::command_"},
		{name: "too few parts", line: "zstatus::notify"},
		{name: "unknown prefix", line: "tmux::notify::hi"},
		{name: "unknown verb", line: "zstatus::wat::x"},
		{name: "empty", line: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.line)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseAll(t *testing.T) {
	logging.Configure("-")
	defer logging.Configure("")

	input := "noise\nzstatus::pipe::a::1\n\nzstatus::rerun::command_b\nzstatus::pipe::a::2\n"
	got := ParseAll(input)
	want := []Message{
		{Kind: KindPipe, Name: "a", Payload: "1"},
		{Kind: KindRerun, Name: "b"},
		{Kind: KindPipe, Name: "a", Payload: "2"},
	}
	if len(got) != len(want) {
		t.Fatalf("ParseAll() = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestApply(t *testing.T) {
	logging.Configure("-")
	defer logging.Configure("")

	now := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	var snap state.Snapshot

	if !Apply(&snap, Message{Kind: KindPipe, Name: "build", Payload: "ok"}, now) {
		t.Error("pipe should change the snapshot")
	}
	if snap.PipeResults["build"] != "ok" {
		t.Errorf("PipeResults = %v", snap.PipeResults)
	}

	if !Apply(&snap, Message{Kind: KindNotify, Payload: "done"}, now) {
		t.Error("notify should change the snapshot")
	}
	if snap.Notification != "done" || !snap.NotificationAt.Equal(now) {
		t.Errorf("notification = %q at %v", snap.Notification, snap.NotificationAt)
	}

	if Apply(&snap, Message{Kind: KindRerun, Name: "git"}, now) {
		t.Error("rerun is handled by the caller")
	}
}

func TestLines(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var got []string
	for line := range Lines(ctx, strings.NewReader("a\nb\r\nc")) {
		got = append(got, line)
	}
	if strings.Join(got, "|") != "a|b|c" {
		t.Errorf("Lines() = %q", got)
	}
}

func TestFollowRegularFile(t *testing.T) {
	logging.Configure("-")
	defer logging.Configure("")

	path := filepath.Join(t.TempDir(), "pipe.txt")
	if err := os.WriteFile(path, []byte("zstatus::notify::one\nzstatus::notify::two\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var got []string
	for line := range Follow(ctx, path) {
		got = append(got, line)
	}
	if len(got) != 2 || got[1] != "zstatus::notify::two" {
		t.Errorf("Follow() = %q", got)
	}
}

func TestFollowMissingFile(t *testing.T) {
	logging.Configure("-")
	defer logging.Configure("")

	lines := Follow(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if _, ok := <-lines; ok {
		t.Error("channel should close when the file can't be opened")
	}
}
