// Package pipe parses the line protocol external tools use to push data
// into the bar. Each line has the form PREFIX::KIND::ARGS:
//
//	zstatus::pipe::NAME::payload
//	zstatus::notify::message
//	zstatus::rerun::command_NAME
//
// The zjstatus prefix is accepted as well.
package pipe

import (
	"strings"
	"time"

	"github.com/young1lin/zstatus/internal/logging/events"
	"github.com/young1lin/zstatus/internal/statusline/state"
)

const sep = "::"

// Kind is the message verb
type Kind string

const (
	KindPipe   Kind = "pipe"
	KindNotify Kind = "notify"
	KindRerun  Kind = "rerun"
)

var prefixes = map[string]bool{"zstatus": true, "zjstatus": true}

// Message is one parsed protocol line
type Message struct {
	Kind Kind
	// Name is the pipe name for pipe messages and the command name,
	// without its command_ prefix, for rerun messages
	Name    string
	Payload string
}

// Parse parses one line. Lines with an unknown prefix or verb, or with
// missing arguments, are rejected.
func Parse(line string) (Message, bool) {
	line = strings.TrimRight(line, "\r")
	parts := strings.SplitN(line, sep, 3)
	if len(parts) < 3 || !prefixes[parts[0]] {
		return Message{}, false
	}

	args := parts[2]
	switch Kind(parts[1]) {
	case KindPipe:
		name, payload, ok := strings.Cut(args, sep)
		if !ok || name == "" {
			return Message{}, false
		}
		return Message{Kind: KindPipe, Name: name, Payload: payload}, true
	case KindNotify:
		return Message{Kind: KindNotify, Payload: args}, true
	case KindRerun:
		name := strings.TrimPrefix(args, "command_")
		if name == "" {
			return Message{}, false
		}
		return Message{Kind: KindRerun, Name: name}, true
	default:
		return Message{}, false
	}
}

// ParseAll parses every line of input, skipping lines that are not
// protocol messages
func ParseAll(input string) []Message {
	var out []Message
	for _, line := range strings.Split(input, "\n") {
		if msg, ok := Parse(line); ok {
			out = append(out, msg)
			continue
		}
		if line != "" {
			events.Pipe.Ignored(line)
		}
	}
	return out
}

// Apply records a pipe or notify message in snap. It reports whether the
// snapshot changed; rerun messages are left to the caller.
func Apply(snap *state.Snapshot, msg Message, now time.Time) bool {
	events.Pipe.Received(string(msg.Kind), msg.Name)
	switch msg.Kind {
	case KindPipe:
		if snap.PipeResults == nil {
			snap.PipeResults = make(map[string]string)
		}
		snap.PipeResults[msg.Name] = msg.Payload
		return true
	case KindNotify:
		snap.Notification = msg.Payload
		snap.NotificationAt = now
		return true
	default:
		return false
	}
}
