package widget

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/young1lin/zstatus/internal/statusline/state"
)

func TestFamily(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"command_git", "command"},
		{"command_", "command"},
		{"pipe_status", "pipe"},
		{"commander", "commander"},
		{"mode", "mode"},
		{"tabs", "tabs"},
	}
	for _, tt := range tests {
		if got := Family(tt.id); got != tt.want {
			t.Errorf("Family(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestFamilyMask(t *testing.T) {
	if FamilyMask("mode") != state.Mode {
		t.Error("mode should depend on Mode")
	}
	if !FamilyMask("tabs").Intersects(state.Pane) {
		t.Error("tabs should depend on Pane")
	}
	if FamilyMask("datetime") != state.Always {
		t.Error("datetime should always recompute")
	}
	if FamilyMask("nonexistent") != state.None {
		t.Error("unknown family should have no dependencies")
	}
}

func TestRegistryGetNormalizesFamily(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := NewMockWidget(ctrl)
	r := NewRegistry()
	r.Register("command", w)

	got, ok := r.Get("command_uptime")
	if !ok || got != w {
		t.Fatalf("Get(command_uptime) = %v, %v", got, ok)
	}
	if _, ok := r.Get("mode"); ok {
		t.Error("mode was never registered")
	}
}

func TestRegistrySuggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewRegistry()
	r.Register("session", NewMockWidget(ctrl))
	r.Register("datetime", NewMockWidget(ctrl))
	r.Register("tabs", NewMockWidget(ctrl))

	if got, ok := r.Suggest("sesion"); !ok || got != "session" {
		t.Errorf("Suggest(sesion) = %q, %v", got, ok)
	}
	if _, ok := r.Suggest("zzz"); ok {
		t.Error("no suggestion expected for zzz")
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := NewRegistry()
	r.Register("tabs", NewMockWidget(ctrl))
	r.Register("mode", NewMockWidget(ctrl))

	names := r.Names()
	if len(names) != 2 || names[0] != "mode" || names[1] != "tabs" {
		t.Errorf("Names() = %v", names)
	}
}

func TestUnknownText(t *testing.T) {
	if got := UnknownText("foo"); got != "{unknown widget: foo}" {
		t.Errorf("UnknownText = %q", got)
	}
}
