package keybinds

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/studiowebux/tally/internal/logging"
)

func TestDefaultRegistry_Normal(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		key  string
		want Action
	}{
		{"n", ActionNewCounter},
		{"a", ActionAdd},
		{"s", ActionSubtract},
		{"up", ActionNavigateUp},
		{"k", ActionNavigateUp},
		{"down", ActionNavigateDown},
		{"j", ActionNavigateDown},
		{"right", ActionIncrement},
		{"l", ActionIncrement},
		{"left", ActionDecrement},
		{";", ActionDecrement},
		{"d", ActionDelete},
		{"esc", ActionClearSelection},
		{"q", ActionQuit},
		{"ctrl+c", ActionQuitForce},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := r.Match(ContextNormal, tt.key)
			if !ok || got != tt.want {
				t.Errorf("Match(normal, %q) = (%q, %v), want %q", tt.key, got, ok, tt.want)
			}
		})
	}

	if _, ok := r.Match(ContextNormal, "x"); ok {
		t.Error("x should be unbound in normal mode")
	}
}

func TestMatch_FallsBackThroughParents(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		context Context
		key     string
		want    Action
		wantOK  bool
	}{
		{ContextCreate, "enter", ActionTextSubmit, true},
		{ContextCreate, "esc", ActionTextCancel, true},
		{ContextCreate, "ctrl+c", ActionQuitForce, true},
		{ContextCreate, "k", "", false},
		{ContextCreate, "q", "", false},
		{ContextAdjust, "k", ActionNavigateUp, true},
		{ContextAdjust, "a", ActionAdd, true},
		{ContextAdjust, "enter", ActionTextSubmit, true},
		{ContextAdjust, "ctrl+v", ActionTextPaste, true},
		{ContextAdjust, "5", "", false},
		{ContextAdjust, "l", "", false},
	}

	for _, tt := range tests {
		got, ok := r.Match(tt.context, tt.key)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Match(%s, %q) = (%q, %v), want (%q, %v)", tt.context, tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestUnbind(t *testing.T) {
	r := NewDefaultRegistry()
	r.Unbind(ContextNormal, ActionIncrement)

	if r.HasBinding(ContextNormal, "l") || r.HasBinding(ContextNormal, "right") {
		t.Error("increment keys still bound after Unbind")
	}
	if !r.HasBinding(ContextNormal, "left") {
		t.Error("Unbind removed an unrelated action")
	}
}

func TestGetBinding(t *testing.T) {
	r := NewDefaultRegistry()

	if got := r.GetBinding(ContextNormal, ActionIncrement); !reflect.DeepEqual(got, []string{"l", "right"}) {
		t.Errorf("GetBinding(normal, increment) = %v", got)
	}
	if got := r.GetBindingString(ContextCreate, ActionTextSubmit); got != "enter" {
		t.Errorf("GetBindingString(create, submit) = %q", got)
	}
	if got := r.GetBindingString(ContextCreate, ActionDelete); got != "unbound" {
		t.Errorf("GetBindingString(create, delete) = %q", got)
	}
}

func TestListBindings_Sorted(t *testing.T) {
	r := NewDefaultRegistry()
	bindings := r.ListBindings(ContextAdjust)

	if len(bindings) != 6 {
		t.Fatalf("ListBindings(adjust) returned %d bindings", len(bindings))
	}
	for i := 1; i < len(bindings); i++ {
		prev, cur := bindings[i-1], bindings[i]
		if prev.Action > cur.Action || (prev.Action == cur.Action && prev.Key > cur.Key) {
			t.Errorf("bindings not sorted at %d: %+v before %+v", i, prev, cur)
		}
	}
}

func TestClone_IsIndependent(t *testing.T) {
	r := NewDefaultRegistry()
	c := r.Clone()
	c.Register(ContextNormal, "x", ActionDelete)

	if r.HasBinding(ContextNormal, "x") {
		t.Error("clone shares bindings with original")
	}
	if !c.HasBinding(ContextNormal, "q") {
		t.Error("clone lost default bindings")
	}
}

func TestApplyConfig(t *testing.T) {
	r, err := LoadOrDefault(Overrides{
		"normal": {"increment": "+, right"},
	})
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}

	if got, _ := r.Match(ContextNormal, "+"); got != ActionIncrement {
		t.Errorf("+ = %q, want increment", got)
	}
	if r.HasBinding(ContextNormal, "l") {
		t.Error("l should no longer increment")
	}
	if got, _ := r.Match(ContextNormal, "d"); got != ActionDelete {
		t.Error("unrelated defaults should survive")
	}
}

func TestApplyConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		overrides Overrides
	}{
		{"unknown context", Overrides{"sidebar": {"quit": "q"}}},
		{"unknown action", Overrides{"normal": {"launch": "x"}}},
		{"bad key", Overrides{"normal": {"quit": "ctrl+"}}},
		{"digit in adjust", Overrides{"adjust": {"add": "1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadOrDefault(tt.overrides); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestApplyConfig_ErrorLeavesRegistryUnchanged(t *testing.T) {
	r := NewDefaultRegistry()

	// "normal" is applied before "sidebar" fails
	err := ApplyConfig(r, Overrides{
		"normal":  {"increment": "+"},
		"sidebar": {"quit": "q"},
	})
	if err == nil {
		t.Fatal("expected error for unknown context")
	}

	if got, _ := r.Match(ContextNormal, "l"); got != ActionIncrement {
		t.Errorf("l = %q, want increment", got)
	}
	if r.HasBinding(ContextNormal, "+") {
		t.Error("+ bound despite the failed override")
	}
}

func TestLoadOrDefault_LogsWarnings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.log")
	closeFn, err := logging.Setup(path, "warn")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	t.Cleanup(func() { logging.Setup("", "") })

	if _, err := LoadOrDefault(Overrides{"create": {"text_submit": "x"}}); err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	closeFn()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "'x' cannot be typed in counter names") {
		t.Errorf("warning not logged:\n%s", data)
	}
}

func TestLoadOrDefault_NoOverrides(t *testing.T) {
	r, err := LoadOrDefault(nil)
	if err != nil {
		t.Fatalf("LoadOrDefault(nil) error = %v", err)
	}
	if !r.HasBinding(ContextNormal, "q") {
		t.Error("default bindings missing")
	}
}
