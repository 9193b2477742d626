package layer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewLayer(t *testing.T) {
	l := NewLayer(SourceEnv, nil)
	if l.Name != "environment" {
		t.Errorf("Name = %q, want environment", l.Name)
	}
	if l.Priority != PriorityEnv {
		t.Errorf("Priority = %d, want %d", l.Priority, PriorityEnv)
	}
	if l.Data == nil {
		t.Error("Data should be initialized")
	}
}

func TestLayerClone(t *testing.T) {
	original := NewLayer(SourceFile, map[string]any{
		"area": map[string]any{"wrapperId": "a"},
		"list": []any{"x", map[string]any{"y": 1}},
	})
	original.Path = "/etc/composearea.toml"

	cloned := original.Clone()
	if diff := cmp.Diff(original, cloned); diff != "" {
		t.Fatalf("clone differs (-want +got):\n%s", diff)
	}

	original.Data["area"].(map[string]any)["wrapperId"] = "changed"
	original.Data["list"].([]any)[1].(map[string]any)["y"] = 2
	if got, _ := GetByPath(cloned.Data, "area.wrapperId"); got != "a" {
		t.Error("clone should be independent of the original map")
	}
	if got := cloned.Data["list"].([]any)[1].(map[string]any)["y"]; got != 1 {
		t.Error("clone should be independent of the original slice")
	}
}

func TestSourceString(t *testing.T) {
	tests := []struct {
		source Source
		want   string
	}{
		{SourceBuiltin, "defaults"},
		{SourceFile, "file"},
		{SourceEnv, "environment"},
		{SourceArgs, "arguments"},
		{Source(255), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.source.String(); got != tt.want {
			t.Errorf("Source(%d).String() = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestStack(t *testing.T) {
	var s Stack
	// Added out of order on purpose.
	s.Add(NewLayer(SourceEnv, map[string]any{"logging": map[string]any{"level": "debug"}}))
	s.Add(NewLayer(SourceBuiltin, map[string]any{
		"logging": map[string]any{"level": "info"},
		"area":    map[string]any{"wrapperClass": "cawrapper initialized", "noTrim": false},
	}))
	s.Add(NewLayer(SourceFile, map[string]any{"area": map[string]any{"noTrim": true}}))
	s.Add(nil)

	var names []string
	for _, l := range s.Layers() {
		names = append(names, l.Name)
	}
	if diff := cmp.Diff([]string{"defaults", "file", "environment"}, names); diff != "" {
		t.Errorf("layer order mismatch (-want +got):\n%s", diff)
	}

	want := map[string]any{
		"logging": map[string]any{"level": "debug"},
		"area":    map[string]any{"wrapperClass": "cawrapper initialized", "noTrim": true},
	}
	if diff := cmp.Diff(want, s.Merge()); diff != "" {
		t.Errorf("Merge mismatch (-want +got):\n%s", diff)
	}

	val, from, ok := s.Get("area.noTrim")
	if !ok || val != true || from.Source != SourceFile {
		t.Errorf("Get(area.noTrim) = %v from %v, want true from file", val, from)
	}
	if _, _, ok := s.Get("area.missing"); ok {
		t.Error("Get should not find a missing path")
	}

	// Merging does not modify the layers.
	if got, _ := GetByPath(s.Layers()[0].Data, "logging.level"); got != "info" {
		t.Errorf("defaults layer was modified: %v", got)
	}
}
