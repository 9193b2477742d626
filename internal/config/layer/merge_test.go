package layer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeepMerge(t *testing.T) {
	tests := []struct {
		name     string
		dst      map[string]any
		src      map[string]any
		expected map[string]any
	}{
		{
			name:     "nil dst",
			dst:      nil,
			src:      map[string]any{"a": 1},
			expected: map[string]any{"a": 1},
		},
		{
			name:     "nil src",
			dst:      map[string]any{"a": 1},
			src:      nil,
			expected: map[string]any{"a": 1},
		},
		{
			name:     "src overrides dst",
			dst:      map[string]any{"a": 1},
			src:      map[string]any{"a": 2},
			expected: map[string]any{"a": 2},
		},
		{
			name: "nested merge",
			dst: map[string]any{
				"area": map[string]any{"wrapperId": "a", "noTrim": false},
			},
			src: map[string]any{
				"area": map[string]any{"noTrim": true},
			},
			expected: map[string]any{
				"area": map[string]any{"wrapperId": "a", "noTrim": true},
			},
		},
		{
			name:     "scalar replaces map",
			dst:      map[string]any{"area": map[string]any{"wrapperId": "a"}},
			src:      map[string]any{"area": "flat"},
			expected: map[string]any{"area": "flat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeepMerge(tt.dst, tt.src)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("DeepMerge mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeepMergeCopiesSource(t *testing.T) {
	src := map[string]any{"area": map[string]any{"wrapperId": "a"}}
	merged := DeepMerge(nil, src)

	src["area"].(map[string]any)["wrapperId"] = "changed"
	if got, _ := GetByPath(merged, "area.wrapperId"); got != "a" {
		t.Errorf("merged map shares state with src: %v", got)
	}
}

func TestGetByPath(t *testing.T) {
	data := map[string]any{
		"logging": map[string]any{"level": "info"},
		"flat":    "x",
	}
	tests := []struct {
		path  string
		want  any
		found bool
	}{
		{"logging.level", "info", true},
		{"logging", map[string]any{"level": "info"}, true},
		{"flat", "x", true},
		{"flat.deeper", nil, false},
		{"missing", nil, false},
		{"logging.missing", nil, false},
	}
	for _, tt := range tests {
		got, found := GetByPath(data, tt.path)
		if found != tt.found {
			t.Errorf("GetByPath(%q) found = %v, want %v", tt.path, found, tt.found)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("GetByPath(%q) mismatch (-want +got):\n%s", tt.path, diff)
		}
	}

	if _, found := GetByPath(nil, "a"); found {
		t.Error("GetByPath on nil data should find nothing")
	}
}

func TestSetByPath(t *testing.T) {
	data := map[string]any{"area": "flat"}
	SetByPath(data, "area.wrapperId", "a")
	SetByPath(data, "logging.level", "debug")

	want := map[string]any{
		"area":    map[string]any{"wrapperId": "a"},
		"logging": map[string]any{"level": "debug"},
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("SetByPath mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenMap(t *testing.T) {
	data := map[string]any{
		"logging": map[string]any{"level": "info"},
		"area":    map[string]any{"noTrim": true, "wrapperId": "x"},
	}
	want := map[string]any{
		"logging.level":  "info",
		"area.noTrim":    true,
		"area.wrapperId": "x",
	}
	if diff := cmp.Diff(want, FlattenMap(data)); diff != "" {
		t.Errorf("FlattenMap mismatch (-want +got):\n%s", diff)
	}
}
