//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", "global", 10},
		{"list context", "list", 5},
		{"leads context", "leads", 3},
		{"properties context", "properties", 4},
		{"reviews context", "reviews", 5},
		{"conversations context", "conversations", 2},
		{"demo context", "demo", 3},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}

			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestDemoBindings(t *testing.T) {
	var actions []Action
	for _, b := range ByContext("demo") {
		actions = append(actions, b.Action)
	}
	for _, want := range []Action{ActionDemoToggle, ActionDemoReset, ActionClose} {
		if !slices.Contains(actions, want) {
			t.Errorf("expected action %q in demo bindings", want)
		}
	}
}

func TestExceptContext(t *testing.T) {
	rest := ExceptContext("demo")
	if len(rest)+len(ByContext("demo")) != len(Bindings) {
		t.Errorf("ExceptContext and ByContext should partition Bindings")
	}
	for _, b := range rest {
		if b.Context == "demo" {
			t.Errorf("ExceptContext returned demo binding %q", b.Action)
		}
	}
}

// Keys outside the demo share one resolver, so they must not collide.
func TestAppBindings_NoKeyConflicts(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range ExceptContext("demo") {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok && prev != b.Action {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for i, b := range Bindings {
		if b.Action == "" {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
	}
}

func TestBindingsHaveValidContexts(t *testing.T) {
	for i, b := range Bindings {
		if !slices.Contains(Contexts, b.Context) {
			t.Errorf("binding[%d] (%s) has invalid context: %q", i, b.Action, b.Context)
		}
	}
}
