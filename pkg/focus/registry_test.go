package focus

import (
	"testing"

	"github.com/ionut-t/tourbillon/pkg/movement"
)

func TestLookupIsTotal(t *testing.T) {
	seen := make(map[Descriptor]movement.FocusTargetID)

	for _, id := range movement.FocusTargets() {
		d := Lookup(id)

		if d == (Descriptor{}) {
			t.Fatalf("Expected a preset for %s", id)
		}

		if d.Position == d.Target {
			t.Errorf("preset %s looks at its own position", id)
		}

		if other, dup := seen[d]; dup {
			t.Errorf("presets %s and %s are identical", id, other)
		}
		seen[d] = id
	}

	if len(seen) != movement.FocusTargetCount {
		t.Errorf("Expected %d presets, got %d", movement.FocusTargetCount, len(seen))
	}
}

func TestLookupOutOfRange(t *testing.T) {
	got := Lookup(movement.FocusTargetID(99))
	if got != Lookup(movement.FocusOverview) {
		t.Errorf("Expected overview preset for out of range id, got %+v", got)
	}
}
