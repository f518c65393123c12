package movement

import "testing"

func TestEnumerationSizes(t *testing.T) {
	if got := len(Layers()); got != 5 {
		t.Errorf("Expected 5 layers, got %d", got)
	}

	if got := len(Parts()); got != 14 {
		t.Errorf("Expected 14 parts, got %d", got)
	}

	if got := len(FocusTargets()); got != 8 {
		t.Errorf("Expected 8 focus targets, got %d", got)
	}
}

func TestFocusTargetsIncludeEveryLayer(t *testing.T) {
	for _, l := range Layers() {
		f := FocusTargetForLayer(l)
		if !f.Valid() {
			t.Fatalf("layer %s maps to invalid focus target %d", l, f)
		}

		if f.String() != l.String() {
			t.Errorf("Expected focus target %q for layer %q, got %q", l.String(), l.String(), f.String())
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) (string, error)
		names []string
	}{
		{
			name: "layers",
			parse: func(s string) (string, error) {
				l, err := ParseLayer(s)
				return l.String(), err
			},
			names: layerNames[:],
		},
		{
			name: "parts",
			parse: func(s string) (string, error) {
				p, err := ParsePart(s)
				return p.String(), err
			},
			names: partNames[1:],
		},
		{
			name: "focus targets",
			parse: func(s string) (string, error) {
				f, err := ParseFocusTarget(s)
				return f.String(), err
			},
			names: focusNames[:],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, n := range tt.names {
				got, err := tt.parse(n)
				if err != nil {
					t.Fatalf("Unexpected error for %q: %v", n, err)
				}
				if got != n {
					t.Errorf("Expected %q, got %q", n, got)
				}
			}

			if _, err := tt.parse("tourbillon"); err == nil {
				t.Error("Expected error for unknown name")
			}
		})
	}
}

func TestParsePartRejectsNone(t *testing.T) {
	if _, err := ParsePart("none"); err == nil {
		t.Error("Expected \"none\" to be rejected as a part name")
	}
}

func TestPartValidity(t *testing.T) {
	if PartNone.Valid() {
		t.Error("PartNone must not be valid")
	}

	if PartID(PartCount + 1).Valid() {
		t.Error("out of range part must not be valid")
	}

	for _, p := range Parts() {
		if !p.Valid() {
			t.Errorf("Expected %s to be valid", p)
		}
	}
}

func TestCatalogCoversEveryPart(t *testing.T) {
	for _, p := range Parts() {
		info, ok := Lookup(p)
		if !ok {
			t.Fatalf("no catalog entry for %s", p)
		}
		if info.Label == "" || info.Description == "" {
			t.Errorf("catalog entry for %s is incomplete", p)
		}
	}

	if _, ok := Lookup(PartNone); ok {
		t.Error("PartNone must not have a catalog entry")
	}
}

func TestPartsInLayerPartition(t *testing.T) {
	seen := make(map[PartID]bool)

	for _, l := range Layers() {
		for _, p := range PartsInLayer(l) {
			if seen[p] {
				t.Errorf("%s appears in more than one layer", p)
			}
			seen[p] = true
		}
	}

	if len(seen) != PartCount {
		t.Errorf("Expected %d parts across layers, got %d", PartCount, len(seen))
	}
}
