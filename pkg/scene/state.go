package scene

import (
	"github.com/ionut-t/tourbillon/pkg/focus"
	"github.com/ionut-t/tourbillon/pkg/movement"
)

// State is a snapshot of one viewing session.
type State struct {
	layers         [movement.LayerCount]bool
	AnimationSpeed float64
	FocusTarget    movement.FocusTargetID
	SelectedPart   movement.PartID
}

// DefaultState is the state a session starts in: every layer visible,
// speed 1, overview focus and nothing selected.
func DefaultState() State {
	s := State{
		AnimationSpeed: 1,
		FocusTarget:    movement.FocusOverview,
		SelectedPart:   movement.PartNone,
	}
	for i := range s.layers {
		s.layers[i] = true
	}
	return s
}

// Visible reports whether layer l is rendered.
func (s State) Visible(l movement.LayerID) bool {
	if !l.Valid() {
		return false
	}
	return s.layers[l]
}

// VisibleLayers returns a fresh map holding exactly one entry per layer.
func (s State) VisibleLayers() map[movement.LayerID]bool {
	m := make(map[movement.LayerID]bool, movement.LayerCount)
	for i, v := range s.layers {
		m[movement.LayerID(i)] = v
	}
	return m
}

// FocusDescriptor is derived from FocusTarget on every read.
func (s State) FocusDescriptor() focus.Descriptor {
	return focus.Lookup(s.FocusTarget)
}

// HasSelection reports whether a part is being inspected.
func (s State) HasSelection() bool {
	return s.SelectedPart.Valid()
}
