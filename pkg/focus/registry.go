package focus

import (
	"cogentcore.org/core/math32"
	"github.com/ionut-t/tourbillon/pkg/movement"
)

// Descriptor is a concrete camera viewpoint: where the eye is and what it
// looks at. Scene units are millimetres, the movement plate lies in the
// XY plane and the dial side faces -Z.
type Descriptor struct {
	Position math32.Vector3
	Target   math32.Vector3
}

var presets = [movement.FocusTargetCount]Descriptor{
	movement.FocusBaseplate: {
		Position: math32.Vec3(0, -6, 34),
		Target:   math32.Vec3(0, 0, 0),
	},
	movement.FocusGearTrain: {
		Position: math32.Vec3(-2, -4, 22),
		Target:   math32.Vec3(-1, 1.5, 2),
	},
	movement.FocusEscapement: {
		Position: math32.Vec3(7, 1, 13),
		Target:   math32.Vec3(5.5, 3, 3),
	},
	movement.FocusBalanceAssembly: {
		Position: math32.Vec3(10, -6, 14),
		Target:   math32.Vec3(8, -4, 4),
	},
	movement.FocusHands: {
		Position: math32.Vec3(0, 0, -24),
		Target:   math32.Vec3(0, 0, -2),
	},
	movement.FocusOverview: {
		Position: math32.Vec3(0, -18, 30),
		Target:   math32.Vec3(0, 0, 0),
	},
	movement.FocusMainspring: {
		Position: math32.Vec3(-8, 7, 12),
		Target:   math32.Vec3(-6, 5, 2),
	},
	movement.FocusJewelTrain: {
		Position: math32.Vec3(3, 9, 15),
		Target:   math32.Vec3(2, 3, 2),
	},
}

func init() {
	for _, id := range movement.FocusTargets() {
		if presets[id] == (Descriptor{}) {
			panic("focus: no preset registered for " + id.String())
		}
	}
}

// Lookup returns the preset for id. Every valid FocusTargetID has one;
// out-of-range ids fall back to the overview.
func Lookup(id movement.FocusTargetID) Descriptor {
	if !id.Valid() {
		return presets[movement.FocusOverview]
	}
	return presets[id]
}
