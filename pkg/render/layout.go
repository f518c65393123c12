package render

import (
	"cogentcore.org/core/math32"
	"github.com/ionut-t/tourbillon/pkg/movement"
)

// Kind decides how a part is drawn.
type Kind int

const (
	KindPlate Kind = iota
	KindWheel
	KindSpring
	KindHand
	KindFork
)

// Placement is where a part sits in the model. Scene units are millimetres
// with the plate in the XY plane, bridges toward +Z and the dial toward -Z.
type Placement struct {
	Part   movement.PartID
	Kind   Kind
	Center math32.Vector3
	Radius float32
	Teeth  int
	// Parent is the part that encloses this one for picking.
	Parent movement.PartID
}

// Layout is the static model, in PartID order.
var Layout = []Placement{
	{Part: movement.PartBaseplate, Kind: KindPlate, Center: math32.Vec3(0, 0, 0), Radius: 14},
	{Part: movement.PartMainspring, Kind: KindSpring, Center: math32.Vec3(-6, 5, 1.2), Radius: 3.4, Parent: movement.PartBarrel},
	{Part: movement.PartBarrel, Kind: KindWheel, Center: math32.Vec3(-6, 5, 1), Radius: 4.6, Teeth: 80, Parent: movement.PartBaseplate},
	{Part: movement.PartCenterWheel, Kind: KindWheel, Center: math32.Vec3(0, 0, 1.5), Radius: 3.8, Teeth: 64, Parent: movement.PartBaseplate},
	{Part: movement.PartThirdWheel, Kind: KindWheel, Center: math32.Vec3(2.5, 4, 2), Radius: 2.8, Teeth: 60, Parent: movement.PartBaseplate},
	{Part: movement.PartFourthWheel, Kind: KindWheel, Center: math32.Vec3(5, 0.5, 2.5), Radius: 2.4, Teeth: 60, Parent: movement.PartBaseplate},
	{Part: movement.PartEscapeWheel, Kind: KindWheel, Center: math32.Vec3(6, 4, 3), Radius: 1.6, Teeth: 15, Parent: movement.PartBaseplate},
	{Part: movement.PartPalletFork, Kind: KindFork, Center: math32.Vec3(7.6, 2.4, 3.2), Radius: 1.8, Parent: movement.PartBaseplate},
	{Part: movement.PartBalanceWheel, Kind: KindWheel, Center: math32.Vec3(8, -4, 4), Radius: 4, Parent: movement.PartBaseplate},
	{Part: movement.PartHairspring, Kind: KindSpring, Center: math32.Vec3(8, -4, 4.3), Radius: 1.8, Parent: movement.PartBalanceWheel},
	{Part: movement.PartDialTrain, Kind: KindWheel, Center: math32.Vec3(-2.6, -2.2, -1.2), Radius: 1.6, Teeth: 30, Parent: movement.PartBaseplate},
	{Part: movement.PartMinuteHand, Kind: KindHand, Center: math32.Vec3(0, 0, -2.2), Radius: 11, Parent: movement.PartBaseplate},
	{Part: movement.PartHourHand, Kind: KindHand, Center: math32.Vec3(0, 0, -1.9), Radius: 7, Parent: movement.PartBaseplate},
	{Part: movement.PartCrownWheel, Kind: KindWheel, Center: math32.Vec3(-9.5, 8.5, 1.4), Radius: 1.8, Teeth: 24, Parent: movement.PartBaseplate},
}

// PlacementOf returns the placement of part.
func PlacementOf(part movement.PartID) (Placement, bool) {
	for _, p := range Layout {
		if p.Part == part {
			return p, true
		}
	}
	return Placement{}, false
}
