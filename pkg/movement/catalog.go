package movement

// Info is the display data for a part.
type Info struct {
	Label       string
	Layer       LayerID
	Description string // markdown
}

var catalog = map[PartID]Info{
	PartBaseplate: {
		Label: "Baseplate",
		Layer: LayerBaseplate,
		Description: `The **main plate** every other component is mounted on.

Jewelled bearings are pressed into it to carry the pivots of the train
wheels, and bridges screwed on top hold the other end of each arbor.`,
	},
	PartMainspring: {
		Label: "Mainspring",
		Layer: LayerGearTrain,
		Description: `A long coiled strip of spring alloy wound inside the barrel.

It stores the energy that drives the whole movement and releases it slowly
as it unwinds, turning the barrel.`,
	},
	PartBarrel: {
		Label: "Barrel",
		Layer: LayerGearTrain,
		Description: `The toothed drum that houses the mainspring.

Its teeth mesh with the centre wheel pinion, so it is the **first wheel**
of the going train. It turns roughly once every eight hours.`,
	},
	PartCenterWheel: {
		Label: "Centre wheel",
		Layer: LayerGearTrain,
		Description: `Rotates exactly once per hour.

Its arbor passes through the dial and carries the cannon pinion, which
drives the **minute hand** directly.`,
	},
	PartThirdWheel: {
		Label: "Third wheel",
		Layer: LayerGearTrain,
		Description: `Intermediate wheel between the centre and fourth wheels.

It steps the speed up and turns opposite to its neighbours.`,
	},
	PartFourthWheel: {
		Label:       "Fourth wheel",
		Layer:       LayerGearTrain,
		Description: `Turns once per minute and usually carries the **seconds hand**.`,
	},
	PartEscapeWheel: {
		Label: "Escape wheel",
		Layer: LayerEscapement,
		Description: `The last wheel of the train, with specially shaped teeth.

It is locked and released by the pallet fork, turning the continuous push
of the mainspring into discrete impulses.`,
	},
	PartPalletFork: {
		Label: "Pallet fork",
		Layer: LayerEscapement,
		Description: `A lever with two jewelled pallet stones.

It rocks back and forth with the balance, alternately locking the escape
wheel and passing an impulse back to the balance.`,
	},
	PartBalanceWheel: {
		Label: "Balance wheel",
		Layer: LayerBalanceAssembly,
		Description: `The **regulating organ** of the watch.

It oscillates at a fixed frequency set by its inertia and the hairspring;
every swing lets the train advance by one tooth.`,
	},
	PartHairspring: {
		Label: "Hairspring",
		Layer: LayerBalanceAssembly,
		Description: `A fine spiral spring attached to the balance staff.

Its restoring force makes the balance oscillate; it breathes in and out
with every swing.`,
	},
	PartDialTrain: {
		Label: "Dial train",
		Layer: LayerHands,
		Description: `The minute wheel and hour wheel under the dial.

They reduce the hourly rotation of the cannon pinion twelve times to drive
the hour hand.`,
	},
	PartMinuteHand: {
		Label:       "Minute hand",
		Layer:       LayerHands,
		Description: `Fitted to the cannon pinion; completes one turn per hour.`,
	},
	PartHourHand: {
		Label:       "Hour hand",
		Layer:       LayerHands,
		Description: `Fitted to the hour wheel; completes one turn every twelve hours.`,
	},
	PartCrownWheel: {
		Label: "Crown wheel",
		Layer: LayerGearTrain,
		Description: `Part of the winding works.

Turning the crown drives it, and it meshes with the ratchet wheel on the
barrel arbor to wind the mainspring.`,
	},
}

func init() {
	for _, p := range Parts() {
		if _, ok := catalog[p]; !ok {
			panic("movement: catalog has no entry for " + p.String())
		}
	}
}

// Lookup returns the display data for p. ok is false for PartNone and
// out-of-range ids.
func Lookup(p PartID) (Info, bool) {
	info, ok := catalog[p]
	return info, ok
}

// LayerOf returns the layer p belongs to.
func LayerOf(p PartID) LayerID {
	return catalog[p].Layer
}

// PartsInLayer returns the parts of l in PartID order.
func PartsInLayer(l LayerID) []PartID {
	var parts []PartID
	for _, p := range Parts() {
		if catalog[p].Layer == l {
			parts = append(parts, p)
		}
	}
	return parts
}
