package movement

import "fmt"

// LayerID identifies a toggleable visibility group of parts.
type LayerID int

const (
	LayerBaseplate LayerID = iota
	LayerGearTrain
	LayerEscapement
	LayerBalanceAssembly
	LayerHands

	LayerCount = int(LayerHands) + 1
)

var layerNames = [LayerCount]string{
	"baseplate",
	"gearTrain",
	"escapement",
	"balanceAssembly",
	"hands",
}

// Layers returns every layer in display order.
func Layers() []LayerID {
	layers := make([]LayerID, LayerCount)
	for i := range layers {
		layers[i] = LayerID(i)
	}
	return layers
}

func (l LayerID) Valid() bool {
	return l >= 0 && int(l) < LayerCount
}

func (l LayerID) String() string {
	if !l.Valid() {
		return fmt.Sprintf("LayerID(%d)", int(l))
	}
	return layerNames[l]
}

// ParseLayer resolves a layer from its name.
func ParseLayer(name string) (LayerID, error) {
	for i, n := range layerNames {
		if n == name {
			return LayerID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown layer %q", name)
}

// PartID identifies one mechanical part. The zero value PartNone means
// nothing is selected.
type PartID int

const (
	PartNone PartID = iota
	PartBaseplate
	PartMainspring
	PartBarrel
	PartCenterWheel
	PartThirdWheel
	PartFourthWheel
	PartEscapeWheel
	PartPalletFork
	PartBalanceWheel
	PartHairspring
	PartDialTrain
	PartMinuteHand
	PartHourHand
	PartCrownWheel

	PartCount = int(PartCrownWheel)
)

var partNames = [PartCount + 1]string{
	"none",
	"baseplate",
	"mainspring",
	"barrel",
	"centerWheel",
	"thirdWheel",
	"fourthWheel",
	"escapeWheel",
	"palletFork",
	"balanceWheel",
	"hairspring",
	"dialTrain",
	"minuteHand",
	"hourHand",
	"crownWheel",
}

// Parts returns the 14 selectable parts.
func Parts() []PartID {
	parts := make([]PartID, PartCount)
	for i := range parts {
		parts[i] = PartID(i + 1)
	}
	return parts
}

// Valid reports whether p names a real part. PartNone is not a part.
func (p PartID) Valid() bool {
	return p > PartNone && int(p) <= PartCount
}

func (p PartID) String() string {
	if p != PartNone && !p.Valid() {
		return fmt.Sprintf("PartID(%d)", int(p))
	}
	return partNames[p]
}

func ParsePart(name string) (PartID, error) {
	for i, n := range partNames {
		if i > 0 && n == name {
			return PartID(i), nil
		}
	}
	return PartNone, fmt.Errorf("unknown part %q", name)
}

// FocusTargetID names a camera preset. The first LayerCount values mirror
// LayerID one to one; the rest are presets that are not layers.
type FocusTargetID int

const (
	FocusBaseplate FocusTargetID = iota
	FocusGearTrain
	FocusEscapement
	FocusBalanceAssembly
	FocusHands
	FocusOverview
	FocusMainspring
	FocusJewelTrain

	FocusTargetCount = int(FocusJewelTrain) + 1
)

var focusNames = [FocusTargetCount]string{
	"baseplate",
	"gearTrain",
	"escapement",
	"balanceAssembly",
	"hands",
	"overview",
	"mainspring",
	"jewelTrain",
}

// FocusTargets returns every focus target.
func FocusTargets() []FocusTargetID {
	targets := make([]FocusTargetID, FocusTargetCount)
	for i := range targets {
		targets[i] = FocusTargetID(i)
	}
	return targets
}

// FocusTargetForLayer returns the camera preset that frames layer l.
func FocusTargetForLayer(l LayerID) FocusTargetID {
	return FocusTargetID(l)
}

func (f FocusTargetID) Valid() bool {
	return f >= 0 && int(f) < FocusTargetCount
}

func (f FocusTargetID) String() string {
	if !f.Valid() {
		return fmt.Sprintf("FocusTargetID(%d)", int(f))
	}
	return focusNames[f]
}

func ParseFocusTarget(name string) (FocusTargetID, error) {
	for i, n := range focusNames {
		if n == name {
			return FocusTargetID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown focus target %q", name)
}
