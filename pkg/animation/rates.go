package animation

import "github.com/ionut-t/tourbillon/pkg/movement"

// Motion selects the law a driver follows.
type Motion int

const (
	// Rotation accumulates phase without bound.
	Rotation Motion = iota
	// Oscillation swings back and forth around zero.
	Oscillation
)

func (m Motion) String() string {
	switch m {
	case Rotation:
		return "rotation"
	case Oscillation:
		return "oscillation"
	}
	return "unknown"
}

// Rate is the fixed angular behaviour of a part at speed 1. Rotation uses
// RPM and Sign; oscillation uses FrequencyHz and Amplitude (radians).
type Rate struct {
	Motion      Motion
	RPM         float64
	Sign        int
	FrequencyHz float64
	Amplitude   float64
}

// Display rates. The real train is far too slow to watch, so each wheel is
// sped up by the same factor and the ratios between neighbours are kept.
const (
	barrelRPM    = 0.75
	centerRPM    = 3.0
	thirdRPM     = 9.0
	fourthRPM    = 24.0
	escapeRPM    = 60.0
	dialTrainRPM = 1.0
	hourRPM      = centerRPM / 12
	crownRPM     = 1.5

	balanceHz = 0.8
)

// Rates holds every animated part. Parts not listed (the baseplate) are
// static.
var Rates = map[movement.PartID]Rate{
	movement.PartBarrel:      {Motion: Rotation, RPM: barrelRPM, Sign: 1},
	movement.PartMainspring:  {Motion: Rotation, RPM: barrelRPM, Sign: 1},
	movement.PartCenterWheel: {Motion: Rotation, RPM: centerRPM, Sign: -1},
	movement.PartThirdWheel:  {Motion: Rotation, RPM: thirdRPM, Sign: 1},
	movement.PartFourthWheel: {Motion: Rotation, RPM: fourthRPM, Sign: -1},
	movement.PartEscapeWheel: {Motion: Rotation, RPM: escapeRPM, Sign: 1},
	movement.PartMinuteHand:  {Motion: Rotation, RPM: centerRPM, Sign: -1},
	movement.PartDialTrain:   {Motion: Rotation, RPM: dialTrainRPM, Sign: 1},
	movement.PartHourHand:    {Motion: Rotation, RPM: hourRPM, Sign: -1},
	movement.PartCrownWheel:  {Motion: Rotation, RPM: crownRPM, Sign: -1},

	movement.PartPalletFork:   {Motion: Oscillation, FrequencyHz: balanceHz, Amplitude: 0.18},
	movement.PartBalanceWheel: {Motion: Oscillation, FrequencyHz: balanceHz, Amplitude: 4.2},
	movement.PartHairspring:   {Motion: Oscillation, FrequencyHz: balanceHz, Amplitude: 0.35},
}

// Meshes lists pairs of wheels whose teeth engage. Meshed wheels turn in
// opposite directions.
var Meshes = [][2]movement.PartID{
	{movement.PartBarrel, movement.PartCenterWheel},
	{movement.PartCenterWheel, movement.PartThirdWheel},
	{movement.PartThirdWheel, movement.PartFourthWheel},
	{movement.PartFourthWheel, movement.PartEscapeWheel},
	{movement.PartMinuteHand, movement.PartDialTrain},
	{movement.PartBarrel, movement.PartCrownWheel},
}

// Coaxial lists parts that share an arbor and so turn together.
var Coaxial = [][2]movement.PartID{
	{movement.PartBarrel, movement.PartMainspring},
	{movement.PartCenterWheel, movement.PartMinuteHand},
}
