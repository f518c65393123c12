package animation

import (
	"math"

	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/ionut-t/tourbillon/pkg/scene"
)

// StateReader is the part of the store a driver reads each frame.
type StateReader interface {
	State() scene.State
}

// Driver animates one part. Its phase is private to it and never written
// back to the store.
type Driver struct {
	part   movement.PartID
	layer  movement.LayerID
	rate   Rate
	reader StateReader

	phase   float64
	simTime float64
}

func NewDriver(part movement.PartID, rate Rate, reader StateReader) *Driver {
	return &Driver{
		part:   part,
		layer:  movement.LayerOf(part),
		rate:   rate,
		reader: reader,
	}
}

// NewDrivers builds a driver for every part in Rates, in PartID order.
func NewDrivers(reader StateReader) []*Driver {
	var drivers []*Driver
	for _, p := range movement.Parts() {
		if rate, ok := Rates[p]; ok {
			drivers = append(drivers, NewDriver(p, rate, reader))
		}
	}
	return drivers
}

func (d *Driver) Part() movement.PartID {
	return d.part
}

func (d *Driver) Layer() movement.LayerID {
	return d.layer
}

func (d *Driver) Rate() Rate {
	return d.rate
}

// Phase is the current angle in radians.
func (d *Driver) Phase() float64 {
	return d.phase
}

// Tick advances the driver by delta seconds at the store's speed. Nothing
// happens while the part's layer is hidden.
func (d *Driver) Tick(delta float64) {
	state := d.reader.State()
	if !state.Visible(d.layer) {
		return
	}
	d.Advance(delta, state.AnimationSpeed)
}

// Advance applies the motion law for delta seconds at speed.
func (d *Driver) Advance(delta, speed float64) {
	if !(delta > 0) {
		return
	}

	switch d.rate.Motion {
	case Rotation:
		d.phase += RotationDelta(d.rate, speed, delta)
	case Oscillation:
		d.simTime += delta * speed
		d.phase = OscillationPhase(d.rate, d.simTime)
	}
}

// RotationDelta is the phase a rotating part gains over delta seconds.
func RotationDelta(r Rate, speed, delta float64) float64 {
	return (r.RPM / 60) * float64(r.Sign) * speed * 2 * math.Pi * delta
}

// OscillationPhase is the angle of an oscillating part after t seconds of
// simulated time.
func OscillationPhase(r Rate, t float64) float64 {
	return r.Amplitude * math.Sin(2*math.Pi*r.FrequencyHz*t)
}
