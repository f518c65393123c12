package camera

import (
	"math"

	"cogentcore.org/core/math32"
	"github.com/ionut-t/tourbillon/pkg/focus"
)

// Retention is the fraction of the remaining gap left after one second.
const Retention = 0.02

// Source provides the descriptor the camera should travel to.
type Source interface {
	FocusDescriptor() focus.Descriptor
}

// Pose is where the camera is and what it looks at this frame.
type Pose struct {
	Position math32.Vector3
	Target   math32.Vector3
}

// Controller eases the camera toward the source's focus descriptor. Its pose
// lives here, not in the store.
type Controller struct {
	source   Source
	pose     Pose
	goal     focus.Descriptor
	lastSeen focus.Descriptor
}

// New starts the camera at start. Passing the source's current descriptor
// means the first frame does not move.
func New(source Source, start focus.Descriptor) *Controller {
	return &Controller{
		source:   source,
		pose:     Pose{Position: start.Position, Target: start.Target},
		goal:     start,
		lastSeen: start,
	}
}

// LerpFactor is the share of the gap closed over delta seconds. It is frame
// rate independent: n steps of delta/n close the same share as one step.
func LerpFactor(delta float64) float32 {
	if !(delta > 0) {
		return 0
	}
	if math.IsInf(delta, 1) {
		return 1
	}
	return float32(1 - math.Pow(Retention, delta))
}

// Tick advances the camera by delta seconds.
func (c *Controller) Tick(delta float64) {
	if d := c.source.FocusDescriptor(); d != c.lastSeen {
		c.lastSeen = d
		c.goal = d
	}

	f := LerpFactor(delta)
	if f == 0 {
		return
	}

	c.pose.Position = c.pose.Position.Lerp(c.goal.Position, f)
	c.pose.Target = c.pose.Target.Lerp(c.goal.Target, f)
}

func (c *Controller) Pose() Pose {
	return c.pose
}

// Goal is the descriptor the camera is currently heading for.
func (c *Controller) Goal() focus.Descriptor {
	return c.goal
}

// Distance is the larger of the position and look-at gaps to the goal.
func (c *Controller) Distance() float32 {
	return max(
		c.pose.Position.DistanceTo(c.goal.Position),
		c.pose.Target.DistanceTo(c.goal.Target),
	)
}

// Settled reports whether the camera is within eps of its goal.
func (c *Controller) Settled(eps float32) bool {
	return c.Distance() <= eps
}
