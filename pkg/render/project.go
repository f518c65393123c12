package render

import (
	"math"
	"slices"

	"cogentcore.org/core/math32"
	"github.com/ionut-t/tourbillon/pkg/camera"
	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/ionut-t/tourbillon/pkg/scene"
	"github.com/ionut-t/tourbillon/pkg/selection"
)

const (
	nearPlane     = 0.5
	rimSamples    = 48
	plateSamples  = 72
	spiralSamples = 90
	spiralTurns   = 3
	maxTeethMarks = 36
)

// Point is a position on the output surface.
type Point struct {
	X, Y float64
}

// Viewport describes the output surface. Aspect stretches x to make up for
// non-square pixels: terminal cells are about twice as tall as wide.
type Viewport struct {
	Width, Height float64
	Aspect        float64
	FOV           float64 // vertical, degrees
}

// TerminalViewport is a viewport measured in terminal cells.
func TerminalViewport(cols, rows int) Viewport {
	return Viewport{Width: float64(cols), Height: float64(rows), Aspect: 2, FOV: 50}
}

// ImageViewport is a viewport measured in pixels.
func ImageViewport(width, height int) Viewport {
	return Viewport{Width: float64(width), Height: float64(height), Aspect: 1, FOV: 50}
}

// Sprite is a projected part ready to draw.
type Sprite struct {
	Part     movement.PartID
	Layer    movement.LayerID
	Kind     Kind
	Parent   movement.PartID
	Depth    float64
	Selected bool

	Center  Point
	Outline []Point
	Lines   [][2]Point
	Marks   []Point
	Hit     selection.Shape
}

// Projector maps world points onto a viewport for one camera pose.
type Projector struct {
	eye, right, up, forward math32.Vector3
	vp                      Viewport
	focal                   float64
}

func NewProjector(pose camera.Pose, vp Viewport) Projector {
	forward := pose.Target.Sub(pose.Position).Normal()

	worldUp := math32.Vec3(0, 1, 0)
	if math32.Abs(forward.Dot(worldUp)) > 0.99 {
		worldUp = math32.Vec3(0, 0, 1)
	}

	right := forward.Cross(worldUp).Normal()
	up := right.Cross(forward)

	if vp.Aspect == 0 {
		vp.Aspect = 1
	}
	if vp.FOV == 0 {
		vp.FOV = 50
	}

	return Projector{
		eye:     pose.Position,
		right:   right,
		up:      up,
		forward: forward,
		vp:      vp,
		focal:   (vp.Height / 2) / math.Tan(vp.FOV*math.Pi/360),
	}
}

// Point projects p. ok is false when p is behind the near plane.
func (pr Projector) Point(p math32.Vector3) (Point, float64, bool) {
	d := p.Sub(pr.eye)
	z := float64(d.Dot(pr.forward))
	if z < nearPlane {
		return Point{}, z, false
	}

	x := float64(d.Dot(pr.right))
	y := float64(d.Dot(pr.up))

	return Point{
		X: pr.vp.Width/2 + x/z*pr.focal*pr.vp.Aspect,
		Y: pr.vp.Height/2 - y/z*pr.focal,
	}, z, true
}

func (pr Projector) points(world []math32.Vector3) []Point {
	out := make([]Point, 0, len(world))
	for _, w := range world {
		if p, _, ok := pr.Point(w); ok {
			out = append(out, p)
		}
	}
	return out
}

// Project builds sprites for every part in a visible layer, ordered back to
// front. phases holds the current angle of animated parts.
func Project(pose camera.Pose, state scene.State, phases map[movement.PartID]float64, vp Viewport) []Sprite {
	pr := NewProjector(pose, vp)

	sprites := make([]Sprite, 0, len(Layout))
	for _, pl := range Layout {
		layer := movement.LayerOf(pl.Part)
		if !state.Visible(layer) {
			continue
		}

		center, depth, ok := pr.Point(pl.Center)
		if !ok {
			continue
		}

		s := Sprite{
			Part:     pl.Part,
			Layer:    layer,
			Kind:     pl.Kind,
			Parent:   pl.Parent,
			Depth:    depth,
			Selected: state.SelectedPart == pl.Part,
			Center:   center,
		}
		buildGeometry(&s, pr, pl, phases[pl.Part])
		s.Hit = hitShape(s)

		sprites = append(sprites, s)
	}

	slices.SortStableFunc(sprites, func(a, b Sprite) int {
		switch {
		case a.Depth > b.Depth:
			return -1
		case a.Depth < b.Depth:
			return 1
		}
		return 0
	})

	return sprites
}

func onPlate(c math32.Vector3, r float32, angle float64) math32.Vector3 {
	return c.Add(math32.Vec3(r*float32(math.Cos(angle)), r*float32(math.Sin(angle)), 0))
}

func circle(c math32.Vector3, r float32, n int) []math32.Vector3 {
	pts := make([]math32.Vector3, n+1)
	for i := range pts {
		pts[i] = onPlate(c, r, 2*math.Pi*float64(i)/float64(n))
	}
	return pts
}

func buildGeometry(s *Sprite, pr Projector, pl Placement, phase float64) {
	c, r := pl.Center, pl.Radius

	switch pl.Kind {
	case KindPlate:
		s.Outline = pr.points(circle(c, r, plateSamples))

	case KindWheel:
		s.Outline = pr.points(circle(c, r, rimSamples))

		arms := 4
		if pl.Teeth == 0 {
			arms = 2
		}
		for i := range arms {
			a := phase + 2*math.Pi*float64(i)/float64(arms)
			s.addLine(pr, c, onPlate(c, r*0.85, a))
		}

		if teeth := min(pl.Teeth, maxTeethMarks); teeth > 0 {
			marks := make([]math32.Vector3, teeth)
			for i := range marks {
				marks[i] = onPlate(c, r*1.08, phase+2*math.Pi*float64(i)/float64(teeth))
			}
			s.Marks = pr.points(marks)
		}

	case KindSpring:
		spiral := make([]math32.Vector3, spiralSamples)
		for i := range spiral {
			t := float64(i) / float64(spiralSamples-1)
			spiral[i] = onPlate(c, r*float32(0.25+0.75*t), phase+t*spiralTurns*2*math.Pi)
		}
		s.Outline = pr.points(spiral)

	case KindHand:
		// Phase zero points at twelve o'clock.
		tip := onPlate(c, r, math.Pi/2-phase)
		s.addLine(pr, c, tip)
		s.Marks = pr.points([]math32.Vector3{tip})

	case KindFork:
		a := math.Pi/2 + phase
		back, front := onPlate(c, r, a+math.Pi), onPlate(c, r, a)
		s.addLine(pr, back, front)
		s.addLine(pr, front, onPlate(front, r*0.35, a+math.Pi/4))
		s.addLine(pr, front, onPlate(front, r*0.35, a-math.Pi/4))
		s.Marks = pr.points([]math32.Vector3{back})
	}
}

func (s *Sprite) addLine(pr Projector, from, to math32.Vector3) {
	a, _, okA := pr.Point(from)
	b, _, okB := pr.Point(to)
	if okA && okB {
		s.Lines = append(s.Lines, [2]Point{a, b})
	}
}

// hitShape bounds the drawn geometry with an ellipse.
func hitShape(s Sprite) selection.Shape {
	pts := append([]Point{s.Center}, s.Outline...)
	pts = append(pts, s.Marks...)
	for _, l := range s.Lines {
		pts = append(pts, l[0], l[1])
	}

	minX, maxX := s.Center.X, s.Center.X
	minY, maxY := s.Center.Y, s.Center.Y
	for _, p := range pts {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	return selection.Ellipse{
		X:  (minX + maxX) / 2,
		Y:  (minY + maxY) / 2,
		RX: max((maxX-minX)/2, 1),
		RY: max((maxY-minY)/2, 0.5),
	}
}
