package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/tourbillon/pkg/movement"
)

// Palette styles the terminal canvas.
type Palette struct {
	Layers   [movement.LayerCount]lipgloss.Style
	Selected lipgloss.Style
	Empty    lipgloss.Style
}

type cell struct {
	r        rune
	layer    movement.LayerID
	selected bool
	set      bool
}

// Canvas is a grid of terminal cells.
type Canvas struct {
	width, height int
	cells         []cell
}

func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// At returns the rune drawn at (x, y), or a space.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.width || y >= c.height || !c.cells[y*c.width+x].set {
		return ' '
	}
	return c.cells[y*c.width+x].r
}

func (c *Canvas) plot(p Point, r rune, s *Sprite) {
	x, y := int(math.Round(p.X)), int(math.Round(p.Y))
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{r: r, layer: s.Layer, selected: s.Selected, set: true}
}

func (c *Canvas) line(a, b Point, r rune, s *Sprite) {
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := int(math.Ceil(max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		c.plot(a, r, s)
		return
	}

	if r == 0 {
		r = slopeRune(dx, dy)
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.plot(Point{X: a.X + dx*t, Y: a.Y + dy*t}, r, s)
	}
}

func (c *Canvas) polyline(pts []Point, r rune, s *Sprite) {
	for i := 1; i < len(pts); i++ {
		c.line(pts[i-1], pts[i], r, s)
	}
	if len(pts) == 1 {
		c.plot(pts[0], r, s)
	}
}

// slopeRune picks a character that follows the direction of a segment in
// cell space.
func slopeRune(dx, dy float64) rune {
	angle := math.Atan2(-dy*2, dx) * 180 / math.Pi
	if angle < 0 {
		angle += 180
	}

	switch {
	case angle < 22.5 || angle >= 157.5:
		return '-'
	case angle < 67.5:
		return '/'
	case angle < 112.5:
		return '|'
	default:
		return '\\'
	}
}

// Draw rasterises sprites in order, so later sprites cover earlier ones.
func (c *Canvas) Draw(sprites []Sprite) {
	for i := range sprites {
		s := &sprites[i]

		switch s.Kind {
		case KindPlate:
			c.polyline(s.Outline, '.', s)
		case KindWheel:
			c.polyline(s.Outline, 'o', s)
			for _, l := range s.Lines {
				c.line(l[0], l[1], 0, s)
			}
			for _, m := range s.Marks {
				c.plot(m, '*', s)
			}
		case KindSpring:
			c.polyline(s.Outline, '~', s)
		case KindHand:
			for _, l := range s.Lines {
				c.line(l[0], l[1], '#', s)
			}
			for _, m := range s.Marks {
				c.plot(m, '>', s)
			}
		case KindFork:
			for _, l := range s.Lines {
				c.line(l[0], l[1], 0, s)
			}
			for _, m := range s.Marks {
				c.plot(m, '@', s)
			}
		}

		if s.Kind != KindPlate {
			c.plot(s.Center, '+', s)
		}
	}
}

// Render turns the canvas into styled text, one line per row.
func (c *Canvas) Render(p Palette) string {
	var sb strings.Builder

	for y := range c.height {
		var run strings.Builder
		var runStyle *lipgloss.Style

		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle == nil {
				sb.WriteString(p.Empty.Render(run.String()))
			} else {
				sb.WriteString(runStyle.Render(run.String()))
			}
			run.Reset()
		}

		for x := range c.width {
			cl := c.cells[y*c.width+x]

			var style *lipgloss.Style
			r := ' '
			if cl.set {
				r = cl.r
				switch {
				case cl.selected:
					style = &p.Selected
				case cl.layer.Valid():
					style = &p.Layers[cl.layer]
				}
			}

			if style != runStyle {
				flush()
				runStyle = style
			}
			run.WriteRune(r)
		}
		flush()

		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// String renders the canvas without styling.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := range c.height {
		for x := range c.width {
			sb.WriteRune(c.At(x, y))
		}
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
