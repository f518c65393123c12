package selection

import "github.com/ionut-t/tourbillon/pkg/movement"

// Shape is a hit region in screen space.
type Shape interface {
	Contains(x, y float64) bool
}

// Circle is a filled disc.
type Circle struct {
	X, Y, R float64
}

func (c Circle) Contains(x, y float64) bool {
	dx, dy := x-c.X, y-c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// Ellipse is an axis-aligned ellipse, used where screen cells are not square.
type Ellipse struct {
	X, Y, RX, RY float64
}

func (e Ellipse) Contains(x, y float64) bool {
	if e.RX <= 0 || e.RY <= 0 {
		return false
	}
	dx, dy := (x-e.X)/e.RX, (y-e.Y)/e.RY
	return dx*dx+dy*dy <= 1
}

// Node is an element of the hit-test scene graph. A node with a part is
// interactive and keeps that part for its whole life; group nodes have
// PartNone.
type Node struct {
	Name     string
	Part     movement.PartID
	Shape    Shape
	Hidden   bool
	children []*Node
}

func NewGroup(name string) *Node {
	return &Node{Name: name}
}

func NewPart(part movement.PartID, shape Shape) *Node {
	return &Node{Name: part.String(), Part: part, Shape: shape}
}

// Add appends children and returns n.
func (n *Node) Add(children ...*Node) *Node {
	n.children = append(n.children, children...)
	return n
}

func (n *Node) Children() []*Node {
	return n.children
}

// Find returns the first node in the subtree carrying part.
func (n *Node) Find(part movement.PartID) *Node {
	if n.Part == part && part != movement.PartNone {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(part); found != nil {
			return found
		}
	}
	return nil
}

// Pick returns the innermost interactive node under (x, y). Children are
// tested before their parent, later siblings (drawn on top) before earlier
// ones, and the walk stops at the first node that handles the hit. Hidden
// nodes and everything under them are skipped.
func (n *Node) Pick(x, y float64) (*Node, bool) {
	if n == nil || n.Hidden {
		return nil, false
	}

	for i := len(n.children) - 1; i >= 0; i-- {
		if hit, ok := n.children[i].Pick(x, y); ok {
			return hit, true
		}
	}

	if n.Part.Valid() && n.Shape != nil && n.Shape.Contains(x, y) {
		return n, true
	}

	return nil, false
}
