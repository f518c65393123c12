package render

import (
	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/ionut-t/tourbillon/pkg/selection"
)

// HitTree builds the pick graph for sprites. Each part node hangs under its
// enclosing part when that part is on screen, otherwise under the root.
// Sprites must be ordered back to front so nearer siblings are tried first.
func HitTree(sprites []Sprite) *selection.Node {
	root := selection.NewGroup("movement")

	nodes := make(map[movement.PartID]*selection.Node, len(sprites))
	for _, s := range sprites {
		nodes[s.Part] = selection.NewPart(s.Part, s.Hit)
	}

	for _, s := range sprites {
		parent, ok := nodes[s.Parent]
		if !ok || s.Parent == s.Part {
			parent = root
		}
		parent.Add(nodes[s.Part])
	}

	return root
}
