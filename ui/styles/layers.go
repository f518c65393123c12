package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/ionut-t/tourbillon/pkg/render"
)

var layerColours = [movement.LayerCount]lipgloss.AdaptiveColor{
	movement.LayerBaseplate:       adaptive(latte.Overlay1().Hex, mocha.Overlay1().Hex),
	movement.LayerGearTrain:       adaptive(latte.Yellow().Hex, mocha.Yellow().Hex),
	movement.LayerEscapement:      adaptive(latte.Teal().Hex, mocha.Teal().Hex),
	movement.LayerBalanceAssembly: adaptive(latte.Sapphire().Hex, mocha.Sapphire().Hex),
	movement.LayerHands:           adaptive(latte.Mauve().Hex, mocha.Mauve().Hex),
}

// Layer is the foreground style used for parts of the layer.
func Layer(id movement.LayerID) lipgloss.Style {
	if !id.Valid() {
		return Overlay0
	}
	return lipgloss.NewStyle().Foreground(layerColours[id])
}

// CanvasPalette colours the terminal canvas by layer.
func CanvasPalette() render.Palette {
	p := render.Palette{
		Selected: Selected,
		Empty:    lipgloss.NewStyle(),
	}
	for _, id := range movement.Layers() {
		p.Layers[id] = Layer(id)
	}
	return p
}
