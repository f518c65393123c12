package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/ionut-t/tourbillon/pkg/movement"
)

var Quit = key.NewBinding(
	key.WithKeys("q"),
	key.WithHelp("q", "quit"),
)

var ForceQuit = key.NewBinding(
	key.WithKeys("ctrl+c"),
	key.WithHelp("ctrl+c", "force quit"),
)

var Help = key.NewBinding(
	key.WithKeys("?"),
	key.WithHelp("?", "toggle help view"),
)

var Copy = key.NewBinding(
	key.WithKeys("c"),
	key.WithHelp("c", "copy selected part description to clipboard"),
)

var Cancel = key.NewBinding(
	key.WithKeys("esc"),
	key.WithHelp("esc", "deselect part"),
)

var Pause = key.NewBinding(
	key.WithKeys(" "),
	key.WithHelp("space", "pause / resume"),
)

var SpeedUp = key.NewBinding(
	key.WithKeys("+", "="),
	key.WithHelp("+", "increase animation speed"),
)

var SpeedDown = key.NewBinding(
	key.WithKeys("-", "_"),
	key.WithHelp("-", "decrease animation speed"),
)

var Snapshot = key.NewBinding(
	key.WithKeys("s"),
	key.WithHelp("s", "save a PNG snapshot"),
)

// Layers toggle visibility, indexed by layer id.
var Layers = [movement.LayerCount]key.Binding{
	movement.LayerBaseplate:       layerBinding("1", "baseplate"),
	movement.LayerGearTrain:       layerBinding("2", "gear train"),
	movement.LayerEscapement:      layerBinding("3", "escapement"),
	movement.LayerBalanceAssembly: layerBinding("4", "balance assembly"),
	movement.LayerHands:           layerBinding("5", "hands"),
}

func layerBinding(k, name string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k),
		key.WithHelp(k, "toggle "+name),
	)
}

// Focus moves the camera to a preset, indexed by focus target id.
var Focus = [movement.FocusTargetCount]key.Binding{
	movement.FocusOverview:        focusBinding("o", "overview"),
	movement.FocusBaseplate:       focusBinding("b", "baseplate"),
	movement.FocusGearTrain:       focusBinding("g", "gear train"),
	movement.FocusEscapement:      focusBinding("e", "escapement"),
	movement.FocusBalanceAssembly: focusBinding("a", "balance assembly"),
	movement.FocusHands:           focusBinding("h", "hands"),
	movement.FocusMainspring:      focusBinding("m", "mainspring"),
	movement.FocusJewelTrain:      focusBinding("j", "jewel train"),
}

func focusBinding(k, name string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k),
		key.WithHelp(k, "focus "+name),
	)
}
