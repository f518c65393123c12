package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/ionut-t/tourbillon/internal/keymap"
	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/ionut-t/tourbillon/ui/help"
)

func helpSections() []help.Section {
	var focus []key.Binding
	for _, id := range movement.FocusTargets() {
		focus = append(focus, keymap.Focus[id])
	}

	return []help.Section{
		{
			Title: "General",
			Bindings: []key.Binding{
				keymap.Quit,
				keymap.ForceQuit,
				keymap.Help,
				keymap.Snapshot,
				keymap.Copy,
				keymap.Cancel,
			},
		},
		{
			Title:    "Layers",
			Bindings: keymap.Layers[:],
		},
		{
			Title:    "Camera",
			Bindings: focus,
		},
		{
			Title: "Animation",
			Bindings: []key.Binding{
				keymap.Pause,
				keymap.SpeedUp,
				keymap.SpeedDown,
			},
		},
	}
}
