package styles

import (
	"image/color"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"
)

// FangColorScheme is the cli colour scheme. It ignores the light/dark hint
// since the catppuccin colours already adapt.
func FangColorScheme(_ lipgloss.LightDarkFunc) fang.ColorScheme {
	return fang.ColorScheme{
		Base:           Primary.GetForeground(),
		Title:          Warning.GetForeground(),
		Codeblock:      Surface0.GetBackground(),
		Program:        Accent.GetForeground(),
		Command:        Primary.GetForeground(),
		DimmedArgument: Overlay1.GetForeground(),
		Comment:        Subtext1.GetForeground(),
		Flag:           Success.GetForeground(),
		Argument:       Text.GetForeground(),
		Description:    Text.GetForeground(),
		FlagDefault:    Subtext0.GetForeground(),
		QuotedString:   Selected.GetForeground(),
		ErrorHeader: [2]color.Color{
			charmtone.Butter,
			charmtone.Cherry,
		},
	}
}
