package styles

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

var (
	latte = catppuccin.Latte
	mocha = catppuccin.Mocha
)

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	Base = lipgloss.NewStyle().Foreground(adaptive(latte.Base().Hex, mocha.Base().Hex))

	Text = lipgloss.NewStyle().Foreground(adaptive(latte.Text().Hex, mocha.Text().Hex))

	Primary = lipgloss.NewStyle().Foreground(adaptive(latte.Sapphire().Hex, mocha.Sapphire().Hex))

	Accent = lipgloss.NewStyle().Foreground(adaptive(latte.Teal().Hex, mocha.Teal().Hex))

	Success = lipgloss.NewStyle().Foreground(adaptive(latte.Green().Hex, mocha.Green().Hex))

	Error = lipgloss.NewStyle().Foreground(adaptive(latte.Red().Hex, mocha.Red().Hex))

	Warning = lipgloss.NewStyle().Foreground(adaptive(latte.Yellow().Hex, mocha.Yellow().Hex))

	Info = lipgloss.NewStyle().Foreground(adaptive(latte.Blue().Hex, mocha.Blue().Hex))

	Selected = lipgloss.NewStyle().
			Foreground(adaptive(latte.Peach().Hex, mocha.Peach().Hex)).
			Bold(true)

	Subtext0 = lipgloss.NewStyle().Foreground(adaptive(latte.Subtext0().Hex, mocha.Subtext0().Hex))

	Subtext1 = lipgloss.NewStyle().Foreground(adaptive(latte.Subtext1().Hex, mocha.Subtext1().Hex))

	Overlay0 = lipgloss.NewStyle().Foreground(adaptive(latte.Overlay0().Hex, mocha.Overlay0().Hex))

	Overlay1 = lipgloss.NewStyle().Foreground(adaptive(latte.Overlay1().Hex, mocha.Overlay1().Hex))

	Surface0 = lipgloss.NewStyle().Background(adaptive(latte.Surface0().Hex, mocha.Surface0().Hex))

	Surface1 = lipgloss.NewStyle().Background(adaptive(latte.Surface1().Hex, mocha.Surface1().Hex))
)
