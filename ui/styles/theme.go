package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// FormTheme styles huh forms and prompts with the viewer palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	var (
		base      = Base.GetForeground()
		text      = Text.GetForeground()
		muted     = Subtext0.GetForeground()
		faint     = Overlay0.GetForeground()
		primary   = Primary.GetForeground()
		highlight = Selected.GetForeground()
		bad       = Error.GetForeground()
		button    = Surface0.GetBackground()
	)

	f := &t.Focused
	f.Base = f.Base.BorderForeground(primary)
	f.Title = f.Title.Foreground(primary).Bold(true)
	f.NoteTitle = f.NoteTitle.Foreground(primary)
	f.Description = f.Description.Foreground(muted)
	f.ErrorIndicator = f.ErrorIndicator.Foreground(bad)
	f.ErrorMessage = f.ErrorMessage.Foreground(bad)
	f.SelectSelector = f.SelectSelector.Foreground(highlight)
	f.NextIndicator = f.NextIndicator.Foreground(highlight)
	f.PrevIndicator = f.PrevIndicator.Foreground(highlight)
	f.Option = f.Option.Foreground(text)
	f.SelectedOption = f.SelectedOption.Foreground(highlight)
	f.SelectedPrefix = f.SelectedPrefix.Foreground(highlight)
	f.UnselectedOption = f.UnselectedOption.Foreground(text)
	f.FocusedButton = f.FocusedButton.Foreground(base).Background(primary)
	f.BlurredButton = f.BlurredButton.Foreground(text).Background(button)
	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(highlight)
	f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(faint)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(primary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(muted).Bold(false)

	t.Help.ShortKey = t.Help.ShortKey.Foreground(muted)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(faint)
	t.Help.FullKey = t.Help.FullKey.Foreground(muted)
	t.Help.FullDesc = t.Help.FullDesc.Foreground(faint)

	return t
}
