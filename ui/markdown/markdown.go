package markdown

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

func standardStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}

	return "light"
}

// Model renders part descriptions for the inspection panel.
type Model struct {
	renderer *glamour.TermRenderer
	width    int
	error    error
}

func New(width int) Model {
	renderer, err := createGlamourRenderer(standardStyle(), width)

	return Model{
		renderer: renderer,
		width:    width,
		error:    err,
	}
}

// SetWidth rebuilds the renderer when the wrap width changes.
func (m *Model) SetWidth(width int) {
	if width == m.width && m.renderer != nil {
		return
	}

	m.width = width
	m.renderer, m.error = createGlamourRenderer(standardStyle(), width)
}

func (m Model) Width() int {
	return m.width
}

// Render renders markdown
func (m Model) Render(markdown string) (string, error) {
	if m.error != nil {
		return "", m.error
	}

	return m.renderer.Render(markdown)
}

func createGlamourRenderer(style string, width int) (*glamour.TermRenderer, error) {
	options := []glamour.TermRendererOption{
		glamour.WithStandardStyle(style),
		glamour.WithEmoji(),
	}

	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	return glamour.NewTermRenderer(options...)
}
