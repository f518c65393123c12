package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/tourbillon/ui/styles"
)

// Section is a titled group of bindings.
type Section struct {
	Title    string
	Bindings []key.Binding
}

// Model is a scrollable help page.
type Model struct {
	viewport viewport.Model
	sections []Section
}

func New(sections ...Section) Model {
	return Model{
		viewport: viewport.New(0, 0),
		sections: sections,
	}
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height

	var blocks []string
	for _, s := range m.sections {
		blocks = append(blocks, styles.Text.Bold(true).Render(s.Title)+RenderHelpView(width, s.Bindings))
	}

	m.viewport.SetContent(lipgloss.NewStyle().Padding(1, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, blocks...),
	))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp

	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

// RenderHelpView lists the enabled bindings with aligned descriptions.
func RenderHelpView(width int, keys []key.Binding) string {
	var sb strings.Builder

	enabled := make([]key.Binding, 0, len(keys))
	keyWidth := 0

	for _, binding := range keys {
		if !binding.Enabled() {
			continue
		}

		enabled = append(enabled, binding)
		keyWidth = max(keyWidth, lipgloss.Width(binding.Help().Key))
	}

	for _, binding := range enabled {
		k := binding.Help().Key
		padding := strings.Repeat(" ", keyWidth-lipgloss.Width(k)+2)

		fmt.Fprintf(&sb, "• %s%s%s\n",
			styles.Info.Render(k),
			padding,
			styles.Text.Render(binding.Help().Desc),
		)
	}

	return lipgloss.NewStyle().Width(width).Padding(1, 1).Render(strings.TrimRight(sb.String(), "\n"))
}
