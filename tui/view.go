package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/tourbillon/pkg/render"
	statusbar "github.com/ionut-t/tourbillon/ui/status-bar"
	"github.com/ionut-t/tourbillon/ui/styles"
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var body string
	if m.view == viewHelp {
		body = m.help.View()
	} else {
		body = m.renderMain()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusLine())
}

func (m model) showPanel() bool {
	return m.width >= panelMinTermWidth
}

// canvasSize is the drawable area inside the canvas border.
func (m model) canvasSize() (int, int) {
	width := m.width - 2*borderSize
	if m.showPanel() {
		width -= panelWidth
	}
	height := m.height - statusBarHeight - 2*borderSize

	return max(width, 0), max(height, 0)
}

func (m model) panelContentWidth() int {
	return panelWidth - 2*borderSize - 2
}

func (m model) renderMain() string {
	cols, rows := m.canvasSize()

	canvas := render.NewCanvas(cols, rows)
	canvas.Draw(m.session.Sprites(render.TerminalViewport(cols, rows)))

	border := styles.ActiveBorder
	if m.session.Store().State().HasSelection() {
		border = styles.InactiveBorder
	}

	scene := border.Width(cols).Height(rows).Render(canvas.Render(styles.CanvasPalette()))

	if !m.showPanel() {
		return scene
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, scene, m.renderPanel(rows))
}

func (m model) renderPanel(height int) string {
	border := styles.InactiveBorder
	if m.session.Store().State().HasSelection() {
		border = styles.ActiveBorder
	}

	lines := strings.Split(m.inspector.content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}

	return border.
		Width(panelWidth-2*borderSize).
		Height(height).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func (m model) renderStatusLine() string {
	if m.notification != "" {
		return lipgloss.NewStyle().Width(m.width).Padding(0, 1).Render(m.notification)
	}

	return statusbar.StatusBarView(statusbar.Info{
		State:   m.session.Store().State(),
		Paused:  m.paused,
		Elapsed: m.session.Elapsed(),
	}, m.width)
}
