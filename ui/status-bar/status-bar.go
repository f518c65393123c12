package statusbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/ionut-t/tourbillon/pkg/scene"
	"github.com/ionut-t/tourbillon/pkg/utils"
	"github.com/ionut-t/tourbillon/ui/styles"
)

type Info struct {
	State   scene.State
	Paused  bool
	Elapsed time.Duration
}

func StatusBarView(info Info, width int) string {
	bg := styles.Surface0.GetBackground()

	separator := styles.Surface0.Render(" | ")

	focus := styles.Primary.Background(bg).Render(info.State.FocusTarget.String())

	speed := styles.Accent.Background(bg).Render(fmt.Sprintf("%.1fx", info.State.AnimationSpeed))
	if info.Paused {
		speed = styles.Warning.Background(bg).Render("paused")
	}

	left := focus + separator + speed + separator + layerFlags(info.State, bg)

	if info.State.HasSelection() {
		left += separator + styles.Selected.Background(bg).Render(info.State.SelectedPart.String())
	}

	leftInfo := styles.Surface0.Padding(0, 1).Render(left)

	right := styles.Subtext0.Background(bg).Render(utils.Duration(info.Elapsed)) +
		separator +
		styles.Info.Background(bg).PaddingRight(1).Render("? Help")

	spaces := styles.Surface0.Render(strings.Repeat(" ", max(0, width-lipgloss.Width(leftInfo)-lipgloss.Width(right))))

	return styles.Surface0.Width(width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Right,
			leftInfo,
			spaces,
			right,
		),
	)
}

// layerFlags shows each layer's number, dimmed when hidden.
func layerFlags(state scene.State, bg lipgloss.TerminalColor) string {
	var sb strings.Builder
	for _, id := range movement.Layers() {
		label := fmt.Sprint(int(id) + 1)
		if state.Visible(id) {
			sb.WriteString(styles.Layer(id).Background(bg).Bold(true).Render(label))
		} else {
			sb.WriteString(styles.Overlay0.Background(bg).Render("·"))
		}
	}
	return sb.String()
}
