package utils

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type ClearMsg struct{}

// ClearAfter returns a command that clears the notification after duration.
func ClearAfter(duration time.Duration) tea.Cmd {
	return tea.Tick(
		duration,
		func(time.Time) tea.Msg {
			return ClearMsg{}
		},
	)
}

// Duration formats session time for the status bar.
func Duration(duration time.Duration) string {
	switch {
	case duration < time.Minute:
		return fmt.Sprintf("%.1fs", duration.Seconds())
	case duration < time.Hour:
		return fmt.Sprintf("%dm%02ds", int(duration.Minutes()), int(duration.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%02dm", int(duration.Hours()), int(duration.Minutes())%60)
	}
}

// FPSInterval is the frame period for fps frames per second.
func FPSInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 1
	}
	return time.Second / time.Duration(fps)
}
