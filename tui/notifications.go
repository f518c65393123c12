package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/tourbillon/pkg/utils"
	"github.com/ionut-t/tourbillon/ui/styles"
)

// successNotification displays a success message
func (m *model) successNotification(msg string) tea.Cmd {
	m.notification = styles.Success.Render(msg)
	return utils.ClearAfter(NotificationDuration)
}

// errorNotification displays an error message
func (m *model) errorNotification(err error) tea.Cmd {
	m.logger.Error().Err(err).Msg("notification")
	m.notification = styles.Error.Render(err.Error())
	return utils.ClearAfter(NotificationDuration)
}

func (m *model) infoNotification(msg string) tea.Cmd {
	m.notification = styles.Info.Render(msg)
	return utils.ClearAfter(NotificationDuration)
}
