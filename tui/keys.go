package tui

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/tourbillon/internal/config"
	"github.com/ionut-t/tourbillon/internal/keymap"
	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/ionut-t/tourbillon/pkg/render"
	"github.com/ionut-t/tourbillon/store/snapshots"
)

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keymap.ForceQuit) {
		return m.quit()
	}

	if m.view == viewHelp {
		switch {
		case key.Matches(msg, keymap.Help), key.Matches(msg, keymap.Quit), key.Matches(msg, keymap.Cancel):
			m.view = viewMain
			return m, nil
		}

		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	store := m.session.Store()

	for _, id := range movement.Layers() {
		if key.Matches(msg, keymap.Layers[id]) {
			store.ToggleLayer(id)
			return m, nil
		}
	}

	for _, id := range movement.FocusTargets() {
		if key.Matches(msg, keymap.Focus[id]) {
			store.SetFocusTarget(id)
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, keymap.Quit):
		return m.quit()

	case key.Matches(msg, keymap.Help):
		m.view = viewHelp

	case key.Matches(msg, keymap.Cancel):
		m.session.Router().Deselect()

	case key.Matches(msg, keymap.Pause):
		m.togglePause()

	case key.Matches(msg, keymap.SpeedUp):
		return m, m.changeSpeed(1)

	case key.Matches(msg, keymap.SpeedDown):
		return m, m.changeSpeed(-1)

	case key.Matches(msg, keymap.Snapshot):
		return m, m.saveSnapshot(time.Now())

	case key.Matches(msg, keymap.Copy):
		return m, m.copySelection()
	}

	return m, nil
}

func (m *model) togglePause() {
	store := m.session.Store()

	if m.paused {
		store.SetAnimationSpeed(m.resumeSpeed)
		m.paused = false
		return
	}

	m.resumeSpeed = store.State().AnimationSpeed
	store.SetAnimationSpeed(0)
	m.paused = true
}

// changeSpeed steps the speed in direction dir. While paused the step
// applies to the speed restored on resume.
func (m *model) changeSpeed(dir float64) tea.Cmd {
	store := m.session.Store()

	current := store.State().AnimationSpeed
	if m.paused {
		current = m.resumeSpeed
	}

	next := current + dir*m.config.SpeedStep()
	if math.IsInf(next, 0) {
		return m.errorNotification(errors.New("speed out of range"))
	}

	next = math.Round(config.ClampSpeed(next, current)*100) / 100

	if m.paused {
		m.resumeSpeed = next
		return m.infoNotification(fmt.Sprintf("Speed on resume: %.2fx", next))
	}

	store.SetAnimationSpeed(next)
	return nil
}

// saveSnapshot draws the frame now and leaves the encoding and disk write
// to a command.
func (m *model) saveSnapshot(at time.Time) tea.Cmd {
	if m.snapshots == nil {
		return m.errorNotification(errors.New("snapshot storage is not configured"))
	}

	w, h := m.config.SnapshotSize()

	img, err := m.session.Snapshot(w, h, render.WithLabels(true))
	if err != nil {
		return m.errorNotification(err)
	}

	name := snapshots.DefaultName(m.session.Store().State().FocusTarget.String(), at)
	store := m.snapshots

	return func() tea.Msg {
		record, err := store.Save(name, img.EncodePNG)
		if err != nil {
			return notificationErrorMsg{err: err}
		}
		return snapshotSavedMsg{record: record}
	}
}

func (m *model) copySelection() tea.Cmd {
	text, ok := m.inspector.clipboardText()
	if !ok {
		return m.infoNotification("Select a part to copy its description")
	}

	write := m.clipboard
	label := m.session.Store().State().SelectedPart.String()

	return func() tea.Msg {
		if err := write(text); err != nil {
			return notificationErrorMsg{err: err}
		}
		return copiedMsg{label: label}
	}
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	cols, rows := m.canvasSize()
	x, y := msg.X-borderSize, msg.Y-borderSize

	if x < 0 || y < 0 || x >= cols || y >= rows {
		return nil
	}

	part, ok := m.session.Click(render.TerminalViewport(cols, rows), float64(x), float64(y))
	if ok {
		m.logger.Debug().Stringer("part", part).Int("x", x).Int("y", y).Msg("part clicked")
	}

	return nil
}
