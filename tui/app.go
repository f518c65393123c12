package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/tourbillon/internal/config"
	"github.com/ionut-t/tourbillon/pkg/clipboard"
	"github.com/ionut-t/tourbillon/pkg/utils"
	"github.com/ionut-t/tourbillon/pkg/viewer"
	"github.com/ionut-t/tourbillon/store/snapshots"
	"github.com/ionut-t/tourbillon/ui/help"
	"github.com/rs/zerolog"
)

type Options struct {
	Config    config.Config
	Session   *viewer.Session
	Snapshots snapshots.Store
	Logger    zerolog.Logger
	Clipboard clipboard.Writer
}

type model struct {
	config    config.Config
	session   *viewer.Session
	snapshots snapshots.Store
	logger    zerolog.Logger
	clipboard clipboard.Writer

	width, height int
	view          view

	help      help.Model
	inspector *inspector

	notification string

	paused      bool
	resumeSpeed float64

	unsubscribe func()
}

func New(opts Options) model {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.System
	}

	inspector := newInspector(panelWidth - 2*borderSize - 2)

	return model{
		config:      opts.Config,
		session:     opts.Session,
		snapshots:   opts.Snapshots,
		logger:      opts.Logger.With().Str("component", "tui").Logger(),
		clipboard:   opts.Clipboard,
		help:        help.New(helpSections()...),
		inspector:   inspector,
		unsubscribe: opts.Session.Store().Subscribe(inspector.observe),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("tourbillon"),
		m.tick(),
	)
}

func (m model) tick() tea.Cmd {
	return tea.Tick(utils.FPSInterval(m.config.FPS()), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.help.SetSize(msg.Width, msg.Height-statusBarHeight)
		m.inspector.setWidth(m.panelContentWidth())

	case frameMsg:
		m.session.Frame(time.Time(msg))
		return m, m.tick()

	case tea.MouseMsg:
		if m.view == viewMain {
			return m, m.handleMouse(msg)
		}

	case tea.KeyMsg:
		return m.handleKey(msg)

	case utils.ClearMsg:
		m.notification = ""

	case snapshotSavedMsg:
		m.logger.Info().Str("path", msg.record.Path).Int64("size", msg.record.Size).Msg("snapshot saved")
		return m, m.successNotification("Snapshot saved: " + msg.record.Name)

	case copiedMsg:
		return m, m.successNotification(msg.label + " copied to clipboard")

	case notificationErrorMsg:
		return m, m.errorNotification(msg.err)
	}

	return m, nil
}

func (m model) quit() (tea.Model, tea.Cmd) {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.session.Close()
	return m, tea.Quit
}

// Run starts the viewer program and blocks until it exits.
func Run(opts Options, programOpts ...tea.ProgramOption) error {
	programOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, programOpts...)

	_, err := tea.NewProgram(New(opts), programOpts...).Run()
	return err
}
