package tui

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/tourbillon/internal/config"
	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/ionut-t/tourbillon/pkg/render"
	"github.com/ionut-t/tourbillon/pkg/viewer"
	"github.com/ionut-t/tourbillon/store/snapshots"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type testClipboard struct {
	text string
	err  error
}

func (c *testClipboard) write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func newTestModel(t *testing.T, clip *testClipboard) model {
	t.Helper()

	v := viper.New()
	v.Set(config.SnapshotWidthKey, 160)
	v.Set(config.SnapshotHeightKey, 120)

	opts := viewer.DefaultOptions()
	opts.ResetFocusOnDeselect = true

	if clip == nil {
		clip = &testClipboard{}
	}

	m := New(Options{
		Config:    config.New(v),
		Session:   viewer.New(opts),
		Snapshots: snapshots.New(t.TempDir()),
		Logger:    zerolog.Nop(),
		Clipboard: clip.write,
	})

	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()

	next, _ := m.Update(msg)
	return next.(model)
}

func updateCmd(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLayerKeysToggleVisibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key   string
		layer movement.LayerID
	}{
		{"1", movement.LayerBaseplate},
		{"2", movement.LayerGearTrain},
		{"3", movement.LayerEscapement},
		{"4", movement.LayerBalanceAssembly},
		{"5", movement.LayerHands},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newTestModel(t, nil)

			m = update(t, m, runes(tt.key))
			if m.session.Store().State().Visible(tt.layer) {
				t.Errorf("expected %s to be hidden", tt.layer)
			}

			m = update(t, m, runes(tt.key))
			if !m.session.Store().State().Visible(tt.layer) {
				t.Errorf("expected %s to be visible again", tt.layer)
			}
		})
	}
}

func TestFocusKeys(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)

	for key, want := range map[string]movement.FocusTargetID{
		"e": movement.FocusEscapement,
		"j": movement.FocusJewelTrain,
		"m": movement.FocusMainspring,
		"o": movement.FocusOverview,
	} {
		m = update(t, m, runes(key))
		if got := m.session.Store().State().FocusTarget; got != want {
			t.Errorf("key %q: expected %s, got %s", key, want, got)
		}
	}
}

func TestSpeedKeysClamp(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)

	m = update(t, m, runes("+"))
	if got := m.session.Store().State().AnimationSpeed; got != 1.1 {
		t.Errorf("expected 1.1, got %v", got)
	}

	for range 30 {
		m = update(t, m, runes("+"))
	}
	if got := m.session.Store().State().AnimationSpeed; got != config.MaxSpeed {
		t.Errorf("expected speed clamped to %v, got %v", config.MaxSpeed, got)
	}

	for range 40 {
		m = update(t, m, runes("-"))
	}
	if got := m.session.Store().State().AnimationSpeed; got != 0 {
		t.Errorf("expected speed clamped to 0, got %v", got)
	}
}

func TestPauseRestoresSpeed(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	m = update(t, m, runes("+"))
	m = update(t, m, space)

	if !m.paused || m.session.Store().State().AnimationSpeed != 0 {
		t.Fatalf("expected paused model with zero speed")
	}

	m = update(t, m, runes("+"))
	if m.session.Store().State().AnimationSpeed != 0 {
		t.Errorf("speed must stay zero while paused")
	}

	m = update(t, m, space)
	if got := m.session.Store().State().AnimationSpeed; got != 1.2 {
		t.Errorf("expected resumed speed 1.2, got %v", got)
	}
}

func clickablePoint(t *testing.T, m model) (int, int) {
	t.Helper()

	cols, rows := m.canvasSize()
	vp := render.TerminalViewport(cols, rows)
	root := render.HitTree(m.session.Sprites(vp))

	for y := range rows {
		for x := range cols {
			if _, ok := root.Pick(float64(x), float64(y)); ok {
				return x, y
			}
		}
	}

	t.Fatal("no part under any cell")
	return 0, 0
}

func TestClickSelectsAndEscDeselects(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	x, y := clickablePoint(t, m)

	m = update(t, m, tea.MouseMsg{
		X:      x + borderSize,
		Y:      y + borderSize,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	state := m.session.Store().State()
	if !state.HasSelection() {
		t.Fatal("expected a part to be selected")
	}

	if m.inspector.part != state.SelectedPart {
		t.Errorf("inspector shows %s, store has %s", m.inspector.part, state.SelectedPart)
	}

	info, _ := movement.Lookup(state.SelectedPart)
	if !strings.Contains(m.View(), strings.Fields(info.Label)[0]) {
		t.Errorf("expected the panel to show %q", info.Label)
	}

	m = update(t, m, runes("g"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	state = m.session.Store().State()
	if state.HasSelection() {
		t.Error("expected selection to be cleared")
	}
	if state.FocusTarget != movement.FocusOverview {
		t.Errorf("expected focus reset to overview, got %s", state.FocusTarget)
	}
	if m.inspector.part != movement.PartNone {
		t.Error("expected inspector to be cleared by the subscription")
	}
}

func TestClickOutsideCanvasIsIgnored(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 119, Y: 39, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if m.session.Store().State().HasSelection() {
		t.Error("clicks on borders and the status bar must not select")
	}
}

func TestInspectorRendersOncePerSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	before := m.inspector.renders

	m.session.Router().Select(movement.PartHairspring)
	m.session.Store().SetAnimationSpeed(0.5)
	m.session.Store().ToggleLayer(movement.LayerHands)

	if got := m.inspector.renders - before; got != 1 {
		t.Errorf("expected 1 render, got %d", got)
	}
}

func TestSnapshotKeySavesPNG(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)

	m, cmd := updateCmd(t, m, runes("s"))
	if cmd == nil {
		t.Fatal("expected a save command")
	}

	msg, ok := cmd().(snapshotSavedMsg)
	if !ok {
		t.Fatalf("expected snapshotSavedMsg")
	}

	if !strings.HasPrefix(msg.record.Name, "overview-") {
		t.Errorf("unexpected snapshot name %s", msg.record.Name)
	}

	data, err := os.ReadFile(msg.record.Path)
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	if !strings.HasPrefix(string(data), "\x89PNG") {
		t.Error("snapshot is not a PNG")
	}

	m = update(t, m, msg)
	if !strings.Contains(m.notification, "Snapshot saved") {
		t.Errorf("unexpected notification %q", m.notification)
	}
}

func TestCopyKey(t *testing.T) {
	t.Parallel()

	clip := &testClipboard{}
	m := newTestModel(t, clip)

	m, _ = updateCmd(t, m, runes("c"))
	if clip.text != "" {
		t.Error("nothing should be copied without a selection")
	}

	m.session.Router().Select(movement.PartEscapeWheel)
	m, cmd := updateCmd(t, m, runes("c"))
	if cmd == nil {
		t.Fatal("expected a copy command")
	}

	if _, ok := cmd().(copiedMsg); !ok {
		t.Fatal("expected copiedMsg")
	}
	if !strings.HasPrefix(clip.text, "Escape wheel") {
		t.Errorf("unexpected clipboard text %q", clip.text)
	}

	clip.err = errors.New("no clipboard")
	_, cmd = updateCmd(t, m, runes("c"))
	if _, ok := cmd().(notificationErrorMsg); !ok {
		t.Error("expected notificationErrorMsg on clipboard failure")
	}
}

func TestFrameAdvancesSession(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	start := time.Now()

	m = update(t, m, frameMsg(start))
	m, cmd := updateCmd(t, m, frameMsg(start.Add(100*time.Millisecond)))

	if cmd == nil {
		t.Error("expected the next frame to be scheduled")
	}

	if got := m.session.Elapsed().Round(time.Millisecond); got != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", got)
	}
}

func TestHelpViewAndQuit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)

	m = update(t, m, runes("?"))
	if m.view != viewHelp {
		t.Fatal("expected help view")
	}
	if !strings.Contains(m.View(), "toggle gear train") {
		t.Error("help should list layer bindings")
	}

	m, cmd := updateCmd(t, m, runes("q"))
	if m.view != viewMain || cmd != nil {
		t.Error("q in help should return to the main view")
	}

	_, cmd = updateCmd(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
