package viewer

import (
	"bytes"
	"testing"
	"time"

	"github.com/ionut-t/tourbillon/pkg/animation"
	"github.com/ionut-t/tourbillon/pkg/focus"
	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/ionut-t/tourbillon/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionDefaults(t *testing.T) {
	s := New(DefaultOptions())

	state := s.Store().State()
	assert.Equal(t, 1.0, state.AnimationSpeed)
	assert.Equal(t, movement.FocusOverview, state.FocusTarget)
	assert.True(t, s.Camera().Settled(0), "camera starts on the overview")
	assert.Len(t, s.Phases(), len(animation.Rates))
}

func TestSessionsAreIndependent(t *testing.T) {
	a := New(DefaultOptions())
	b := New(DefaultOptions())

	a.Store().SetFocusTarget(movement.FocusEscapement)
	a.Advance(0.5)

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, movement.FocusOverview, b.Store().State().FocusTarget)
	for _, phase := range b.Phases() {
		assert.Zero(t, phase)
	}
}

func TestInitialFocusPlacesCamera(t *testing.T) {
	opts := DefaultOptions()
	opts.InitialFocus = movement.FocusEscapement
	s := New(opts)

	want := focus.Lookup(movement.FocusEscapement)
	assert.Equal(t, want.Position, s.Camera().Pose().Position)
	assert.Equal(t, want.Target, s.Camera().Pose().Target)
	assert.True(t, s.Camera().Settled(0))
}

func TestFocusChangeFliesCamera(t *testing.T) {
	s := New(DefaultOptions())

	s.Store().SetFocusTarget(movement.FocusJewelTrain)
	s.Advance(1.0 / 60)
	assert.False(t, s.Camera().Settled(0.1), "first frame must not jump")

	for range 600 {
		s.Advance(1.0 / 60)
	}

	pose := s.Camera().Pose()
	want := focus.Lookup(movement.FocusJewelTrain)
	assert.InDelta(t, 0, float64(pose.Position.DistanceTo(want.Position)), 1e-3)
	assert.InDelta(t, 0, float64(pose.Target.DistanceTo(want.Target)), 1e-3)
}

func TestSpeedScalesEveryDriver(t *testing.T) {
	slow := New(DefaultOptions())
	fast := New(DefaultOptions())
	fast.Store().SetAnimationSpeed(2)

	for range 10 {
		slow.Advance(0.05)
		fast.Advance(0.05)
	}

	slowPhases, fastPhases := slow.Phases(), fast.Phases()
	for part, rate := range animation.Rates {
		if rate.Motion == animation.Rotation {
			assert.InEpsilon(t, 2*slowPhases[part], fastPhases[part], 1e-9, "%s", part)
		}
	}
}

func TestHiddenLayerFreezesItsParts(t *testing.T) {
	s := New(DefaultOptions())
	s.Advance(0.2)

	before := s.Phases()
	s.Store().ToggleLayer(movement.LayerGearTrain)
	s.Advance(0.2)
	after := s.Phases()

	for _, p := range movement.PartsInLayer(movement.LayerGearTrain) {
		assert.Equal(t, before[p], after[p], "%s advanced while hidden", p)
	}
	assert.NotEqual(t, before[movement.PartEscapeWheel], after[movement.PartEscapeWheel])
}

func TestUnmountStopsDriver(t *testing.T) {
	s := New(DefaultOptions())
	s.Advance(0.1)

	require.True(t, s.Unmount(movement.PartThirdWheel))
	assert.False(t, s.Unmount(movement.PartThirdWheel))
	assert.False(t, s.Unmount(movement.PartBaseplate))

	frozen := s.Phases()[movement.PartThirdWheel]
	s.Advance(0.1)
	assert.Equal(t, frozen, s.Phases()[movement.PartThirdWheel])
}

func TestClickSelectsProjectedPart(t *testing.T) {
	s := New(DefaultOptions())
	s.Store().SetFocusTarget(movement.FocusBalanceAssembly)
	for range 600 {
		s.Advance(1.0 / 60)
	}

	vp := render.ImageViewport(800, 600)

	var target render.Sprite
	for _, sp := range s.Sprites(vp) {
		if sp.Part == movement.PartHairspring {
			target = sp
		}
	}
	require.Equal(t, movement.PartHairspring, target.Part)

	part, ok := s.Click(vp, target.Center.X, target.Center.Y)
	require.True(t, ok)
	assert.Equal(t, movement.PartHairspring, part)
	assert.Equal(t, movement.PartHairspring, s.Store().State().SelectedPart)

	s.Router().Deselect()
	assert.False(t, s.Store().State().HasSelection())
}

func TestFrameUsesHostClock(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxFrameDelta = 100 * time.Millisecond
	s := New(opts)

	start := time.Now()
	assert.Zero(t, s.Frame(start))
	assert.InDelta(t, 0.05, s.Frame(start.Add(50*time.Millisecond)), 1e-9)
	assert.InDelta(t, 0.1, s.Frame(start.Add(10*time.Second)), 1e-9)
	assert.Equal(t, 150*time.Millisecond, s.Elapsed().Round(time.Millisecond))
}

func TestSnapshotEncodes(t *testing.T) {
	s := New(DefaultOptions())

	img, err := s.Snapshot(200, 150, render.WithLabels(true))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, img.EncodePNG(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	_, err = s.Snapshot(0, 0)
	assert.Error(t, err)
}
