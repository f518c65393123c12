package viewer

import (
	"time"

	"github.com/google/uuid"
	"github.com/ionut-t/tourbillon/pkg/animation"
	"github.com/ionut-t/tourbillon/pkg/camera"
	"github.com/ionut-t/tourbillon/pkg/frame"
	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/ionut-t/tourbillon/pkg/render"
	"github.com/ionut-t/tourbillon/pkg/scene"
	"github.com/ionut-t/tourbillon/pkg/selection"
	"github.com/rs/zerolog"
)

// Session is one viewing session: a store and everything driven by it.
// Sessions share nothing, so any number can run side by side.
type Session struct {
	id      uuid.UUID
	store   *scene.Store
	loop    *frame.Loop
	camera  *camera.Controller
	drivers []*animation.Driver
	router  *selection.Router
	logger  zerolog.Logger

	unmount map[movement.PartID]func()
}

type Options struct {
	Logger               zerolog.Logger
	InitialSpeed         float64
	InitialFocus         movement.FocusTargetID
	MaxFrameDelta        time.Duration
	ResetFocusOnDeselect bool
}

// DefaultOptions match a fresh session with no configuration.
func DefaultOptions() Options {
	return Options{
		Logger:        zerolog.Nop(),
		InitialSpeed:  1,
		InitialFocus:  movement.FocusOverview,
		MaxFrameDelta: 250 * time.Millisecond,
	}
}

func New(opts Options) *Session {
	id := uuid.New()
	logger := opts.Logger.With().Str("session", id.String()).Logger()

	store := scene.New(
		scene.WithLogger(logger.With().Str("component", "store").Logger()),
		scene.WithInitialSpeed(opts.InitialSpeed),
		scene.WithInitialFocus(opts.InitialFocus),
	)

	s := &Session{
		id:      id,
		store:   store,
		loop:    frame.New(frame.WithMaxDelta(opts.MaxFrameDelta)),
		camera:  camera.New(store, store.FocusDescriptor()),
		drivers: animation.NewDrivers(store),
		router: selection.NewRouter(store,
			selection.WithFocusReset(opts.ResetFocusOnDeselect),
			selection.WithLogger(logger.With().Str("component", "selection").Logger()),
		),
		logger:  logger,
		unmount: make(map[movement.PartID]func()),
	}

	s.loop.Register(s.camera)
	for _, d := range s.drivers {
		s.unmount[d.Part()] = s.loop.Register(d)
	}

	logger.Info().
		Int("drivers", len(s.drivers)).
		Float64("speed", opts.InitialSpeed).
		Stringer("focus", store.State().FocusTarget).
		Msg("session started")

	return s
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// Store is the session's state handle for UI panels.
func (s *Session) Store() *scene.Store {
	return s.store
}

func (s *Session) Router() *selection.Router {
	return s.router
}

func (s *Session) Camera() *camera.Controller {
	return s.camera
}

// Advance runs one frame of delta seconds.
func (s *Session) Advance(delta float64) {
	s.loop.Advance(delta)
}

// Frame runs one frame at host time now and returns the delta used.
func (s *Session) Frame(now time.Time) float64 {
	return s.loop.Frame(now)
}

// Elapsed is the total frame time the session has run.
func (s *Session) Elapsed() time.Duration {
	return time.Duration(s.loop.Elapsed() * float64(time.Second))
}

// Unmount stops a part's driver from being called on later frames. Its
// phase stays where it is.
func (s *Session) Unmount(part movement.PartID) bool {
	unregister, ok := s.unmount[part]
	if !ok {
		return false
	}
	unregister()
	delete(s.unmount, part)
	s.logger.Debug().Stringer("part", part).Msg("driver unmounted")
	return true
}

// Phases returns the current angle of every animated part.
func (s *Session) Phases() map[movement.PartID]float64 {
	phases := make(map[movement.PartID]float64, len(s.drivers))
	for _, d := range s.drivers {
		phases[d.Part()] = d.Phase()
	}
	return phases
}

// Sprites projects the scene as the camera currently sees it.
func (s *Session) Sprites(vp render.Viewport) []render.Sprite {
	return render.Project(s.camera.Pose(), s.store.State(), s.Phases(), vp)
}

// Click routes a pointer press at (x, y) in viewport coordinates.
func (s *Session) Click(vp render.Viewport, x, y float64) (movement.PartID, bool) {
	return s.router.Click(render.HitTree(s.Sprites(vp)), x, y)
}

// Snapshot draws the current view into a width x height image.
func (s *Session) Snapshot(width, height int, opts ...render.ImageOption) (*render.Image, error) {
	img, err := render.NewImage(width, height, opts...)
	if err != nil {
		return nil, err
	}
	img.Draw(s.Sprites(render.ImageViewport(width, height)))
	return img, nil
}

// Close logs the end of the session. The state is discarded with it.
func (s *Session) Close() {
	s.logger.Info().Dur("elapsed", s.Elapsed()).Int("frames", s.loop.Frames()).Msg("session ended")
}
