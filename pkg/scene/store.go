package scene

import (
	"github.com/ionut-t/tourbillon/pkg/focus"
	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/rs/zerolog"
)

// Listener is called after every mutation with the resulting state.
type Listener func(State)

type subscription struct {
	id int
	fn Listener
}

// Store owns the State of one session. All mutation goes through its
// methods. A Store is not safe for concurrent use; it belongs to the event
// loop that drives input handling and frames.
type Store struct {
	state     State
	listeners []subscription
	nextID    int
	notifying bool
	pending   []State
	logger    zerolog.Logger
}

type Option func(*Store)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithInitialSpeed overrides the default animation speed of 1.
func WithInitialSpeed(speed float64) Option {
	return func(s *Store) {
		s.state.AnimationSpeed = speed
	}
}

// WithInitialFocus starts the store on id instead of the overview. Unknown
// targets are ignored.
func WithInitialFocus(id movement.FocusTargetID) Option {
	return func(s *Store) {
		if id.Valid() {
			s.state.FocusTarget = id
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		state:  DefaultState(),
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// State returns a copy of the current state.
func (s *Store) State() State {
	return s.state
}

// FocusDescriptor returns the descriptor for the current focus target.
func (s *Store) FocusDescriptor() focus.Descriptor {
	return s.state.FocusDescriptor()
}

// Subscribe registers fn and returns a function that removes it. Listeners
// added during a notification pass are first called on the next mutation.
func (s *Store) Subscribe(fn Listener) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// ToggleLayer flips the visibility of l.
func (s *Store) ToggleLayer(l movement.LayerID) {
	if !l.Valid() {
		s.logger.Debug().Int("layer", int(l)).Msg("ignoring toggle of unknown layer")
		return
	}

	s.state.layers[l] = !s.state.layers[l]
	s.logger.Debug().Stringer("layer", l).Bool("visible", s.state.layers[l]).Msg("layer toggled")
	s.notify()
}

// SetLayerVisibility sets the visibility of l.
func (s *Store) SetLayerVisibility(l movement.LayerID, visible bool) {
	if !l.Valid() {
		s.logger.Debug().Int("layer", int(l)).Msg("ignoring visibility of unknown layer")
		return
	}

	s.state.layers[l] = visible
	s.logger.Debug().Stringer("layer", l).Bool("visible", visible).Msg("layer visibility set")
	s.notify()
}

// SetAnimationSpeed replaces the speed multiplier as given. Range checks
// are the caller's business.
func (s *Store) SetAnimationSpeed(speed float64) {
	s.state.AnimationSpeed = speed
	s.logger.Debug().Float64("speed", speed).Msg("animation speed set")
	s.notify()
}

// SetFocusTarget moves the focus. The descriptor is derived from the target,
// so both change in this single transition.
func (s *Store) SetFocusTarget(id movement.FocusTargetID) {
	if !id.Valid() {
		s.logger.Debug().Int("focus", int(id)).Msg("ignoring unknown focus target")
		return
	}

	s.state.FocusTarget = id
	s.logger.Debug().Stringer("focus", id).Msg("focus target set")
	s.notify()
}

// SetSelectedPart replaces the selection. PartNone clears it.
func (s *Store) SetSelectedPart(p movement.PartID) {
	if p != movement.PartNone && !p.Valid() {
		s.logger.Debug().Int("part", int(p)).Msg("ignoring selection of unknown part")
		return
	}

	s.state.SelectedPart = p
	s.logger.Debug().Stringer("part", p).Msg("selected part set")
	s.notify()
}

// notify runs one pass per mutation, in mutation order. Mutations made by a
// listener are queued behind the pass in progress, each with the state it
// produced.
func (s *Store) notify() {
	if s.notifying {
		s.pending = append(s.pending, s.state)
		return
	}

	s.notifying = true
	defer func() {
		s.notifying = false
		s.pending = nil
	}()

	state := s.state
	for {
		listeners := append([]subscription(nil), s.listeners...)
		for _, sub := range listeners {
			// an earlier listener in this pass may have unsubscribed it
			if !s.subscribed(sub.id) {
				continue
			}
			sub.fn(state)
		}

		if len(s.pending) == 0 {
			return
		}
		state = s.pending[0]
		s.pending = s.pending[1:]
	}
}

func (s *Store) subscribed(id int) bool {
	for _, sub := range s.listeners {
		if sub.id == id {
			return true
		}
	}
	return false
}
