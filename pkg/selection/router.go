package selection

import (
	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/rs/zerolog"
)

// Mutator is the slice of the store the router writes to.
type Mutator interface {
	SetSelectedPart(movement.PartID)
	SetFocusTarget(movement.FocusTargetID)
}

// Router turns pointer hits into selection changes.
type Router struct {
	store      Mutator
	resetFocus bool
	logger     zerolog.Logger
}

type Option func(*Router)

// WithFocusReset makes Deselect send the camera back to the overview.
func WithFocusReset(enabled bool) Option {
	return func(r *Router) {
		r.resetFocus = enabled
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

func NewRouter(store Mutator, opts ...Option) *Router {
	r := &Router{
		store:  store,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Click selects the innermost part under (x, y). It reports whether a part
// was hit; a miss leaves the selection alone.
func (r *Router) Click(root *Node, x, y float64) (movement.PartID, bool) {
	hit, ok := root.Pick(x, y)
	if !ok {
		r.logger.Debug().Float64("x", x).Float64("y", y).Msg("click missed")
		return movement.PartNone, false
	}

	r.Select(hit.Part)
	return hit.Part, true
}

// Select replaces the selection with part.
func (r *Router) Select(part movement.PartID) {
	r.logger.Debug().Stringer("part", part).Msg("part selected")
	r.store.SetSelectedPart(part)
}

// Deselect clears the selection when the inspection panel is dismissed.
func (r *Router) Deselect() {
	r.store.SetSelectedPart(movement.PartNone)

	if r.resetFocus {
		r.store.SetFocusTarget(movement.FocusOverview)
	}
}
