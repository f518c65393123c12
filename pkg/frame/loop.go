package frame

import (
	"math"
	"time"
)

// Ticker is anything that advances once per rendered frame.
type Ticker interface {
	Tick(delta float64)
}

// TickFunc adapts a function to Ticker.
type TickFunc func(delta float64)

func (f TickFunc) Tick(delta float64) {
	f(delta)
}

type entry struct {
	id     int
	ticker Ticker
}

// Loop calls its tickers once per frame, one after the other in the order
// they were registered. It does no rendering and knows nothing of the host.
type Loop struct {
	entries  []entry
	nextID   int
	last     time.Time
	started  bool
	elapsed  float64
	frames   int
	maxDelta float64
}

type Option func(*Loop)

// WithMaxDelta caps the delta derived by Frame, so a stalled host (a
// suspended terminal, say) does not fast-forward the scene.
func WithMaxDelta(d time.Duration) Option {
	return func(l *Loop) {
		l.maxDelta = d.Seconds()
	}
}

func New(opts ...Option) *Loop {
	l := &Loop{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Register adds t and returns a function that unregisters it. Unregistering
// only affects later frames.
func (l *Loop) Register(t Ticker) func() {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, entry{id: id, ticker: t})

	return func() {
		for i, e := range l.entries {
			if e.id == id {
				l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
				return
			}
		}
	}
}

// Len is the number of registered tickers.
func (l *Loop) Len() int {
	return len(l.entries)
}

// Advance runs one frame of delta seconds. Negative and NaN deltas count
// as zero.
func (l *Loop) Advance(delta float64) {
	if !(delta > 0) {
		delta = 0
	}

	entries := append([]entry(nil), l.entries...)
	for _, e := range entries {
		e.ticker.Tick(delta)
	}

	l.elapsed += delta
	l.frames++
}

// Frame runs a frame for the host clock reading now. The first frame has
// a delta of zero.
func (l *Loop) Frame(now time.Time) float64 {
	var delta float64
	if l.started {
		delta = now.Sub(l.last).Seconds()
	}
	l.last = now
	l.started = true

	if l.maxDelta > 0 {
		delta = math.Min(delta, l.maxDelta)
	}

	l.Advance(delta)
	return max(delta, 0)
}

// Elapsed is the sum of all frame deltas so far.
func (l *Loop) Elapsed() float64 {
	return l.elapsed
}

func (l *Loop) Frames() int {
	return l.frames
}
