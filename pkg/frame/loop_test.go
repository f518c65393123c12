package frame

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name  string
	calls *[]string
	delta []float64
}

func (r *recorder) Tick(delta float64) {
	*r.calls = append(*r.calls, r.name)
	r.delta = append(r.delta, delta)
}

func TestAdvanceRunsInRegistrationOrder(t *testing.T) {
	var calls []string
	l := New()

	l.Register(&recorder{name: "camera", calls: &calls})
	l.Register(&recorder{name: "barrel", calls: &calls})
	l.Register(&recorder{name: "escape", calls: &calls})

	l.Advance(0.1)
	l.Advance(0.1)

	assert.Equal(t, []string{"camera", "barrel", "escape", "camera", "barrel", "escape"}, calls)
	assert.Equal(t, 2, l.Frames())
	assert.InDelta(t, 0.2, l.Elapsed(), 1e-12)
}

func TestUnregisterStopsLaterFrames(t *testing.T) {
	var calls []string
	l := New()

	a := &recorder{name: "a", calls: &calls}
	var unregisterB func()
	l.Register(TickFunc(func(delta float64) {
		calls = append(calls, "unmounter")
		if unregisterB != nil {
			unregisterB()
			unregisterB = nil
		}
	}))
	unregisterB = l.Register(&recorder{name: "b", calls: &calls})
	l.Register(a)

	l.Advance(0.1)
	assert.Equal(t, []string{"unmounter", "b", "a"}, calls, "in-flight frame completes")

	calls = nil
	l.Advance(0.1)
	assert.Equal(t, []string{"unmounter", "a"}, calls)
	assert.Equal(t, 2, l.Len())
}

func TestAdvanceClampsBadDeltas(t *testing.T) {
	var calls []string
	r := &recorder{name: "r", calls: &calls}
	l := New()
	l.Register(r)

	l.Advance(-1)
	l.Advance(math.NaN())

	assert.Equal(t, []float64{0, 0}, r.delta)
	assert.Zero(t, l.Elapsed())
}

func TestFrameDerivesDelta(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		offsets  []time.Duration
		expected []float64
	}{
		{
			name:     "first frame is zero",
			offsets:  []time.Duration{0, 16 * time.Millisecond, 50 * time.Millisecond},
			expected: []float64{0, 0.016, 0.034},
		},
		{
			name:     "clock going backwards",
			offsets:  []time.Duration{time.Second, 0},
			expected: []float64{0, 0},
		},
		{
			name:     "stall is capped",
			opts:     []Option{WithMaxDelta(250 * time.Millisecond)},
			offsets:  []time.Duration{0, 5 * time.Second},
			expected: []float64{0, 0.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			r := &recorder{name: "r", calls: &calls}
			l := New(tt.opts...)
			l.Register(r)

			start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			for _, off := range tt.offsets {
				l.Frame(start.Add(off))
			}

			assert.Len(t, r.delta, len(tt.expected))
			for i, want := range tt.expected {
				assert.InDelta(t, want, r.delta[i], 1e-9)
			}
		})
	}
}
