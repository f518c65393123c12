package utils

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestClearAfterMessage(t *testing.T) {
	t.Parallel()

	cmd := ClearAfter(time.Millisecond)
	if cmd == nil {
		t.Fatal("ClearAfter() returned nil, expected tea.Cmd")
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if _, ok := msg.(ClearMsg); !ok {
			t.Errorf("expected ClearMsg, got %T", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("ClearAfter() did not fire")
	}
}

func TestDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0.0s"},
		{1500 * time.Millisecond, "1.5s"},
		{2*time.Minute + 5*time.Second, "2m05s"},
		{3*time.Hour + 7*time.Minute, "3h07m"},
	}

	for _, tt := range tests {
		if got := Duration(tt.in); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFPSInterval(t *testing.T) {
	t.Parallel()

	if got := FPSInterval(30); got != time.Second/30 {
		t.Errorf("FPSInterval(30) = %v", got)
	}

	if got := FPSInterval(0); got != time.Second {
		t.Errorf("FPSInterval(0) = %v", got)
	}
}
