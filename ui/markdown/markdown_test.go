package markdown

import (
	"strings"
	"testing"
)

func TestRenderKeepsText(t *testing.T) {
	m := New(40)

	out, err := m.Render("The **balance wheel** swings.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "swings") {
		t.Errorf("expected rendered text to keep the words, got %q", out)
	}
}

func TestSetWidth(t *testing.T) {
	m := New(0)
	m.SetWidth(30)

	if m.Width() != 30 {
		t.Errorf("expected width 30, got %d", m.Width())
	}

	if _, err := m.Render("text"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
