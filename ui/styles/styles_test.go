package styles

import (
	"fmt"
	"testing"

	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/stretchr/testify/assert"
)

func TestCanvasPaletteColoursEveryLayer(t *testing.T) {
	p := CanvasPalette()

	seen := make(map[string]movement.LayerID)
	for _, id := range movement.Layers() {
		fg := p.Layers[id].GetForeground()
		key := Layer(id).GetForeground()
		assert.Equal(t, key, fg, "%s", id)

		name := fmt.Sprint(fg)
		if other, ok := seen[name]; ok {
			t.Errorf("%s shares a colour with %s", id, other)
		}
		seen[name] = id
	}
}

func TestLayerFallsBackForUnknownID(t *testing.T) {
	assert.Equal(t, Overlay0.GetForeground(), Layer(movement.LayerID(99)).GetForeground())
}

func TestFormThemeIsBuilt(t *testing.T) {
	theme := FormTheme()
	assert.NotNil(t, theme)
	assert.Equal(t, Primary.GetForeground(), theme.Focused.Title.GetForeground())
}
