package tui

import (
	"fmt"

	"github.com/ionut-t/tourbillon/pkg/movement"
	"github.com/ionut-t/tourbillon/pkg/scene"
	"github.com/ionut-t/tourbillon/ui/markdown"
	"github.com/ionut-t/tourbillon/ui/styles"
)

// inspector holds the rendered description of the selected part. It is
// shared by pointer so the store subscription and the model see the same
// panel.
type inspector struct {
	markdown markdown.Model
	part     movement.PartID
	content  string
	renders  int
}

func newInspector(width int) *inspector {
	i := &inspector{markdown: markdown.New(width)}
	i.refresh()
	return i
}

// observe is the store listener. It only re-renders when the selection
// actually changed.
func (i *inspector) observe(state scene.State) {
	if state.SelectedPart == i.part {
		return
	}
	i.part = state.SelectedPart
	i.refresh()
}

func (i *inspector) setWidth(width int) {
	if width == i.markdown.Width() {
		return
	}
	i.markdown.SetWidth(width)
	i.refresh()
}

func (i *inspector) refresh() {
	i.renders++

	info, ok := movement.Lookup(i.part)
	if !ok {
		i.content = styles.Subtext0.Render("Click a part to inspect it.")
		return
	}

	md := fmt.Sprintf("# %s\n\n_%s layer_\n\n%s\n", info.Label, info.Layer, info.Description)

	out, err := i.markdown.Render(md)
	if err != nil {
		i.content = styles.Error.Render(err.Error())
		return
	}
	i.content = out
}

// clipboardText is the plain text copied for the selected part.
func (i *inspector) clipboardText() (string, bool) {
	info, ok := movement.Lookup(i.part)
	if !ok {
		return "", false
	}
	return info.Label + "\n\n" + info.Description, true
}
