package debugui

import (
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/game2d/input"
)

// InputViewer shows the held keys and the cursor.
type InputViewer struct{}

func (iv *InputViewer) Render(state *input.State) {
	if !imgui.BeginV("Input", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	x, y := state.Mouse.Position()
	imgui.Text(fmt.Sprintf("Mouse: %.0f, %.0f", x, y))

	held := state.Keyboard.HeldKeys()
	slices.Sort(held)
	imgui.Text(fmt.Sprintf("Held (%d):", len(held)))
	for _, key := range held {
		imgui.BulletText(key.String())
	}

	imgui.End()
}
