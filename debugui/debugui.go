// Package debugui draws a Dear ImGui overlay over a running game: frame
// timing, sprite buckets, a sprite inspector and the input state.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/game2d/game"
)

// Overlay owns the debug windows. Render must be called between the ImGui
// backend's BeginFrame and EndFrame, on the loop goroutine.
type Overlay struct {
	Perf      *PerformanceStats
	Buckets   *BucketViewer
	Inspector *SpriteInspector
	Input     *InputViewer

	panels []func()
	hidden bool
}

// New creates an overlay keeping historyFrames frame times for the graph.
func New(historyFrames int) *Overlay {
	return &Overlay{
		Perf:      NewPerformanceStats(historyFrames),
		Buckets:   NewBucketViewer(),
		Inspector: NewSpriteInspector(),
		Input:     &InputViewer{},
	}
}

// AddPanel registers an extra ImGui render func drawn after the built-in
// windows.
func (o *Overlay) AddPanel(render func()) {
	o.panels = append(o.panels, render)
}

// Toggle shows or hides every window.
func (o *Overlay) Toggle() {
	o.hidden = !o.hidden
}

func (o *Overlay) Visible() bool {
	return !o.hidden
}

// Render draws the overlay for the loop's current frame.
func (o *Overlay) Render(loop *game.Loop) {
	if o.hidden {
		return
	}
	ctx := loop.Context()

	o.Perf.Render(loop.Stats())
	if id, ok := o.Buckets.Render(ctx.Sprites); ok {
		o.Inspector.SelectBucket(id)
	}
	o.Inspector.Render(ctx.Sprites)
	o.Input.Render(ctx.Input)

	for _, render := range o.panels {
		render()
	}
}

// WantCapture reports whether ImGui is using the mouse or keyboard, in which
// case the game should ignore them.
func WantCapture() (mouse, keyboard bool) {
	io := imgui.CurrentIO()
	return io.WantCaptureMouse(), io.WantCaptureKeyboard()
}
