// Package ebiten hosts a debugui overlay on the Ebitengine Dear ImGui backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/game2d/debugui"
	"github.com/plus3/game2d/game"
	"github.com/plus3/game2d/platform/ebitenplatform"
)

var _ ebitenplatform.Overlay = (*ImguiBackend)(nil)

// ImguiBackend renders an Overlay for a loop.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend

	Overlay *debugui.Overlay
	loop    *game.Loop
}

// NewImguiBackend creates the ImGui context and window for loop. The imgui.ini
// file is disabled.
func NewImguiBackend(loop *game.Loop, overlay *debugui.Overlay, title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{
		EbitenBackend: backend,
		Overlay:       overlay,
		loop:          loop,
	}
}

// EndFrame renders the overlay windows and then closes the ImGui frame.
func (b *ImguiBackend) EndFrame() {
	b.Overlay.Render(b.loop)
	b.EbitenBackend.EndFrame()
}

func (b *ImguiBackend) BeginFrame() {
	b.EbitenBackend.BeginFrame()
}

func (b *ImguiBackend) Draw(screen *ebiten.Image) {
	b.EbitenBackend.Draw(screen)
}

func (b *ImguiBackend) Layout(outsideWidth, outsideHeight int) {
	b.EbitenBackend.Layout(outsideWidth, outsideHeight)
}
