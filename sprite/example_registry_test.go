package sprite_test

import (
	"fmt"

	"github.com/plus3/game2d/gfx"
	"github.com/plus3/game2d/sprite"
)

type Coin struct {
	X, Y  float64
	Value int
}

func (c *Coin) Update(f *sprite.UpdateFrame) { c.Y += 10 * f.DeltaTime }
func (c *Coin) Draw(dst gfx.Renderer) {
	dst.DrawRect(gfx.Fill, sprite.Bounds(c), gfx.DefaultStyle().WithColor(gfx.Green))
}
func (c *Coin) Position() (float64, float64) { return c.X, c.Y }
func (c *Coin) Size() (float64, float64)     { return 4, 4 }

func ExampleRegistry() {
	r := sprite.NewRegistry()
	gold := sprite.Add(r, Coin{X: 10, Value: 5})
	sprite.Add(r, Coin{X: 20, Value: 1})

	r.UpdateAll(0.5, nil, nil)

	total := 0
	for _, c := range sprite.Each[Coin](r) {
		total += c.Value
	}
	fmt.Println("coins:", sprite.Count[Coin](r), "total:", total)
	fmt.Println("gold y:", sprite.Get[Coin](r, gold).Y)

	screen := gfx.NewHeadless(64, 64)
	r.DrawAll(screen)
	fmt.Println("rects drawn:", screen.Count(gfx.OpRect))

	// Output:
	// coins: 2 total: 6
	// gold y: 5
	// rects drawn: 2
}
