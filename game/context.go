package game

import (
	"github.com/charmbracelet/log"
	"github.com/plus3/game2d/gfx"
	"github.com/plus3/game2d/input"
	"github.com/plus3/game2d/sprite"
)

// Context is handed to every callback. It is owned by the loop and must not
// be retained or used from other goroutines; use Loop.Post for that.
type Context struct {
	Gfx     gfx.Renderer
	Style   gfx.Style
	Input   *input.State
	Sprites *sprite.Registry
	Log     *log.Logger
}

// Print draws text with the context's style.
func (c *Context) Print(text string, x, y float64) error {
	return gfx.Print(c.Gfx, text, x, y, c.Style)
}

// IsDown reports whether key is held.
func (c *Context) IsDown(key input.Key) bool {
	return c.Input.Keyboard.IsDown(key)
}
