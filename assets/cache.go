// Package assets loads textures and fonts once, by path, and reloads them
// when their files change on disk.
package assets

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/plus3/game2d/gfx"
)

// Texture is a cached texture. Reload swaps the image underneath, so holders
// of a *Texture draw the new pixels without looking it up again.
type Texture struct {
	path    string
	img     gfx.Image
	version int
}

func (t *Texture) Size() (w, h int)  { return t.img.Size() }
func (t *Texture) Unwrap() gfx.Image { return t.img }
func (t *Texture) Path() string      { return t.path }

// Version counts reloads.
func (t *Texture) Version() int { return t.version }

type fontKey struct {
	path string
	size float64
}

// Cache is used from the loop goroutine only.
type Cache struct {
	r   gfx.Renderer
	dir string
	log *log.Logger

	textures map[string]*Texture
	fonts    map[fontKey]gfx.Font
}

// NewCache resolves relative names against dir and loads through r.
func NewCache(r gfx.Renderer, dir string, logger *log.Logger) *Cache {
	if logger == nil {
		logger = log.Default()
	}
	return &Cache{
		r:        r,
		dir:      dir,
		log:      logger,
		textures: make(map[string]*Texture),
		fonts:    make(map[fontKey]gfx.Font),
	}
}

// Dir returns the directory relative names resolve against.
func (c *Cache) Dir() string {
	return c.dir
}

func (c *Cache) resolve(name string) string {
	if filepath.IsAbs(name) || c.dir == "" {
		return filepath.Clean(name)
	}
	return filepath.Join(c.dir, name)
}

// Texture returns the texture for name, loading it on first use.
func (c *Cache) Texture(name string) (*Texture, error) {
	path := c.resolve(name)
	if t, ok := c.textures[path]; ok {
		return t, nil
	}
	img, err := c.r.LoadTexture(path)
	if err != nil {
		return nil, err
	}
	t := &Texture{path: path, img: img}
	c.textures[path] = t
	c.log.Debug("texture loaded", "path", path)
	return t, nil
}

// Font returns the font for name at size, loading it on first use.
func (c *Cache) Font(name string, size float64) (gfx.Font, error) {
	key := fontKey{path: c.resolve(name), size: size}
	if f, ok := c.fonts[key]; ok {
		return f, nil
	}
	f, err := c.r.LoadFont(key.path, size)
	if err != nil {
		return nil, err
	}
	c.fonts[key] = f
	c.log.Debug("font loaded", "path", key.path, "size", size)
	return f, nil
}

// Reload reloads whatever is cached for path. It reports whether anything
// was. On error the previous texture stays in place. Fonts are dropped and
// load again on next use.
func (c *Cache) Reload(path string) (bool, error) {
	path = filepath.Clean(path)
	reloaded := false

	for key := range c.fonts {
		if key.path == path {
			delete(c.fonts, key)
			reloaded = true
		}
	}

	t, ok := c.textures[path]
	if !ok {
		return reloaded, nil
	}
	img, err := c.r.LoadTexture(path)
	if err != nil {
		return true, fmt.Errorf("reload: %w", err)
	}
	t.img = img
	t.version++
	c.log.Info("texture reloaded", "path", path, "version", t.version)
	return true, nil
}

// Forget drops path from the cache.
func (c *Cache) Forget(path string) {
	path = filepath.Clean(path)
	delete(c.textures, path)
	for key := range c.fonts {
		if key.path == path {
			delete(c.fonts, key)
		}
	}
}

// Len returns the number of cached textures and fonts.
func (c *Cache) Len() int {
	return len(c.textures) + len(c.fonts)
}
