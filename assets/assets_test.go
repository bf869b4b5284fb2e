package assets_test

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/game2d/assets"
	"github.com/plus3/game2d/gfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func quiet() *log.Logger {
	return log.New(&bytes.Buffer{})
}

func TestCacheLoadsOnce(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "hero.png"), 32, 16)
	c := assets.NewCache(gfx.NewHeadless(10, 10), dir, quiet())

	a, err := c.Texture("hero.png")
	require.NoError(t, err)
	b, err := c.Texture("hero.png")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, filepath.Join(dir, "hero.png"), a.Path())
	w, h := a.Size()
	assert.Equal(t, 32, w)
	assert.Equal(t, 16, h)
	assert.Equal(t, 1, c.Len())
}

func TestCacheTextureError(t *testing.T) {
	c := assets.NewCache(gfx.NewHeadless(10, 10), t.TempDir(), quiet())

	_, err := c.Texture("nope.png")
	assert.ErrorIs(t, err, gfx.ErrLoadTexture)
	assert.Equal(t, 0, c.Len())
}

func TestCacheReloadSwapsImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.png")
	writePNG(t, path, 32, 16)
	c := assets.NewCache(gfx.NewHeadless(10, 10), dir, quiet())

	tex, err := c.Texture("hero.png")
	require.NoError(t, err)

	writePNG(t, path, 64, 64)
	ok, err := c.Reload(path)
	require.NoError(t, err)
	assert.True(t, ok)

	w, _ := tex.Size()
	assert.Equal(t, 64, w)
	assert.Equal(t, 1, tex.Version())

	ok, err = c.Reload(filepath.Join(dir, "other.png"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheReloadKeepsOldImageOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.png")
	writePNG(t, path, 32, 16)
	c := assets.NewCache(gfx.NewHeadless(10, 10), dir, quiet())
	tex, err := c.Texture("hero.png")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("half written"), 0o644))
	_, err = c.Reload(path)
	assert.ErrorIs(t, err, gfx.ErrLoadTexture)

	w, _ := tex.Size()
	assert.Equal(t, 32, w)
	assert.Equal(t, 0, tex.Version())
}

func TestCacheFonts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))
	c := assets.NewCache(gfx.NewHeadless(10, 10), dir, quiet())

	small, err := c.Font("regular.ttf", 12)
	require.NoError(t, err)
	again, err := c.Font("regular.ttf", 12)
	require.NoError(t, err)
	big, err := c.Font("regular.ttf", 24)
	require.NoError(t, err)

	assert.Same(t, small, again)
	assert.NotSame(t, small, big)
	assert.Equal(t, 2, c.Len())

	ok, err := c.Reload(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCacheForget(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 1, 1)
	c := assets.NewCache(gfx.NewHeadless(10, 10), dir, quiet())
	_, err := c.Texture("a.png")
	require.NoError(t, err)

	c.Forget(filepath.Join(dir, "a.png"))
	assert.Equal(t, 0, c.Len())
}

func TestQuadOverCachedTexture(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "sheet.png"), 64, 32)
	c := assets.NewCache(gfx.NewHeadless(10, 10), dir, quiet())
	sheet, err := c.Texture("sheet.png")
	require.NoError(t, err)

	quads := gfx.Quads(sheet, 32, 32)
	require.Len(t, quads, 2)
	assert.Same(t, sheet, quads[1].Image)
	assert.Implements(t, (*gfx.Unwrapper)(nil), quads[1].Image)
}

type changeLog struct {
	mu      sync.Mutex
	changes []assets.Change
}

func (c *changeLog) add(ch assets.Change) {
	c.mu.Lock()
	c.changes = append(c.changes, ch)
	c.mu.Unlock()
}

func (c *changeLog) has(path string, removed bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ch := range c.changes {
		if ch.Path == path && ch.Removed == removed {
			return true
		}
	}
	return false
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	changes := &changeLog{}
	w, err := assets.Watch(dir, changes.add, quiet())
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "hero.png")
	writePNG(t, path, 4, 4)
	require.Eventually(t, func() bool { return changes.has(path, false) }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.Remove(path))
	require.Eventually(t, func() bool { return changes.has(path, true) }, 5*time.Second, 10*time.Millisecond)
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	dir := t.TempDir()
	changes := &changeLog{}
	w, err := assets.Watch(dir, changes.add, quiet())
	require.NoError(t, err)
	defer w.Close()

	sub := filepath.Join(dir, "levels")
	require.NoError(t, os.Mkdir(sub, 0o755))
	path := filepath.Join(sub, "one.png")

	// The new directory is watched asynchronously; keep writing until seen.
	require.Eventually(t, func() bool {
		writePNG(t, path, 2, 2)
		return changes.has(path, false)
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWatcherClose(t *testing.T) {
	w, err := assets.Watch(t.TempDir(), func(assets.Change) {}, quiet())
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.ErrorIs(t, w.Close(), assets.ErrWatcherClosed)
}

func TestWatchMissingDir(t *testing.T) {
	_, err := assets.Watch(filepath.Join(t.TempDir(), "missing"), func(assets.Change) {}, quiet())
	assert.Error(t, err)
}
