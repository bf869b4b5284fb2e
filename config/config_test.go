package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/game2d/config"
	"github.com/plus3/game2d/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[window]
title = "Space Rocks"
width = 1024
height = 768
fullscreen = true

[loop]
max_fps = 144

[log]
level = "debug"

[assets]
dir = "data"
watch = true

[debug]
overlay = true

[bindings]
jump = "space"
left = "A"
`

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, config.Window{Title: "Space Rocks", Width: 1024, Height: 768, Fullscreen: true}, cfg.Window)
	assert.Equal(t, 144.0, cfg.Loop.MaxFPS)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, config.Assets{Dir: "data", Watch: true}, cfg.Assets)
	assert.True(t, cfg.Debug.Overlay)
	assert.Equal(t, input.KeySpace, cfg.Binding("jump", input.KeyUnknown))
	assert.Equal(t, input.KeyA, cfg.Binding("left", input.KeyUnknown))
	assert.Equal(t, input.KeyRight, cfg.Binding("right", input.KeyRight))
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("[loop]\nmax_fps = 30\n"))
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.Loop.MaxFPS)
	assert.Equal(t, config.Default().Window, cfg.Window)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"unknown key", "[window]\ncolour = 3\n"},
		{"bad syntax", "[window\n"},
		{"zero width", "[window]\nwidth = 0\n"},
		{"negative fps", "[loop]\nmax_fps = -1\n"},
		{"bad level", "[log]\nlevel = \"loud\"\n"},
		{"bad binding", "[bindings]\njump = \"hyperspace\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.toml))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestBadBindingWrapsUnknownKey(t *testing.T) {
	_, err := config.Parse([]byte("[bindings]\njump = \"hyperspace\"\n"))
	assert.ErrorIs(t, err, input.ErrUnknownKey)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game2d.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Space Rocks", cfg.Window.Title)
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, config.ErrNotFound)
	assert.Equal(t, config.Default(), cfg)
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Bindings = map[string]string{"jump": "Space"}

	data, err := cfg.Encode()
	require.NoError(t, err)

	back, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
