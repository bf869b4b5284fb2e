// Package config loads the runtime's TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/plus3/game2d/input"
)

var (
	ErrNotFound = errors.New("config not found")
	ErrInvalid  = errors.New("invalid config")
)

type Config struct {
	Window   Window            `toml:"window"`
	Loop     Loop              `toml:"loop"`
	Log      Log               `toml:"log"`
	Assets   Assets            `toml:"assets"`
	Debug    Debug             `toml:"debug"`
	Bindings map[string]string `toml:"bindings"`
}

type Window struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
}

type Loop struct {
	MaxFPS float64 `toml:"max_fps"`
}

type Log struct {
	Level string `toml:"level"`
}

type Assets struct {
	Dir   string `toml:"dir"`
	Watch bool   `toml:"watch"`
}

type Debug struct {
	Overlay bool `toml:"overlay"`
}

// Default is an 800×600 window capped at 60 fps.
func Default() Config {
	return Config{
		Window: Window{Title: "game2d", Width: 800, Height: 600},
		Loop:   Loop{MaxFPS: 60},
		Log:    Log{Level: "info"},
		Assets: Assets{Dir: "assets"},
	}
}

// Load reads path over the defaults. A missing file returns the defaults
// together with an error matching ErrNotFound.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return Default(), err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges, the log level and the key bindings.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Loop.MaxFPS < 0 {
		errs = append(errs, fmt.Errorf("loop.max_fps %g is negative", c.Loop.MaxFPS))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level %q", c.Log.Level))
	}
	for action, name := range c.Bindings {
		if _, err := input.ParseKey(name); err != nil {
			errs = append(errs, fmt.Errorf("bindings.%s: %w", action, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Binding returns the key bound to action, or fallback when unbound.
func (c Config) Binding(action string, fallback input.Key) input.Key {
	name, ok := c.Bindings[action]
	if !ok {
		return fallback
	}
	key, err := input.ParseKey(name)
	if err != nil {
		return fallback
	}
	return key
}

// Encode writes c as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
