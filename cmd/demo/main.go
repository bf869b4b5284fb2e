package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/plus3/game2d/assets"
	"github.com/plus3/game2d/config"
	"github.com/plus3/game2d/debugui"
	debugui_ebiten "github.com/plus3/game2d/debugui/ebiten"
	"github.com/plus3/game2d/game"
	"github.com/plus3/game2d/gfx"
	"github.com/plus3/game2d/input"
	"github.com/plus3/game2d/logging"
	"github.com/plus3/game2d/platform"
	"github.com/plus3/game2d/platform/ebitenplatform"
	"github.com/plus3/game2d/sprite"
)

const (
	hudHeight   = 32
	enemyCount  = 8
	playerImage = "player.png"
)

func main() {
	configPath := flag.String("config", "game2d.toml", "Path to the TOML config file.")
	flag.Parse()

	cfg, cfgErr := config.Load(*configPath)
	if cfgErr != nil && !errors.Is(cfgErr, config.ErrNotFound) {
		fmt.Fprintln(os.Stderr, cfgErr)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stderr, logging.Options{Level: cfg.Log.Level, Prefix: "demo"})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfgErr != nil {
		logger.Info("no config file, using defaults", "path", *configPath)
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("demo failed", "err", err)
	}
	logger.Info("bye")
}

func run(cfg config.Config, logger *log.Logger) error {
	window := platform.WindowOptions{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
	}
	p := ebitenplatform.New(window)
	loop := game.New(p).
		WithMaxFPS(cfg.Loop.MaxFPS).
		WithLogger(logger)

	cache := assets.NewCache(p.Renderer(), cfg.Assets.Dir, logger)
	arena := gfx.Rect{
		Y: hudHeight,
		W: float64(window.Width),
		H: float64(window.Height - 2*hudHeight),
	}
	keys := controls{
		Up:    cfg.Binding("up", input.KeyUp),
		Down:  cfg.Binding("down", input.KeyDown),
		Left:  cfg.Binding("left", input.KeyLeft),
		Right: cfg.Binding("right", input.KeyRight),
	}
	toggle := cfg.Binding("toggle", input.KeySpace)

	var overlay *debugui.Overlay
	if cfg.Debug.Overlay {
		overlay = debugui.New(240)
	}

	var player sprite.Handle
	loop.OnLoad(func(ctx *game.Context) error {
		tex, err := cache.Texture(playerImage)
		if err != nil {
			ctx.Log.Warn("drawing the player as a rectangle", "err", err)
		}
		player = sprite.Add(ctx.Sprites, newPlayer(arena, keys, tex))
		for range enemyCount {
			sprite.Add(ctx.Sprites, randomEnemy(arena))
		}
		return nil
	})

	loop.OnKeyPressed(func(ctx *game.Context, key input.Key) {
		switch key {
		case toggle:
			if pl := sprite.Get[Player](ctx.Sprites, player); pl != nil {
				ctx.Log.Debug("animation", "current", pl.ToggleAnimation())
			}
		case input.KeyF1:
			if overlay != nil {
				overlay.Toggle()
			}
		case input.KeyEscape:
			p.Push(platform.QuitEvent())
		}
	})

	loop.OnDraw(func(ctx *game.Context) {
		w, h := float64(window.Width), float64(window.Height)
		green := ctx.Style.WithColor(gfx.Green)
		red := ctx.Style.WithColor(gfx.Red)
		ctx.Gfx.DrawRect(gfx.Fill, gfx.Rect{W: w, H: hudHeight}, green)
		ctx.Gfx.DrawRect(gfx.Fill, gfx.Rect{Y: h - hudHeight, W: w, H: hudHeight}, red)

		score := 0
		if pl := sprite.Get[Player](ctx.Sprites, player); pl != nil {
			score = pl.Score
		}
		stats := loop.Stats()
		hud := fmt.Sprintf("score %d  fps %.0f  sprites %d", score, stats.FPS, ctx.Sprites.Len())
		if err := ctx.Print(hud, 8, 8); err != nil {
			ctx.Log.Error("hud", "err", err)
		}
	})

	loop.OnQuit(func(ctx *game.Context) {
		ctx.Log.Info("quitting", "frames", loop.Stats().Frames)
	})

	if cfg.Assets.Watch {
		w, err := assets.Watch(cfg.Assets.Dir, func(c assets.Change) {
			if c.Removed {
				return
			}
			loop.Post(func(ctx *game.Context) {
				reloaded, err := cache.Reload(c.Path)
				switch {
				case err != nil:
					ctx.Log.Warn("reload failed", "path", c.Path, "err", err)
				case reloaded:
					ctx.Log.Info("reloaded", "asset", filepath.Base(c.Path))
				}
			})
		}, logger)
		if err != nil {
			logger.Warn("not watching assets", "dir", cfg.Assets.Dir, "err", err)
		} else {
			defer w.Close()
		}
	}

	if overlay != nil {
		backend := debugui_ebiten.NewImguiBackend(loop, overlay, window.Title, window.Width, window.Height)
		return ebitenplatform.Run(loop, p, backend)
	}
	return ebitenplatform.Run(loop, p, nil)
}
