package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/game2d/game"
	"github.com/plus3/game2d/gfx"
	"github.com/plus3/game2d/input"
	"github.com/plus3/game2d/logging"
	"github.com/plus3/game2d/platform"
	"github.com/plus3/game2d/sprite"
)

const (
	width  = 1280
	height = 720

	// A key press and release every pressPeriod frames.
	pressPeriod = 30
	// Registry compaction every compactPeriod frames.
	compactPeriod = 600
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	spriteCount := flag.Int("sprites", 10000, "The number of sprites to keep alive.")
	maxFPS := flag.Float64("max-fps", 0, "Frame rate cap; 0 runs frames back to back.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	logLevel := flag.String("log-level", "info", "Log level.")
	flag.Parse()

	logger, err := logging.New(os.Stderr, logging.Options{Level: *logLevel, Prefix: "loop-stress"})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := platform.NewScripted(width, height)
	report := &Report{
		Duration:       *duration,
		Sprites:        *spriteCount,
		MaxFPS:         *maxFPS,
		GCPauseMetrics: *gcPauseMetrics,
	}

	loop := game.New(p).WithMaxFPS(*maxFPS).WithLogger(logger)
	loop.OnLoad(func(ctx *game.Context) error {
		logger.Info("populating registry", "sprites", *spriteCount)
		for i := range *spriteCount {
			if i%4 == 0 {
				sprite.Add(ctx.Sprites, randomSpark())
			} else {
				sprite.Add(ctx.Sprites, randomMote())
			}
		}
		return nil
	})

	var frame int
	loop.OnUpdate(func(ctx *game.Context, _ float64) {
		frame++
		switch frame % pressPeriod {
		case 0:
			p.Push(platform.Down(input.KeySpace))
		case pressPeriod / 2:
			p.Push(platform.Up(input.KeySpace))
		}

		cmds := ctx.Sprites.Commands()
		for h, s := range sprite.Each[Spark](ctx.Sprites) {
			if s.Life <= 0 {
				cmds.Remove(h)
				sprite.Spawn(cmds, randomSpark())
				report.Respawned++
			}
		}
		if frame%compactPeriod == 0 {
			cmds.Defer(ctx.Sprites.Compact)
		}
	})
	loop.OnKeyPressed(func(*game.Context, input.Key) {
		report.KeyPresses++
	})
	loop.OnDraw(func(ctx *game.Context) {
		_ = ctx.Print(fmt.Sprintf("frame %d", frame), 8, 8)
	})

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running", "duration", *duration, "max_fps", *maxFPS)
	timer := time.AfterFunc(*duration, func() {
		p.Push(platform.QuitEvent())
	})
	defer timer.Stop()

	start := time.Now()
	if err := loop.Run(); err != nil {
		logger.Fatal("loop failed", "err", err)
	}
	report.TotalTime = time.Since(start)
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Loop = loop.Stats()
	report.Registry = loop.Context().Sprites.Stats()
	logger.Info("finished", "frames", report.Loop.Frames)

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", "err", err)
	}
	fmt.Println("--- End of Report ---")
}

// Mote bounces around the screen.
type Mote struct {
	X, Y, VX, VY float64
}

func randomMote() Mote {
	return Mote{
		X:  rand.Float64() * width,
		Y:  rand.Float64() * height,
		VX: rand.Float64()*200 - 100,
		VY: rand.Float64()*200 - 100,
	}
}

func (m *Mote) Update(f *sprite.UpdateFrame) {
	m.X += m.VX * f.DeltaTime
	m.Y += m.VY * f.DeltaTime
	if m.X < 0 || m.X > width {
		m.VX = -m.VX
	}
	if m.Y < 0 || m.Y > height {
		m.VY = -m.VY
	}
}

func (m *Mote) Draw(dst gfx.Renderer) {
	dst.DrawRect(gfx.Fill, sprite.Bounds(m), gfx.DefaultStyle().WithColor(gfx.Blue))
}

func (m *Mote) Position() (float64, float64) { return m.X, m.Y }
func (m *Mote) Size() (float64, float64)     { return 2, 2 }

// Spark is short-lived and drawn above motes.
type Spark struct {
	X, Y float64
	Life float64
}

func randomSpark() Spark {
	return Spark{
		X:    rand.Float64() * width,
		Y:    rand.Float64() * height,
		Life: 0.1 + rand.Float64(),
	}
}

func (s *Spark) Update(f *sprite.UpdateFrame) {
	s.Life -= f.DeltaTime
}

func (s *Spark) Draw(dst gfx.Renderer) {
	dst.DrawLine(s.X, s.Y, s.X+1, s.Y+1, gfx.DefaultStyle().WithColor(gfx.White))
}

func (s *Spark) Position() (float64, float64) { return s.X, s.Y }
func (s *Spark) Size() (float64, float64)     { return 1, 1 }
func (s *Spark) Layer() int                   { return 1 }
