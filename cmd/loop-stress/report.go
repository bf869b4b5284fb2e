package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/game2d/game"
	"github.com/plus3/game2d/sprite"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Sprites  int
	MaxFPS   float64

	// Results
	TotalTime      time.Duration
	KeyPresses     int
	Respawned      int
	Loop           game.Stats
	Registry       sprite.Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// FrameRate is the average over the whole run.
func (r *Report) FrameRate() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.Loop.Frames) / r.TotalTime.Seconds()
}

const reportTemplate = `
# Loop Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Sprites:** {{.Sprites}}
- **Max FPS:** {{if .MaxFPS}}{{.MaxFPS}}{{else}}uncapped{{end}}

## Performance Results
- **Frames:** {{.Loop.Frames}}
- **Total Test Time:** {{.TotalTime}}
- **Average Frame Rate:** {{printf "%.1f" .FrameRate}} fps
- **Key Presses Delivered:** {{.KeyPresses}}
- **Sprites Respawned:** {{.Respawned}}

| Phase | Runs | Avg | Min | Max |
|-------|------|-----|-----|-----|
{{- range .Loop.Phases}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Registry
| Bucket | Type | Count | Slots | Capacity |
|--------|------|-------|-------|----------|
{{- range .Registry.Buckets}}
| {{.ID}} | {{.Type}} | {{.Count}} | {{.Slots}} | {{.Capacity}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

var reportFuncs = template.FuncMap{
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
