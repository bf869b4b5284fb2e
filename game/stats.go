package game

import "time"

// Phase names, in frame order.
const (
	PhaseEvents        = "events"
	PhaseKeys          = "keys"
	PhaseUpdate        = "update"
	PhaseSpritesUpdate = "sprites.update"
	PhaseSpritesDraw   = "sprites.draw"
	PhaseDraw          = "draw"
	PhasePresent       = "present"
)

const (
	phaseEvents = iota
	phaseKeys
	phaseUpdate
	phaseSpritesUpdate
	phaseSpritesDraw
	phaseDraw
	phasePresent
	phaseCount
)

var phaseNames = [phaseCount]string{
	PhaseEvents, PhaseKeys, PhaseUpdate, PhaseSpritesUpdate, PhaseSpritesDraw, PhaseDraw, PhasePresent,
}

const fpsWindow = time.Second

// Stats describes the frames run so far.
type Stats struct {
	State  State
	Frames int64
	FPS    float64 // over the last complete one-second window
	LastDt float64
	Phases []PhaseStats
}

// PhaseStats provides timing for one phase of the frame.
type PhaseStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type phaseStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type frameStats struct {
	frames int64
	lastDt float64
	phases [phaseCount]phaseStatsInternal

	windowStart  time.Time
	windowFrames int
	fps          float64
}

func newFrameStats() *frameStats {
	fs := &frameStats{}
	for i := range fs.phases {
		fs.phases[i].minDuration = time.Duration(1<<63 - 1)
	}
	return fs
}

func (fs *frameStats) record(phase int, d time.Duration) {
	stats := &fs.phases[phase]
	stats.executionCount++
	stats.lastDuration = d
	stats.totalDuration += d

	if d < stats.minDuration {
		stats.minDuration = d
	}
	if d > stats.maxDuration {
		stats.maxDuration = d
	}
}

// frame counts a completed frame ending at now.
func (fs *frameStats) frame(now time.Time) {
	fs.frames++
	if fs.windowStart.IsZero() {
		fs.windowStart = now
		return
	}
	fs.windowFrames++
	if elapsed := now.Sub(fs.windowStart); elapsed >= fpsWindow {
		fs.fps = float64(fs.windowFrames) / elapsed.Seconds()
		fs.windowStart = now
		fs.windowFrames = 0
	}
}

func (fs *frameStats) snapshot(state State) Stats {
	stats := Stats{
		State:  state,
		Frames: fs.frames,
		FPS:    fs.fps,
		LastDt: fs.lastDt,
		Phases: make([]PhaseStats, phaseCount),
	}
	for i, internal := range fs.phases {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Phases[i] = PhaseStats{
			Name:           phaseNames[i],
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}
	return stats
}

// Phase returns the stats for the named phase.
func (s Stats) Phase(name string) (PhaseStats, bool) {
	for _, p := range s.Phases {
		if p.Name == name {
			return p, true
		}
	}
	return PhaseStats{}, false
}
