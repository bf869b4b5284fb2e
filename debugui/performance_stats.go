package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/game2d/game"
)

// PerformanceStats shows frame time history and the per-phase timings.
type PerformanceStats struct {
	history *frameHistory
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{history: newFrameHistory(historyFrames)}
}

func (ps *PerformanceStats) Render(stats game.Stats) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.history.push(float32(stats.LastDt * 1000.0))
	avg := ps.history.average()

	imgui.Text(fmt.Sprintf("State: %s", stats.State))
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Measured FPS: %.1f", stats.FPS))
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg dt: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("dt Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.history.values[0], int32(len(ps.history.values)))

	if imgui.TreeNodeStr("Phases") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PhaseTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Phase")
			imgui.TableSetupColumn("Count")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, phase := range stats.Phases {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(phase.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", phase.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(phase.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// frameHistory is a fixed ring of samples.
type frameHistory struct {
	values []float32
	next   int
	filled int
}

func newFrameHistory(n int) *frameHistory {
	return &frameHistory{values: make([]float32, max(1, n))}
}

func (h *frameHistory) push(v float32) {
	h.values[h.next] = v
	h.next = (h.next + 1) % len(h.values)
	h.filled = min(h.filled+1, len(h.values))
}

// average is over the samples pushed so far.
func (h *frameHistory) average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.values {
		sum += v
	}
	return sum / float32(h.filled)
}
