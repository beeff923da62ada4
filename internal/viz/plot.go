// Package viz renders traces and transport state for the terminal.
package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/telari/stagecue/internal/sampler"
)

// Axis selects which stage coordinate a plot shows.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// PlotTrace renders one performer's position coordinate over time as an
// ascii graph. Off-stage stretches plot at zero; the caption says so when
// the whole trace is off stage.
func PlotTrace(tr sampler.Trace, axis Axis, height int) string {
	series := tr.X
	if axis == AxisY {
		series = tr.Y
	}

	onStage := false
	data := make([]float64, len(series))
	for i, v := range series {
		if tr.OnStage[i] {
			data[i] = v
			onStage = true
		}
	}
	if !onStage {
		return fmt.Sprintf("performer %d has no position keyframes", tr.Slot)
	}

	caption := fmt.Sprintf("performer %d, stage %s over time", tr.Slot, axis)
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
}
