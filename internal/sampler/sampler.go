// Package sampler evaluates the resolution engine over the whole playable
// range, producing per-performer traces for plotting and export.
package sampler

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/telari/stagecue/internal/choreo"
)

// Trace is one performer's resolved timeline sampled on a uniform grid.
// Slots with no position data at a sample carry OnStage=false there; samples
// with no covering layer carry an empty label.
type Trace struct {
	Slot    int
	Times   []float64
	X       []float64
	Y       []float64
	OnStage []bool
	Active  []string
}

// Sample resolves every track of the project at rate samples per second.
// Tracks are independent read-only snapshots, so they are sampled in
// parallel, one goroutine each.
func Sample(ctx context.Context, p *choreo.Project, rate float64) ([]Trace, error) {
	duration := p.Duration()
	steps := 1
	if rate > 0 && duration > 0 {
		steps = int(duration*rate) + 1
	}

	traces := make([]Trace, choreo.NumSlots)
	g, ctx := errgroup.WithContext(ctx)
	for i, tr := range p.Tracks {
		i, tr := i, tr
		g.Go(func() error {
			trace, err := sampleTrack(ctx, tr, duration, steps)
			if err != nil {
				return err
			}
			traces[i] = trace
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return traces, nil
}

func sampleTrack(ctx context.Context, tr *choreo.Track, duration float64, steps int) (Trace, error) {
	out := Trace{
		Slot:    tr.Slot,
		Times:   make([]float64, 0, steps),
		X:       make([]float64, 0, steps),
		Y:       make([]float64, 0, steps),
		OnStage: make([]bool, 0, steps),
		Active:  make([]string, 0, steps),
	}
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return Trace{}, err
		}
		t := 0.0
		if steps > 1 {
			t = duration * float64(i) / float64(steps-1)
		}
		pos, ok := tr.Position(t)
		label := ""
		if l, active := tr.ActiveLayer(t); active {
			label = l.Label
		}
		out.Times = append(out.Times, t)
		out.X = append(out.X, pos.X)
		out.Y = append(out.Y, pos.Y)
		out.OnStage = append(out.OnStage, ok)
		out.Active = append(out.Active, label)
	}
	return out, nil
}
