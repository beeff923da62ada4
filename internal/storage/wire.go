package storage

import (
	"fmt"
	"time"

	"github.com/telari/stagecue/internal/choreo"
)

// Wire names for keyframe kinds.
const (
	interpStep   = "STEP"
	interpLinear = "LINEAR"
)

type projectFile struct {
	Title           string      `json:"title"`
	BackingDuration float64     `json:"backingDurationSec"`
	Tracks          []trackFile `json:"tracks"`
	SavedAt         time.Time   `json:"savedAt"`
}

type trackFile struct {
	Slot      int              `json:"slot"`
	Layers    []layerRecord    `json:"layers"`
	Keyframes []keyframeRecord `json:"keyframes"`
}

type layerRecord struct {
	ID       string  `json:"id"`
	Start    float64 `json:"startSec"`
	End      float64 `json:"endSec"`
	Priority int     `json:"priority"`
	Label    string  `json:"label"`
	FadeIn   float64 `json:"fadeInSec,omitempty"`
	FadeOut  float64 `json:"fadeOutSec,omitempty"`
}

// keyframeRecord is the flat wire shape: x and y are present exactly when
// interp is STEP. The decoder enforces that, the choreo sum type preserves
// it in memory.
type keyframeRecord struct {
	ID     string   `json:"id"`
	Time   float64  `json:"timeSec"`
	Interp string   `json:"interp"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
}

func encodeProject(p *choreo.Project) (*projectFile, error) {
	file := &projectFile{
		Title:           p.Title,
		BackingDuration: p.BackingDuration,
	}
	for _, tr := range p.Tracks {
		tf := trackFile{Slot: tr.Slot}
		for _, l := range tr.Layers {
			tf.Layers = append(tf.Layers, layerRecord{
				ID:       l.ID,
				Start:    l.Start,
				End:      l.End,
				Priority: l.Priority,
				Label:    l.Label,
				FadeIn:   l.FadeIn,
				FadeOut:  l.FadeOut,
			})
		}
		for _, f := range tr.Keyframes {
			switch kf := f.(type) {
			case choreo.Hold:
				x, y := kf.X, kf.Y
				tf.Keyframes = append(tf.Keyframes, keyframeRecord{
					ID: kf.ID, Time: kf.At, Interp: interpStep, X: &x, Y: &y,
				})
			case choreo.Transition:
				tf.Keyframes = append(tf.Keyframes, keyframeRecord{
					ID: kf.ID, Time: kf.At, Interp: interpLinear,
				})
			default:
				return nil, fmt.Errorf("storage: unknown keyframe kind %T", f)
			}
		}
		file.Tracks = append(file.Tracks, tf)
	}
	return file, nil
}

func decodeProject(file *projectFile) (*choreo.Project, error) {
	p := choreo.NewProject(file.Title)
	p.BackingDuration = file.BackingDuration

	for _, tf := range file.Tracks {
		tr, err := p.Track(tf.Slot)
		if err != nil {
			return nil, fmt.Errorf("storage: track slot %d: %w", tf.Slot, err)
		}
		for _, lr := range tf.Layers {
			if lr.End <= lr.Start {
				return nil, fmt.Errorf("storage: layer %s: %w", lr.ID, choreo.ErrLayerSpan)
			}
			tr.Layers = append(tr.Layers, choreo.Layer{
				ID:       lr.ID,
				Slot:     tf.Slot,
				Start:    lr.Start,
				End:      lr.End,
				Priority: lr.Priority,
				Label:    lr.Label,
				FadeIn:   lr.FadeIn,
				FadeOut:  lr.FadeOut,
			})
		}
		for _, kr := range tf.Keyframes {
			kf, err := decodeKeyframe(kr)
			if err != nil {
				return nil, err
			}
			tr.Keyframes = append(tr.Keyframes, kf)
		}
	}
	return p, nil
}

func decodeKeyframe(kr keyframeRecord) (choreo.Keyframe, error) {
	if kr.Time < 0 {
		return nil, fmt.Errorf("storage: keyframe %s: %w", kr.ID, choreo.ErrNegativeTime)
	}
	switch kr.Interp {
	case interpStep:
		if kr.X == nil || kr.Y == nil {
			return nil, fmt.Errorf("storage: STEP keyframe %s missing coordinates", kr.ID)
		}
		if *kr.X < 0 || *kr.X > 1 || *kr.Y < 0 || *kr.Y > 1 {
			return nil, fmt.Errorf("storage: STEP keyframe %s: %w", kr.ID, choreo.ErrMarkOutOfStage)
		}
		return choreo.Hold{ID: kr.ID, At: kr.Time, X: *kr.X, Y: *kr.Y}, nil
	case interpLinear:
		return choreo.Transition{ID: kr.ID, At: kr.Time}, nil
	default:
		return nil, fmt.Errorf("storage: keyframe %s: unknown interp %q", kr.ID, kr.Interp)
	}
}
