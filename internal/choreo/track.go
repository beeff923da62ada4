package choreo

import "github.com/google/uuid"

// NumSlots is the number of performer lanes a project always provisions.
const NumSlots = 3

// Track aggregates one layer set and one keyframe set for a single performer
// slot. It is exclusively owned by its Project and mutated only through its
// methods; queries sort and scan copies, never the stored slices.
type Track struct {
	Slot      int
	Layers    []Layer
	Keyframes []Keyframe
}

// ActiveLayer resolves the clip in effect at time t.
func (tr *Track) ActiveLayer(t float64) (Layer, bool) {
	return ActiveLayerAt(tr.Layers, t)
}

// Position resolves the stage position at time t.
func (tr *Track) Position(t float64) (Position, bool) {
	return PositionAt(tr.Keyframes, t)
}

// End is the latest layer end on this track, 0 when it has no layers.
func (tr *Track) End() float64 {
	end := 0.0
	for _, l := range tr.Layers {
		if l.End > end {
			end = l.End
		}
	}
	return end
}

// LayerSpec carries the caller-supplied fields of a new layer; ids and
// priorities are minted on insertion.
type LayerSpec struct {
	Start   float64
	End     float64
	Label   string
	FadeIn  float64
	FadeOut float64
}

// AddLayer ingests an ordinary clip, minting a fresh id and a priority one
// above the track's current maximum.
func (tr *Track) AddLayer(spec LayerSpec) (Layer, error) {
	return tr.addLayer(spec, NextPriority(tr.Layers))
}

// AddPatchLayer ingests a corrective overlay. Its priority is clamped to at
// least the patch floor so it out-ranks every ordinary layer it overlaps.
func (tr *Track) AddPatchLayer(spec LayerSpec, floor int) (Layer, error) {
	return tr.addLayer(spec, NextPatchPriority(tr.Layers, floor))
}

func (tr *Track) addLayer(spec LayerSpec, priority int) (Layer, error) {
	if spec.Start < 0 {
		return Layer{}, ErrNegativeTime
	}
	if spec.End <= spec.Start {
		return Layer{}, ErrLayerSpan
	}
	l := Layer{
		ID:       uuid.NewString(),
		Slot:     tr.Slot,
		Start:    spec.Start,
		End:      spec.End,
		Priority: priority,
		Label:    spec.Label,
		FadeIn:   spec.FadeIn,
		FadeOut:  spec.FadeOut,
	}
	layers := make([]Layer, len(tr.Layers), len(tr.Layers)+1)
	copy(layers, tr.Layers)
	tr.Layers = append(layers, l)
	return l, nil
}

// RemoveLayer deletes the layer with the given id.
func (tr *Track) RemoveLayer(id string) error {
	layers := make([]Layer, 0, len(tr.Layers))
	removed := false
	for _, l := range tr.Layers {
		if l.ID == id {
			removed = true
			continue
		}
		layers = append(layers, l)
	}
	if !removed {
		return ErrLayerNotFound
	}
	tr.Layers = layers
	return nil
}

// UpdateLayerSpan moves or resizes an existing layer, keeping its priority.
func (tr *Track) UpdateLayerSpan(id string, start, end float64) error {
	if start < 0 {
		return ErrNegativeTime
	}
	if end <= start {
		return ErrLayerSpan
	}
	layers := make([]Layer, len(tr.Layers))
	copy(layers, tr.Layers)
	for i, l := range layers {
		if l.ID != id {
			continue
		}
		l.Start, l.End = start, end
		layers[i] = l
		tr.Layers = layers
		return nil
	}
	return ErrLayerNotFound
}

// CommitHold records a stage position on this track through the editor.
func (tr *Track) CommitHold(e Editor, t, x, y float64) error {
	frames, err := e.CommitHold(tr.Keyframes, t, x, y)
	if err != nil {
		return err
	}
	tr.Keyframes = frames
	return nil
}
