package choreo

// DefaultPatchPriority is the floor above which a layer counts as a patch.
// Patches are corrective overlays that must out-rank every ordinary layer
// they overlap, by priority rather than recency.
const DefaultPatchPriority = 1000

// Layer is a time-bounded reference to one motion-capture clip assigned to a
// performer slot. The interval is half-open: a clip is no longer active at
// exactly its own end. Fade durations are presentation hints and play no part
// in resolution.
type Layer struct {
	ID       string
	Slot     int
	Start    float64
	End      float64
	Priority int
	Label    string
	FadeIn   float64
	FadeOut  float64
}

// Covers reports whether the layer is in effect at time t.
func (l Layer) Covers(t float64) bool {
	return t >= l.Start && t < l.End
}

// IsPatch reports whether the layer's priority reaches the patch floor.
func (l Layer) IsPatch(floor int) bool {
	return l.Priority >= floor
}

// ActiveLayerAt resolves which single layer is in effect at time t. The
// second return value is false when no layer covers t, which is a common and
// valid state. Among covering layers the highest priority wins; on a tie the
// first encountered in slice order is kept, so resolution is deterministic
// by insertion order.
func ActiveLayerAt(layers []Layer, t float64) (Layer, bool) {
	var best Layer
	found := false
	for _, l := range layers {
		if !l.Covers(t) {
			continue
		}
		if !found || l.Priority > best.Priority {
			best = l
			found = true
		}
	}
	return best, found
}

// NextPriority mints the priority for a newly ingested clip: one above the
// current maximum, starting at 1 on an empty track.
func NextPriority(layers []Layer) int {
	max := 0
	for _, l := range layers {
		if l.Priority > max {
			max = l.Priority
		}
	}
	return max + 1
}

// NextPatchPriority mints a patch priority: the usual max+1, but never below
// the patch floor, so a patch out-ranks ordinary layers even on an otherwise
// empty track.
func NextPatchPriority(layers []Layer, floor int) int {
	p := NextPriority(layers)
	if p < floor {
		return floor
	}
	return p
}
