package choreo

import (
	"sort"

	"github.com/google/uuid"
)

const (
	// DefaultEpsilon is the same-timestamp tolerance for keyframe
	// deduplication, in seconds.
	DefaultEpsilon = 0.01

	// DefaultTransitionLead is the glide window length automatically opened
	// before a new hold, in seconds.
	DefaultTransitionLead = 0.5
)

// Editor commits stage positions to a keyframe collection. It is the only
// writer of keyframe data: everything else in the engine only reads. Commits
// return fresh slices, so readers holding the previous snapshot are never
// disturbed.
type Editor struct {
	// Epsilon is the tolerance within which two timestamps count as the same
	// keyframe.
	Epsilon float64
	// Lead is the glide window length D: committing a hold more than Lead
	// seconds after its predecessor auto-inserts a Transition at t-Lead.
	Lead float64
}

// NewEditor returns an Editor with the default tolerance and lead.
func NewEditor() Editor {
	return Editor{Epsilon: DefaultEpsilon, Lead: DefaultTransitionLead}
}

// CommitHold records that the performer stands at (x, y) at time t.
//
// A Hold already within Epsilon of t has its coordinates replaced in place,
// keeping its id. Otherwise a new Hold is inserted, and when the gap to the
// immediately preceding Hold exceeds Lead, a Transition is inserted at
// t-Lead unless one already sits within Epsilon of that spot. A gap of Lead
// or less gets no transition: the move is an instantaneous jump.
//
// Malformed positions are rejected here so the interpolator can assume every
// stored Hold is fully populated. Committing the same (t, x, y) twice is a
// no-op on the second call.
func (e Editor) CommitHold(frames []Keyframe, t, x, y float64) ([]Keyframe, error) {
	if t < 0 {
		return nil, ErrNegativeTime
	}
	if x < 0 || x > 1 || y < 0 || y > 1 {
		return nil, ErrMarkOutOfStage
	}

	next := make([]Keyframe, len(frames))
	copy(next, frames)

	// Near-duplicate hold: replace coordinates, keep the id.
	for i, f := range next {
		h, ok := f.(Hold)
		if !ok {
			continue
		}
		if sameTime(h.At, t, e.Epsilon) {
			h.X, h.Y = x, y
			next[i] = h
			return next, nil
		}
	}

	if prev, ok := precedingHold(next, t); ok && t-prev.At > e.Lead {
		cueAt := t - e.Lead
		if !hasTransitionNear(next, cueAt, e.Epsilon) {
			next = append(next, Transition{ID: uuid.NewString(), At: cueAt})
		}
	}
	next = append(next, Hold{ID: uuid.NewString(), At: t, X: x, Y: y})

	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Seconds() < next[j].Seconds()
	})
	return next, nil
}

// RemoveKeyframe deletes the marker with the given id and reports whether
// anything was removed.
func (e Editor) RemoveKeyframe(frames []Keyframe, id string) ([]Keyframe, bool) {
	next := make([]Keyframe, 0, len(frames))
	removed := false
	for _, f := range frames {
		if f.Key() == id {
			removed = true
			continue
		}
		next = append(next, f)
	}
	return next, removed
}

// precedingHold finds the latest Hold strictly before t.
func precedingHold(frames []Keyframe, t float64) (Hold, bool) {
	var prev Hold
	found := false
	for _, f := range frames {
		h, ok := f.(Hold)
		if !ok || h.At >= t {
			continue
		}
		if !found || h.At > prev.At {
			prev, found = h, true
		}
	}
	return prev, found
}

func hasTransitionNear(frames []Keyframe, t, eps float64) bool {
	for _, f := range frames {
		if tr, ok := f.(Transition); ok && sameTime(tr.At, t, eps) {
			return true
		}
	}
	return false
}

func sameTime(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}
