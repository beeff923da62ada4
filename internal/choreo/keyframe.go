package choreo

import "sort"

// Position is a point on the normalized stage, both axes in [0,1].
type Position struct {
	X float64
	Y float64
}

// Keyframe is a stage-position marker on a performer's timeline. Exactly two
// kinds exist: Hold pins a mark, Transition opens a glide window that ends at
// the next Hold. The interface is sealed so coordinates can only ever appear
// on a Hold.
type Keyframe interface {
	// Seconds is the marker's timestamp on the shared timeline.
	Seconds() float64
	// Key is the marker's unique id.
	Key() string

	keyframe()
}

// Hold fixes the performer's stage position until the next relevant marker.
type Hold struct {
	ID string
	At float64
	X  float64
	Y  float64
}

func (h Hold) Seconds() float64 { return h.At }
func (h Hold) Key() string      { return h.ID }
func (Hold) keyframe()          {}

// Position returns the hold's mark as a Position value.
func (h Hold) Position() Position { return Position{X: h.X, Y: h.Y} }

// Transition opens a glide window toward the next Hold. It carries no
// position of its own.
type Transition struct {
	ID string
	At float64
}

func (tr Transition) Seconds() float64 { return tr.At }
func (tr Transition) Key() string      { return tr.ID }
func (Transition) keyframe()           {}

// holdsInOrder extracts the Hold markers sorted ascending by time. The input
// slice is never touched; queries sort their own copy.
func holdsInOrder(frames []Keyframe) []Hold {
	holds := make([]Hold, 0, len(frames))
	for _, f := range frames {
		if h, ok := f.(Hold); ok {
			holds = append(holds, h)
		}
	}
	sort.Slice(holds, func(i, j int) bool { return holds[i].At < holds[j].At })
	return holds
}
