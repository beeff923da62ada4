package choreo

// PositionAt resolves a performer's stage position at time t from a set of
// keyframes. The second return value is false when no Hold exists at all,
// meaning there is nothing to anchor on.
//
// Positions behave like stage blocking: a performer sits on a mark until a
// Transition marker opens a glide window, then moves linearly so the move
// completes exactly at the next Hold. Without a Transition between two Holds
// the position jumps instantaneously at the later Hold's time.
func PositionAt(frames []Keyframe, t float64) (Position, bool) {
	holds := holdsInOrder(frames)
	if len(holds) == 0 {
		return Position{}, false
	}

	// Clamp outside the marked range.
	if t <= holds[0].At {
		return holds[0].Position(), true
	}
	last := holds[len(holds)-1]
	if t >= last.At {
		return last.Position(), true
	}

	var from, to Hold
	for i := 0; i < len(holds)-1; i++ {
		if t >= holds[i].At && t < holds[i+1].At {
			from, to = holds[i], holds[i+1]
			break
		}
	}

	cue, ok := glideCue(frames, from.At, to.At)
	if !ok || t < cue.At {
		// Still on the mark.
		return from.Position(), true
	}

	// Mid-move. A cue placed exactly on the destination hold collapses the
	// window to zero; treat that as an already-finished move rather than
	// dividing by zero.
	progress := 1.0
	if span := to.At - cue.At; span > 0 {
		progress = clamp((t-cue.At)/span, 0, 1)
	}
	return Position{
		X: lerp(from.X, to.X, progress),
		Y: lerp(from.Y, to.Y, progress),
	}, true
}

// glideCue finds the earliest Transition inside (start, end]. Taking the
// earliest keeps the result independent of marker insertion order.
func glideCue(frames []Keyframe, start, end float64) (Transition, bool) {
	var cue Transition
	found := false
	for _, f := range frames {
		tr, ok := f.(Transition)
		if !ok {
			continue
		}
		if tr.At <= start || tr.At > end {
			continue
		}
		if !found || tr.At < cue.At {
			cue, found = tr, true
		}
	}
	return cue, found
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
