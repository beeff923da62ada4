package choreo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/telari/stagecue/internal/choreo"
)

var _ = Describe("PositionAt", func() {
	hold := func(at, x, y float64) choreo.Hold {
		return choreo.Hold{ID: "h", At: at, X: x, Y: y}
	}
	cue := func(at float64) choreo.Transition {
		return choreo.Transition{ID: "t", At: at}
	}

	It("reports no position when no hold exists", func() {
		_, ok := choreo.PositionAt(nil, 0)
		Expect(ok).To(BeFalse())

		_, ok = choreo.PositionAt([]choreo.Keyframe{cue(1)}, 2)
		Expect(ok).To(BeFalse())
	})

	It("pins a single hold everywhere, including far outside its time", func() {
		frames := []choreo.Keyframe{hold(5, 0.3, 0.8)}
		for _, t := range []float64{-100, 0, 5, 5.001, 1e9} {
			pos, ok := choreo.PositionAt(frames, t)
			Expect(ok).To(BeTrue())
			Expect(pos).To(Equal(choreo.Position{X: 0.3, Y: 0.8}))
		}
	})

	It("clamps before the first and after the last hold", func() {
		frames := []choreo.Keyframe{hold(2, 0.1, 0.1), hold(8, 0.9, 0.9)}

		pos, _ := choreo.PositionAt(frames, -1)
		Expect(pos).To(Equal(choreo.Position{X: 0.1, Y: 0.1}))

		pos, _ = choreo.PositionAt(frames, 8)
		Expect(pos).To(Equal(choreo.Position{X: 0.9, Y: 0.9}))

		pos, _ = choreo.PositionAt(frames, 99)
		Expect(pos).To(Equal(choreo.Position{X: 0.9, Y: 0.9}))
	})

	It("jumps instantaneously between holds with no transition", func() {
		frames := []choreo.Keyframe{hold(0, 0, 0), hold(4, 1, 1)}

		pos, _ := choreo.PositionAt(frames, 3.999)
		Expect(pos).To(Equal(choreo.Position{X: 0, Y: 0}))

		pos, _ = choreo.PositionAt(frames, 4)
		Expect(pos).To(Equal(choreo.Position{X: 1, Y: 1}))
	})

	It("holds the mark until the transition cue, then glides", func() {
		frames := []choreo.Keyframe{
			hold(0, 0.2, 0.7),
			cue(1),
			hold(2, 0.5, 0.5),
		}

		pos, _ := choreo.PositionAt(frames, 0.5)
		Expect(pos).To(Equal(choreo.Position{X: 0.2, Y: 0.7}))

		pos, _ = choreo.PositionAt(frames, 1.5)
		Expect(pos.X).To(BeNumerically("~", 0.35, 1e-9))
		Expect(pos.Y).To(BeNumerically("~", 0.6, 1e-9))

		pos, _ = choreo.PositionAt(frames, 2.5)
		Expect(pos).To(Equal(choreo.Position{X: 0.5, Y: 0.5}))
	})

	It("treats a cue exactly on the destination hold as a zero-length glide", func() {
		frames := []choreo.Keyframe{
			hold(0, 0, 0),
			cue(3),
			hold(3, 1, 1),
		}

		pos, _ := choreo.PositionAt(frames, 2.999)
		Expect(pos).To(Equal(choreo.Position{X: 0, Y: 0}))

		pos, _ = choreo.PositionAt(frames, 3)
		Expect(pos).To(Equal(choreo.Position{X: 1, Y: 1}))
	})

	It("scopes each cue to its own bracket", func() {
		frames := []choreo.Keyframe{
			hold(0, 0, 0),
			cue(1),
			hold(2, 1, 0),
			hold(6, 0, 1),
		}

		// Second bracket has no cue, so the mark holds until the jump.
		pos, _ := choreo.PositionAt(frames, 5)
		Expect(pos).To(Equal(choreo.Position{X: 1, Y: 0}))
	})

	It("is insensitive to keyframe ordering in the input slice", func() {
		shuffled := []choreo.Keyframe{
			hold(2, 0.5, 0.5),
			cue(1),
			hold(0, 0.2, 0.7),
		}
		pos, _ := choreo.PositionAt(shuffled, 1.5)
		Expect(pos.X).To(BeNumerically("~", 0.35, 1e-9))
		Expect(pos.Y).To(BeNumerically("~", 0.6, 1e-9))
	})

	It("never mutates its input", func() {
		frames := []choreo.Keyframe{
			hold(2, 0.5, 0.5),
			hold(0, 0.2, 0.7),
		}
		choreo.PositionAt(frames, 1)
		Expect(frames[0].Seconds()).To(Equal(2.0))
		Expect(frames[1].Seconds()).To(Equal(0.0))
	})
})
