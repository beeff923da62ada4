package choreo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/telari/stagecue/internal/choreo"
)

var _ = Describe("Editor.CommitHold", func() {
	var editor choreo.Editor

	BeforeEach(func() {
		editor = choreo.NewEditor()
	})

	holds := func(frames []choreo.Keyframe) []choreo.Hold {
		var out []choreo.Hold
		for _, f := range frames {
			if h, ok := f.(choreo.Hold); ok {
				out = append(out, h)
			}
		}
		return out
	}
	cues := func(frames []choreo.Keyframe) []choreo.Transition {
		var out []choreo.Transition
		for _, f := range frames {
			if tr, ok := f.(choreo.Transition); ok {
				out = append(out, tr)
			}
		}
		return out
	}

	It("rejects malformed positions at the boundary", func() {
		_, err := editor.CommitHold(nil, -1, 0.5, 0.5)
		Expect(err).To(MatchError(choreo.ErrNegativeTime))

		_, err = editor.CommitHold(nil, 0, 1.5, 0.5)
		Expect(err).To(MatchError(choreo.ErrMarkOutOfStage))

		_, err = editor.CommitHold(nil, 0, 0.5, -0.2)
		Expect(err).To(MatchError(choreo.ErrMarkOutOfStage))
	})

	It("replaces a near-duplicate hold in place, keeping its id", func() {
		frames, err := editor.CommitHold(nil, 2, 0.1, 0.1)
		Expect(err).NotTo(HaveOccurred())
		original := holds(frames)[0].ID

		frames, err = editor.CommitHold(frames, 2.005, 0.9, 0.9)
		Expect(err).NotTo(HaveOccurred())

		hs := holds(frames)
		Expect(hs).To(HaveLen(1))
		Expect(hs[0].ID).To(Equal(original))
		Expect(hs[0].Position()).To(Equal(choreo.Position{X: 0.9, Y: 0.9}))
	})

	It("auto-inserts a transition one lead before a far-enough hold", func() {
		frames, _ := editor.CommitHold(nil, 2, 0.2, 0.2)
		frames, err := editor.CommitHold(frames, 10, 0.8, 0.8)
		Expect(err).NotTo(HaveOccurred())

		cs := cues(frames)
		Expect(cs).To(HaveLen(1))
		Expect(cs[0].At).To(BeNumerically("~", 10-editor.Lead, 1e-9))
	})

	It("skips the transition when the gap is within the lead", func() {
		frames, _ := editor.CommitHold(nil, 2, 0.2, 0.2)
		frames, _ = editor.CommitHold(frames, 2+editor.Lead, 0.8, 0.8)
		Expect(cues(frames)).To(BeEmpty())
	})

	It("adds no transition for the very first hold", func() {
		frames, _ := editor.CommitHold(nil, 30, 0.5, 0.5)
		Expect(cues(frames)).To(BeEmpty())
	})

	It("is idempotent", func() {
		frames, _ := editor.CommitHold(nil, 2, 0.2, 0.2)
		frames, _ = editor.CommitHold(frames, 10, 0.8, 0.8)
		size := len(frames)

		again, err := editor.CommitHold(frames, 10, 0.8, 0.8)
		Expect(err).NotTo(HaveOccurred())
		Expect(again).To(HaveLen(size))

		for _, t := range []float64{0, 5, 9.75, 10, 20} {
			a, aok := choreo.PositionAt(frames, t)
			b, bok := choreo.PositionAt(again, t)
			Expect(aok).To(Equal(bok))
			Expect(a).To(Equal(b))
		}
	})

	It("keeps the result sorted by time", func() {
		frames, _ := editor.CommitHold(nil, 10, 0.8, 0.8)
		frames, _ = editor.CommitHold(frames, 2, 0.2, 0.2)
		frames, _ = editor.CommitHold(frames, 6, 0.4, 0.4)

		for i := 1; i < len(frames); i++ {
			Expect(frames[i].Seconds()).To(BeNumerically(">=", frames[i-1].Seconds()))
		}
	})

	It("leaves the caller's snapshot untouched", func() {
		frames, _ := editor.CommitHold(nil, 2, 0.2, 0.2)
		snapshot := make([]choreo.Keyframe, len(frames))
		copy(snapshot, frames)

		_, err := editor.CommitHold(frames, 10, 0.8, 0.8)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(Equal(snapshot))
	})
})

var _ = Describe("Editor.RemoveKeyframe", func() {
	It("removes by id and reports misses", func() {
		editor := choreo.NewEditor()
		frames, _ := editor.CommitHold(nil, 1, 0.5, 0.5)
		id := frames[0].Key()

		next, removed := editor.RemoveKeyframe(frames, id)
		Expect(removed).To(BeTrue())
		Expect(next).To(BeEmpty())

		_, removed = editor.RemoveKeyframe(frames, "missing")
		Expect(removed).To(BeFalse())
	})
})
