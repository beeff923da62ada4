// Package clock owns the single playback time cursor. Exactly one scheduler
// may drive Tick; audio or render consumers synchronize to the clock, never
// the other way around.
package clock

// Clock is the transport for one open project: a time cursor, a play flag,
// and the timeline duration that bounds both. It is not safe for concurrent
// mutation; the single-driver rule makes locking unnecessary.
type Clock struct {
	now      float64
	playing  bool
	duration float64
}

// New returns a stopped clock at t=0 with the given timeline duration.
func New(duration float64) *Clock {
	if duration < 0 {
		duration = 0
	}
	return &Clock{duration: duration}
}

// Now is the current position on the timeline, in seconds.
func (c *Clock) Now() float64 { return c.now }

// Playing reports whether the transport is running.
func (c *Clock) Playing() bool { return c.playing }

// Duration is the playable range in seconds.
func (c *Clock) Duration() float64 { return c.duration }

// Play starts playback from the current cursor. No-op when already playing
// or when the timeline has zero length.
func (c *Clock) Play() {
	if c.duration <= 0 {
		return
	}
	c.playing = true
}

// Pause freezes the cursor where it is. No-op when already stopped.
func (c *Clock) Pause() {
	c.playing = false
}

// Seek moves the cursor, clamped to [0, duration]. Works in either state;
// playback continues from the new position when running. Seeking also makes
// a clock that auto-stopped at the end resumable again.
func (c *Clock) Seek(t float64) {
	c.now = c.clampTime(t)
}

// Tick advances the cursor by elapsed real seconds. Ignored while stopped.
// Reaching the end of the timeline clamps the cursor there and stops
// playback; there is no looping.
func (c *Clock) Tick(elapsed float64) {
	if !c.playing || elapsed <= 0 {
		return
	}
	c.now += elapsed
	if c.now >= c.duration {
		c.now = c.duration
		c.playing = false
	}
}

// SetDuration replaces the timeline duration, re-clamping the cursor. Called
// whenever layers change the playable range.
func (c *Clock) SetDuration(d float64) {
	if d < 0 {
		d = 0
	}
	c.duration = d
	c.now = c.clampTime(c.now)
}

func (c *Clock) clampTime(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > c.duration {
		return c.duration
	}
	return t
}
