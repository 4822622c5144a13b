package cinder

import "time"

// frameClock measures per-frame delta time and a smoothed frames-per-second
// figure. The FPS value refreshes about twice a second so it reads steadily
// instead of jittering every frame.
type frameClock struct {
	last   time.Time
	dt     float32
	frames int
	window float32
	fps    float64
}

// tick records a frame boundary at now and returns the delta since the
// previous tick in seconds. The first tick returns 0.
func (c *frameClock) tick(now time.Time) float32 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	c.dt = float32(now.Sub(c.last).Seconds())
	c.last = now

	c.frames++
	c.window += c.dt
	if c.window >= 0.5 {
		c.fps = float64(c.frames) / float64(c.window)
		c.frames = 0
		c.window = 0
	}
	return c.dt
}

// DeltaTime returns the duration of the previous frame in seconds, as
// measured at StartFrame. Zero until the second frame.
func (e *Engine) DeltaTime() float32 {
	return e.clock.dt
}

// FPS returns the smoothed frame rate, updated about twice a second.
// Zero until the first half second of frames has elapsed.
func (e *Engine) FPS() float64 {
	return e.clock.fps
}
