package cinder

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera2D is a tracked 2D camera. Mutations are staged on the struct and
// flushed to the native layer at Engine.StartFrame while the camera is set.
type Camera2D struct {
	// Position is the world-space point the camera centers on.
	Position Vec2
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64

	scrollTween *scrollAnim
}

// NewCamera2D creates a camera at the origin with default zoom.
func NewCamera2D() *Camera2D {
	return &Camera2D{Zoom: 1.0}
}

// ScrollTo animates the camera to the given world position over duration
// seconds. A scroll already in progress is replaced.
func (c *Camera2D) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.Position.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Position.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera2D) Scrolling() bool {
	return c.scrollTween != nil
}

// update advances the scroll animation. Called from Engine.StartFrame.
func (c *Camera2D) update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.Position.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		c.Position.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
}

// state snapshots the camera for the native layer.
func (c *Camera2D) state() CameraState {
	zoom := c.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	return CameraState{Position: c.Position, Rotation: c.Rotation, Zoom: zoom}
}
