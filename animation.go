package cinder

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 fields on a Sprite simultaneously. Create one
// via the convenience constructors (TweenPosition, TweenSize, TweenRotation,
// TweenTint) and call Update(dt) each frame. Values are written to the
// sprite's staged state, so they reach the renderer at the sprite's next
// Draw. If the target sprite is destroyed, the group stops immediately.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	vals   [4]float32 // component scratch for tint groups
	tint   bool
	target *Sprite
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target sprite. If the sprite has been destroyed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && !g.target.res.valid() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		if g.tint {
			g.vals[i] = val
		} else {
			*g.fields[i] = float64(val)
		}
		if !finished {
			allDone = false
		}
	}
	if g.tint && g.target != nil {
		g.target.Color = Color{
			R: clampComponent(g.vals[0]),
			G: clampComponent(g.vals[1]),
			B: clampComponent(g.vals[2]),
			A: clampComponent(g.vals[3]),
		}
	}
	g.Done = allDone
}

func clampComponent(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// TweenPosition creates a TweenGroup that animates the sprite's position to
// the given target coordinates over the specified duration using the easing
// function.
func TweenPosition(s *Sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: s}
	g.tweens[0] = gween.New(float32(s.Transform.Position.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(s.Transform.Position.Y), float32(toY), duration, fn)
	g.fields[0] = &s.Transform.Position.X
	g.fields[1] = &s.Transform.Position.Y
	return g
}

// TweenSize creates a TweenGroup that animates the sprite's size to the given
// target dimensions over the specified duration using the easing function.
func TweenSize(s *Sprite, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: s}
	g.tweens[0] = gween.New(float32(s.Transform.Size.X), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(s.Transform.Size.Y), float32(toH), duration, fn)
	g.fields[0] = &s.Transform.Size.X
	g.fields[1] = &s.Transform.Size.Y
	return g
}

// TweenRotation creates a TweenGroup that animates the sprite's rotation to
// the target angle in radians over the specified duration.
func TweenRotation(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: s}
	g.tweens[0] = gween.New(float32(s.Transform.Rotation), float32(to), duration, fn)
	g.fields[0] = &s.Transform.Rotation
	return g
}

// TweenTint creates a TweenGroup that animates all four components of the
// sprite's color to the target color over the specified duration.
func TweenTint(s *Sprite, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: s, tint: true}
	g.tweens[0] = gween.New(float32(s.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(s.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(s.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(s.Color.A), float32(to.A), duration, fn)
	return g
}
