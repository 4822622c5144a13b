package cinder

import (
	"errors"
	"testing"
)

func newTestSprite(t *testing.T, e *Engine, position, size Vec2) *Sprite {
	t.Helper()
	tex, err := e.LoadTexture("assets/sprite.png", false, false)
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	s, err := e.NewSprite(position, size, tex)
	if err != nil {
		t.Fatalf("NewSprite: %v", err)
	}
	return s
}

func TestNewSpriteRejectsNilTexture(t *testing.T) {
	e, _ := newTestEngine(t)

	_, err := e.NewSprite(Vec2{}, Vec2{X: 1, Y: 1}, nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("NewSprite(nil texture) error = %v, want *ValidationError", err)
	}
}

func TestNewSpriteRejectsDestroyedTexture(t *testing.T) {
	e, _ := newTestEngine(t)

	tex, err := e.LoadTexture("assets/sprite.png", false, false)
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	tex.Destroy()

	_, err = e.NewSprite(Vec2{}, Vec2{X: 1, Y: 1}, tex)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("NewSprite(destroyed texture) error = %v, want *ValidationError", err)
	}
}

func TestSpriteDrawFlushesStagedState(t *testing.T) {
	e, fake := newTestEngine(t)
	s := newTestSprite(t, e, Vec2{X: 10, Y: 20}, Vec2{X: 32, Y: 32})

	s.Transform.Position = Vec2{X: 50, Y: 60}
	s.Transform.Rotation = 1.5
	s.Layer = 3
	s.Color = Color{R: 255, G: 0, B: 0, A: 255}

	if got := len(fake.spriteDraws); got != 0 {
		t.Fatalf("mutations reached native before Draw, draws = %d", got)
	}

	s.Draw()
	if got := len(fake.spriteDraws); got != 1 {
		t.Fatalf("sprite draws = %d, want 1", got)
	}
	draw := fake.spriteDraws[0]
	if draw.transform.Position != (Vec2{X: 50, Y: 60}) {
		t.Errorf("flushed position = %v, want {50 60}", draw.transform.Position)
	}
	if draw.transform.Rotation != 1.5 {
		t.Errorf("flushed rotation = %v, want 1.5", draw.transform.Rotation)
	}
	if draw.layer != 3 {
		t.Errorf("flushed layer = %d, want 3", draw.layer)
	}
	if draw.tint != (Color{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("flushed tint = %v", draw.tint)
	}
}

func TestSpriteDefaultsWhiteColor(t *testing.T) {
	e, _ := newTestEngine(t)
	s := newTestSprite(t, e, Vec2{}, Vec2{X: 1, Y: 1})
	if s.Color != ColorWhite {
		t.Errorf("default Color = %v, want ColorWhite", s.Color)
	}
	if s.Layer != 0 {
		t.Errorf("default Layer = %d, want 0", s.Layer)
	}
}

func TestReferencingSpriteLeavesTextureAlive(t *testing.T) {
	e, fake := newTestEngine(t)

	tex, err := e.LoadTexture("assets/sprite.png", false, false)
	if err != nil {
		t.Fatalf("LoadTexture: %v", err)
	}
	s, err := e.NewSprite(Vec2{}, Vec2{X: 1, Y: 1}, tex)
	if err != nil {
		t.Fatalf("NewSprite: %v", err)
	}
	if s.Texture() != nil {
		t.Error("Texture() non-nil for referencing sprite")
	}

	s.Destroy()
	if got := len(fake.destroyedTextures); got != 0 {
		t.Errorf("referencing sprite destroyed the texture, destroys = %d", got)
	}
	if got := len(fake.destroyedSprites); got != 1 {
		t.Errorf("sprite destroys = %d, want 1", got)
	}
}

func TestContainedSpriteDestroysTexture(t *testing.T) {
	e, fake := newTestEngine(t)

	s, err := e.NewContainedSprite(Vec2{}, Vec2{X: 1, Y: 1}, TextureInfo{Path: "assets/sprite.png"})
	if err != nil {
		t.Fatalf("NewContainedSprite: %v", err)
	}
	if s.Texture() == nil {
		t.Fatal("Texture() nil for contained sprite")
	}

	s.Destroy()
	if got := len(fake.destroyedSprites); got != 1 {
		t.Errorf("sprite destroys = %d, want 1", got)
	}
	if got := len(fake.destroyedTextures); got != 1 {
		t.Errorf("texture destroys = %d, want 1", got)
	}

	s.Destroy()
	if got := len(fake.destroyedTextures); got != 1 {
		t.Errorf("second Destroy released the texture again, destroys = %d", got)
	}
}

func TestContainedSpriteFailureReleasesTexture(t *testing.T) {
	e, fake := newTestEngine(t)
	fake.failSprite = true

	_, err := e.NewContainedSprite(Vec2{}, Vec2{X: 1, Y: 1}, TextureInfo{Path: "assets/sprite.png"})
	var cerr *CreationError
	if !errors.As(err, &cerr) {
		t.Fatalf("error = %v, want *CreationError", err)
	}
	if got := len(fake.destroyedTextures); got != 1 {
		t.Errorf("loaded texture not released on sprite failure, destroys = %d", got)
	}
}

func TestSpriteDrawAfterDestroyIsNoOp(t *testing.T) {
	e, fake := newTestEngine(t)
	s := newTestSprite(t, e, Vec2{}, Vec2{X: 1, Y: 1})

	s.Destroy()
	s.Draw()
	if got := len(fake.spriteDraws); got != 0 {
		t.Errorf("draw after destroy submitted, draws = %d", got)
	}
}

func TestSpriteIntersects(t *testing.T) {
	e, _ := newTestEngine(t)

	a := newTestSprite(t, e, Vec2{X: 0, Y: 0}, Vec2{X: 2, Y: 2})
	b := newTestSprite(t, e, Vec2{X: 1, Y: 1}, Vec2{X: 2, Y: 2})
	c := newTestSprite(t, e, Vec2{X: 10, Y: 10}, Vec2{X: 2, Y: 2})
	edge := newTestSprite(t, e, Vec2{X: 2, Y: 0}, Vec2{X: 2, Y: 2})

	if !a.Intersects(b) || !b.Intersects(a) {
		t.Error("overlapping sprites reported as disjoint")
	}
	if a.Intersects(c) {
		t.Error("distant sprites reported as intersecting")
	}
	if !a.Intersects(edge) {
		t.Error("edge-touching sprites should intersect")
	}
}

func TestSpriteIntersectionDirection(t *testing.T) {
	e, _ := newTestEngine(t)

	sprite := func(x, y float64) *Sprite {
		return newTestSprite(t, e, Vec2{X: x, Y: y}, Vec2{X: 2, Y: 2})
	}

	tests := []struct {
		name string
		a, b *Sprite
		want Direction
	}{
		{"above", sprite(0, 0), sprite(0, 1), DirTop},
		{"below", sprite(0, 1), sprite(0, 0), DirBottom},
		{"left", sprite(0, 0), sprite(1, 0.25), DirLeft},
		{"right", sprite(1, 0.25), sprite(0, 0), DirRight},
		{"equal penetration prefers vertical", sprite(0, 0), sprite(1, 1), DirTop},
		{"disjoint", sprite(0, 0), sprite(10, 10), DirNone},
	}
	for _, tt := range tests {
		if got := tt.a.IntersectionDirection(tt.b); got != tt.want {
			t.Errorf("%s: IntersectionDirection = %v, want %v", tt.name, got, tt.want)
		}
	}
}
