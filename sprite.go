package cinder

// Sprite owns a native sprite handle bound to a texture. Transform, Layer,
// and Color are staged on the wrapper and flushed into the native handle only
// when Draw is called. Several field changes between draws cost one sync, and
// mutations are invisible to the renderer until the next Draw.
//
// A sprite either references a caller-owned Texture (Engine.NewSprite; the
// caller must keep that texture alive at least as long as the sprite) or
// contains a texture it loaded itself (Engine.NewContainedSprite; destroyed
// with the sprite). The variant is fixed at construction.
type Sprite struct {
	Transform Transform2D
	Layer     int // integer z-order among sprites, default 0
	Color     Color

	native Native
	owned  *Texture // non-nil only for contained sprites

	res resource
}

// NewSprite creates a sprite bound to a caller-owned texture. The sprite does
// not extend the texture's lifetime. Fails with a *CreationError if the
// native sprite handle comes back as the failure sentinel.
func (e *Engine) NewSprite(position, size Vec2, texture *Texture) (*Sprite, error) {
	if texture == nil || !texture.res.valid() {
		return nil, invalidInput("NewSprite", "nil or destroyed texture")
	}
	s := newSprite(e.native, position, size)
	h := e.native.CreateSprite(position, size, texture.handle())
	if err := s.res.acquire("Sprite", h, e.native.DestroySprite); err != nil {
		return nil, err
	}
	return s, nil
}

// NewContainedSprite creates a sprite that loads its own texture from the
// descriptor. The texture's lifetime is tied to the sprite: Destroy releases
// both. If sprite creation fails after the texture loaded, the texture is
// released before the error is returned.
func (e *Engine) NewContainedSprite(position, size Vec2, info TextureInfo) (*Sprite, error) {
	tex, err := e.LoadTextureInfo(info)
	if err != nil {
		return nil, err
	}
	s := newSprite(e.native, position, size)
	h := e.native.CreateSprite(position, size, tex.handle())
	if err := s.res.acquire("Sprite", h, e.native.DestroySprite); err != nil {
		tex.Destroy()
		return nil, err
	}
	s.owned = tex
	return s, nil
}

func newSprite(n Native, position, size Vec2) *Sprite {
	return &Sprite{
		Transform: Transform2D{Position: position, Size: size},
		Color:     ColorWhite,
		native:    n,
	}
}

// Texture returns the contained texture for sprites created with
// NewContainedSprite, or nil for referencing sprites.
func (s *Sprite) Texture() *Texture {
	return s.owned
}

// Draw flushes the staged Transform, Layer, and Color into the native handle
// and submits the sprite for drawing. Must be called inside the
// StartFrame/EndFrame bracket. A destroyed sprite draws nothing.
func (s *Sprite) Draw() {
	if !s.res.valid() {
		return
	}
	s.native.DrawSprite(s.res.handle, s.Transform, s.Layer, s.Color)
}

// Destroy releases the native sprite handle and, for contained sprites, the
// owned texture. A second Destroy is a no-op.
func (s *Sprite) Destroy() {
	s.res.release()
	if s.owned != nil {
		s.owned.Destroy()
		s.owned = nil
	}
}

// Intersects reports whether the sprites' current transform/size rectangles
// overlap (axis-aligned; rotation is ignored). Symmetric:
// a.Intersects(b) == b.Intersects(a). Rectangles sharing only an edge are
// considered intersecting.
func (s *Sprite) Intersects(other *Sprite) bool {
	return s.Transform.Bounds().Intersects(other.Transform.Bounds())
}

// IntersectionDirection reports which edge of other this sprite is
// overlapping from, for simple collision resolution ("landed on top of" vs.
// "hit from the left"). The axis with the smaller penetration distance
// determines the reported side; equal penetration on both axes resolves to
// the vertical axis. Returns DirNone when the sprites do not overlap.
func (s *Sprite) IntersectionDirection(other *Sprite) Direction {
	a := s.Transform.Bounds()
	b := other.Transform.Bounds()

	overlapX := min(a.X+a.Width, b.X+b.Width) - max(a.X, b.X)
	overlapY := min(a.Y+a.Height, b.Y+b.Height) - max(a.Y, b.Y)
	if overlapX < 0 || overlapY < 0 {
		return DirNone
	}

	if overlapY <= overlapX {
		// Vertical resolution: compare centers to pick the side.
		if a.Y+a.Height/2 < b.Y+b.Height/2 {
			return DirTop
		}
		return DirBottom
	}
	if a.X+a.Width/2 < b.X+b.Width/2 {
		return DirLeft
	}
	return DirRight
}
