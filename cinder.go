package cinder

// Vec2 is a 2D vector used for positions, sizes, offsets, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Color is an RGBA color with 8-bit components. The in-memory layout matches
// the packed vertex color consumed by the native layer, so a Color can be
// written into a vertex without conversion.
type Color struct {
	R, G, B, A uint8
}

// ColorWhite is the default sprite tint (no color modification).
var ColorWhite = Color{255, 255, 255, 255}

// Packed returns the color as a single RGBA-packed word (R in the low byte).
func (c Color) Packed() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// UnpackColor builds a Color from an RGBA-packed word (R in the low byte).
func UnpackColor(v uint32) Color {
	return Color{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
		A: uint8(v >> 24),
	}
}

// Transform2D is the staged sprite transform: position, rotation (radians,
// clockwise), and size. Mutations are buffered on the wrapper and flushed to
// the native handle only when Draw is called.
type Transform2D struct {
	Position Vec2
	Rotation float64
	Size     Vec2
}

// Bounds returns the axis-aligned rectangle covered by the transform,
// ignoring rotation. Position is the rectangle's top-left corner.
func (t Transform2D) Bounds() Rect {
	return Rect{X: t.Position.X, Y: t.Position.Y, Width: t.Size.X, Height: t.Size.Y}
}

// Direction identifies which edge of another sprite a sprite is overlapping
// from, for simple collision resolution.
type Direction uint8

const (
	DirNone   Direction = iota // no overlap
	DirTop                     // overlapping the other sprite's top edge
	DirBottom                  // overlapping the other sprite's bottom edge
	DirLeft                    // overlapping the other sprite's left edge
	DirRight                   // overlapping the other sprite's right edge
)

// String returns the direction name for logs and test failures.
func (d Direction) String() string {
	switch d {
	case DirTop:
		return "top"
	case DirBottom:
		return "bottom"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// VertexKind selects the per-vertex layout of a mesh.
type VertexKind uint8

const (
	VertexColored  VertexKind = iota // position + packed color
	VertexTextured                   // position + UV + packed color
)

// Stride returns the per-vertex size in bytes for this kind.
func (k VertexKind) Stride() int {
	if k == VertexTextured {
		return texturedVertexSize
	}
	return coloredVertexSize
}

const (
	coloredVertexSize  = 16 // Color(4) + X,Y,Z(12)
	texturedVertexSize = 24 // U,V(8) + Color(4) + X,Y,Z(12)
)

// ColoredVertex is an untextured mesh vertex.
type ColoredVertex struct {
	Color   Color
	X, Y, Z float32
}

// TexturedVertex is a textured mesh vertex. UVs are normalized [0, 1]
// coordinates into the currently bound texture.
type TexturedVertex struct {
	U, V    float32
	Color   Color
	X, Y, Z float32
}
