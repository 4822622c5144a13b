package cinder

// TextureAtlas describes the grid subdivision of a texture into Columns x
// Rows equal-sized cells covering the full UV space. Pure value type; it owns
// nothing and can be copied freely.
//
// Cells are addressed by a zero-based row-major index: left to right, then
// top to bottom.
type TextureAtlas struct {
	Columns int
	Rows    int
}

// Cells returns the number of addressable cells in the atlas.
func (a TextureAtlas) Cells() int {
	return a.Columns * a.Rows
}

// UVRect is the normalized texture-coordinate rectangle of one atlas cell:
// (U0, V0) top-left, (U1, V1) bottom-right, all in [0, 1].
type UVRect struct {
	U0, V0, U1, V1 float32
}

// IndexUV computes the UV rectangle for the atlas cell at the given row-major
// index:
//
//	col = index mod Columns        row = index div Columns
//	u0  = col / Columns            v0  = row / Rows
//	u1  = u0 + 1/Columns           v1  = v0 + 1/Rows
//
// Returns a *ValidationError for an index outside [0, Cells()) or a
// degenerate grid; indexes are never silently wrapped.
func (a TextureAtlas) IndexUV(index int) (UVRect, error) {
	if a.Columns < 1 || a.Rows < 1 {
		return UVRect{}, invalidInput("TextureAtlas.IndexUV", "atlas grid must be at least 1x1")
	}
	if index < 0 || index >= a.Cells() {
		return UVRect{}, invalidInput("TextureAtlas.IndexUV", "atlas index out of range")
	}

	col := index % a.Columns
	row := index / a.Columns

	u0 := float32(col) / float32(a.Columns)
	v0 := float32(row) / float32(a.Rows)

	return UVRect{
		U0: u0,
		V0: v0,
		U1: u0 + 1/float32(a.Columns),
		V1: v0 + 1/float32(a.Rows),
	}, nil
}
