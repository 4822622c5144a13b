package cinder

// MaxTilesPerBuild is the maximum number of tiles a single batch can hold.
// Limited by the uint16 index buffer: 65535 / 4 vertices per tile.
const MaxTilesPerBuild = 16383

// Tile places one atlas cell at a position in the tilemap's coordinate
// space. Immutable once added.
type Tile struct {
	Index    int  // zero-based row-major atlas index
	Position Vec2 // top-left corner of the tile quad
}

// Tilemap accumulates tiles and builds them into one batched renderable
// submission: a single quad batch instead of one draw per tile.
//
// Tiles added after a Build do not appear until the next Build, which always
// regenerates the batch from the entire tile list. Move-only: use the
// *Tilemap returned by Engine.NewTilemap and never copy the struct.
type Tilemap struct {
	// TileSize is the world-space size of one tile quad. Defaults to the
	// unit square; set it before Build.
	TileSize Vec2

	native  Native
	atlas   TextureAtlas
	texture *Texture
	tiles   []Tile
	built   bool

	res resource
}

// NewTilemap allocates a native tilemap sized for size.X by size.Y tiles,
// sourcing cells from the given atlas subdivision of texture. The texture is
// referenced, not owned; keep it alive as long as the tilemap. Fails with a
// *CreationError on native failure.
func (e *Engine) NewTilemap(atlas TextureAtlas, texture *Texture, size Vec2) (*Tilemap, error) {
	if atlas.Columns < 1 || atlas.Rows < 1 {
		return nil, invalidInput("NewTilemap", "atlas grid must be at least 1x1")
	}
	if texture == nil || !texture.res.valid() {
		return nil, invalidInput("NewTilemap", "nil or destroyed texture")
	}
	if size.X < 1 || size.Y < 1 {
		return nil, invalidInput("NewTilemap", "size must be at least 1x1 tiles")
	}

	capacity := int(size.X) * int(size.Y)
	tm := &Tilemap{
		TileSize: Vec2{X: 1, Y: 1},
		native:   e.native,
		atlas:    atlas,
		texture:  texture,
		tiles:    make([]Tile, 0, capacity),
	}
	h := e.native.CreateTilemap(texture.handle(), capacity)
	if err := tm.res.acquire("Tilemap", h, e.native.DestroyTilemap); err != nil {
		return nil, err
	}
	return tm, nil
}

// AddTile appends a tile to the pending tile list. O(1) amortized; an
// already-built batch is unaffected until the next Build. Returns a
// *ValidationError if the tile's atlas index is out of range.
func (tm *Tilemap) AddTile(tile Tile) error {
	if tile.Index < 0 || tile.Index >= tm.atlas.Cells() {
		return invalidInput("Tilemap.AddTile", "atlas index out of range")
	}
	tm.tiles = append(tm.tiles, tile)
	return nil
}

// Len returns the number of tiles in the pending tile list.
func (tm *Tilemap) Len() int {
	return len(tm.tiles)
}

// Build regenerates the batched geometry from the entire current tile list
// (four vertices and six indices per tile, UVs computed from the atlas grid)
// and hands it to the native layer as one submission. Calling Build again
// after further AddTile calls rebuilds the whole batch, not a delta.
func (tm *Tilemap) Build() error {
	if !tm.res.valid() {
		return invalidInput("Tilemap.Build", "tilemap is destroyed")
	}
	if len(tm.tiles) > MaxTilesPerBuild {
		return invalidInput("Tilemap.Build", "tile count exceeds batch index capacity")
	}

	vertices, indices := tm.buildGeometry()
	tm.native.BuildTilemap(tm.res.handle, vertices, indices)
	tm.built = true
	return nil
}

// buildGeometry produces the quad batch for the current tile list.
// Vertex order per tile: top-left, top-right, bottom-left, bottom-right;
// index pattern 0,1,2 / 1,3,2.
func (tm *Tilemap) buildGeometry() ([]TexturedVertex, []uint16) {
	vertices := make([]TexturedVertex, 0, len(tm.tiles)*4)
	indices := make([]uint16, 0, len(tm.tiles)*6)

	tw := float32(tm.TileSize.X)
	th := float32(tm.TileSize.Y)

	for i, tile := range tm.tiles {
		// Index validated in AddTile; the atlas is a value and cannot shrink.
		uv, _ := tm.atlas.IndexUV(tile.Index)

		x0 := float32(tile.Position.X)
		y0 := float32(tile.Position.Y)
		vertices, indices = appendQuad(vertices, indices, uint16(i*4),
			x0, y0, x0+tw, y0+th, uv, ColorWhite)
	}
	return vertices, indices
}

// Draw submits the batched tilemap to the current frame. Valid only after a
// successful Build; drawing an unbuilt or destroyed tilemap is a no-op with
// a warning log.
func (tm *Tilemap) Draw() {
	if !tm.res.valid() {
		return
	}
	if !tm.built {
		logger.Warn("Tilemap.Draw before Build; skipping")
		return
	}
	tm.native.DrawTilemap(tm.res.handle)
}

// Destroy releases the native tilemap handle; subsequent Draw calls become
// no-ops. The referenced texture is untouched. A second Destroy is a no-op.
func (tm *Tilemap) Destroy() {
	tm.res.release()
}
