package cinder

// Mesh owns native vertex/index storage. The wrapper tracks the vertex kind
// and the capacities it was created with; AddColoredData/AddTexturedData copy
// caller-owned slices into that storage without taking ownership of them.
//
// Mesh is move-only: use the *Mesh returned by Engine.NewMesh and never copy
// the struct.
type Mesh struct {
	native Native

	kind        VertexKind
	vertexCount int
	indexCount  int

	res resource
}

// NewMesh allocates native vertex/index storage sized for vertexCount and
// indexCount with the given per-vertex layout. Fails with a *CreationError
// if the native allocation fails.
func (e *Engine) NewMesh(kind VertexKind, vertexCount, indexCount int) (*Mesh, error) {
	m := &Mesh{native: e.native}
	if err := m.Create(kind, vertexCount, indexCount); err != nil {
		return nil, err
	}
	return m, nil
}

// Create allocates fresh native storage for the mesh. Calling Create on a
// mesh that already has storage is an explicit replace: the previous handle
// is destroyed before the new allocation is requested, so the two never
// coexist in native memory. Uploaded data does not carry over.
func (m *Mesh) Create(kind VertexKind, vertexCount, indexCount int) error {
	m.res.release()
	h := m.native.CreateMesh(kind, vertexCount, indexCount)
	if err := m.res.acquire("Mesh", h, m.native.DestroyMesh); err != nil {
		return err
	}
	m.kind = kind
	m.vertexCount = vertexCount
	m.indexCount = indexCount
	return nil
}

// Kind returns the vertex layout the mesh was created with.
func (m *Mesh) Kind() VertexKind {
	return m.kind
}

// AddColoredData copies colored vertex and index data into the mesh's native
// storage. The input slices remain caller-owned. Returns a *ValidationError
// if either slice is empty or the mesh was not created with VertexColored.
//
// The caller is responsible for the slice lengths not exceeding the
// capacities passed to Create; exceeding them is undefined in the native
// layer and is not re-validated here.
func (m *Mesh) AddColoredData(vertices []ColoredVertex, indices []uint16) error {
	if len(vertices) == 0 || len(indices) == 0 {
		return invalidInput("Mesh.AddColoredData", "empty vertex or index data")
	}
	if m.kind != VertexColored {
		return invalidInput("Mesh.AddColoredData", "mesh was created with textured vertices")
	}
	if !m.res.valid() {
		return invalidInput("Mesh.AddColoredData", "mesh has no storage; call Create first")
	}
	m.native.UploadColoredMesh(m.res.handle, vertices, indices)
	return nil
}

// AddTexturedData copies textured vertex and index data into the mesh's
// native storage. Same contract as AddColoredData, for VertexTextured meshes.
func (m *Mesh) AddTexturedData(vertices []TexturedVertex, indices []uint16) error {
	if len(vertices) == 0 || len(indices) == 0 {
		return invalidInput("Mesh.AddTexturedData", "empty vertex or index data")
	}
	if m.kind != VertexTextured {
		return invalidInput("Mesh.AddTexturedData", "mesh was created with colored vertices")
	}
	if !m.res.valid() {
		return invalidInput("Mesh.AddTexturedData", "mesh has no storage; call Create first")
	}
	m.native.UploadTexturedMesh(m.res.handle, vertices, indices)
	return nil
}

// Draw submits the mesh to the current frame. Must be called inside the
// StartFrame/EndFrame bracket. A destroyed mesh draws nothing.
func (m *Mesh) Draw() {
	if !m.res.valid() {
		return
	}
	m.native.DrawMesh(m.res.handle)
}

// Destroy releases the native storage. The mesh can be reused after a
// subsequent Create. A second Destroy is a no-op.
func (m *Mesh) Destroy() {
	m.res.release()
}

// appendQuad appends the four vertices and six indices of an axis-aligned
// textured quad. base is the index of the quad's first vertex in the buffer
// being built. Vertex order: top-left, top-right, bottom-left, bottom-right.
func appendQuad(vertices []TexturedVertex, indices []uint16, base uint16, x0, y0, x1, y1 float32, uv UVRect, tint Color) ([]TexturedVertex, []uint16) {
	vertices = append(vertices,
		TexturedVertex{U: uv.U0, V: uv.V0, Color: tint, X: x0, Y: y0},
		TexturedVertex{U: uv.U1, V: uv.V0, Color: tint, X: x1, Y: y0},
		TexturedVertex{U: uv.U0, V: uv.V1, Color: tint, X: x0, Y: y1},
		TexturedVertex{U: uv.U1, V: uv.V1, Color: tint, X: x1, Y: y1},
	)
	indices = append(indices,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
	return vertices, indices
}

// QuadVertices returns the four textured vertices and six indices for an
// axis-aligned quad covering r with the given UV rect and tint, ready for
// Mesh.AddTexturedData.
func QuadVertices(r Rect, uv UVRect, tint Color) ([]TexturedVertex, []uint16) {
	return appendQuad(nil, nil, 0,
		float32(r.X), float32(r.Y),
		float32(r.X+r.Width), float32(r.Y+r.Height),
		uv, tint)
}
