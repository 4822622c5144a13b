package cinder

import (
	"errors"
	"testing"
)

func containsHandle(handles []Handle, h Handle) bool {
	for _, v := range handles {
		if v == h {
			return true
		}
	}
	return false
}

func TestNewMeshCreationFailure(t *testing.T) {
	e, fake := newTestEngine(t)
	fake.failMesh = true

	_, err := e.NewMesh(VertexColored, 4, 6)
	var cerr *CreationError
	if !errors.As(err, &cerr) {
		t.Fatalf("NewMesh error = %v, want *CreationError", err)
	}
	if cerr.Resource != "Mesh" {
		t.Errorf("Resource = %q, want %q", cerr.Resource, "Mesh")
	}
}

func TestMeshAddColoredData(t *testing.T) {
	e, fake := newTestEngine(t)

	m, err := e.NewMesh(VertexColored, 4, 6)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	verts := []ColoredVertex{
		{Color: ColorWhite, X: 0, Y: 0},
		{Color: ColorWhite, X: 1, Y: 0},
		{Color: ColorWhite, X: 0, Y: 1},
		{Color: ColorWhite, X: 1, Y: 1},
	}
	idx := []uint16{0, 1, 2, 1, 3, 2}
	if err := m.AddColoredData(verts, idx); err != nil {
		t.Fatalf("AddColoredData: %v", err)
	}

	h := m.res.handle
	if got := len(fake.uploadedColored[h]); got != 4 {
		t.Errorf("uploaded vertices = %d, want 4", got)
	}
	if got := len(fake.uploadedIndices[h]); got != 6 {
		t.Errorf("uploaded indices = %d, want 6", got)
	}
}

func TestMeshAddDataEmptyInput(t *testing.T) {
	e, _ := newTestEngine(t)

	m, err := e.NewMesh(VertexColored, 4, 6)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	err = m.AddColoredData(nil, nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("AddColoredData(nil, nil) error = %v, want *ValidationError", err)
	}
}

func TestMeshAddDataKindMismatch(t *testing.T) {
	e, _ := newTestEngine(t)

	m, err := e.NewMesh(VertexColored, 4, 6)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	verts := []TexturedVertex{{Color: ColorWhite}}
	err = m.AddTexturedData(verts, []uint16{0})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("textured data on colored mesh error = %v, want *ValidationError", err)
	}
}

func TestMeshCreateReplacesExistingHandle(t *testing.T) {
	e, fake := newTestEngine(t)

	m, err := e.NewMesh(VertexColored, 4, 6)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	first := m.res.handle

	if err := m.Create(VertexColored, 8, 12); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.res.handle == first {
		t.Error("Create did not allocate a new handle")
	}
	if !containsHandle(fake.destroyedMeshes, first) {
		t.Error("previous mesh handle was not destroyed")
	}

	// The previous handle must be gone before the replacement is allocated.
	want := []string{"create", "destroy", "create"}
	if len(fake.meshOps) != len(want) {
		t.Fatalf("mesh boundary ops = %v, want %v", fake.meshOps, want)
	}
	for i, op := range want {
		if fake.meshOps[i] != op {
			t.Fatalf("mesh boundary ops = %v, want %v", fake.meshOps, want)
		}
	}
}

func TestMeshDrawAndDestroy(t *testing.T) {
	e, fake := newTestEngine(t)

	m, err := e.NewMesh(VertexColored, 4, 6)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	h := m.res.handle

	m.Draw()
	if got := len(fake.drawnMeshes); got != 1 {
		t.Fatalf("drawn meshes = %d, want 1", got)
	}

	m.Destroy()
	if !containsHandle(fake.destroyedMeshes, h) {
		t.Error("mesh handle was not destroyed")
	}

	m.Draw()
	if got := len(fake.drawnMeshes); got != 1 {
		t.Errorf("draw after destroy submitted a command, drawn = %d", got)
	}
}

func TestQuadVertices(t *testing.T) {
	verts, idx := QuadVertices(Rect{X: 2, Y: 3, Width: 4, Height: 5}, UVRect{U1: 1, V1: 1}, ColorWhite)
	if len(verts) != 4 || len(idx) != 6 {
		t.Fatalf("QuadVertices = %d verts, %d indices, want 4 and 6", len(verts), len(idx))
	}
	if verts[0].X != 2 || verts[0].Y != 3 {
		t.Errorf("top-left = (%v, %v), want (2, 3)", verts[0].X, verts[0].Y)
	}
	if verts[3].X != 6 || verts[3].Y != 8 {
		t.Errorf("bottom-right = (%v, %v), want (6, 8)", verts[3].X, verts[3].Y)
	}
	want := []uint16{0, 1, 2, 1, 3, 2}
	for i, w := range want {
		if idx[i] != w {
			t.Fatalf("indices = %v, want %v", idx, want)
		}
	}
}

func TestVertexKindStride(t *testing.T) {
	if got := VertexColored.Stride(); got != 16 {
		t.Errorf("VertexColored.Stride() = %d, want 16", got)
	}
	if got := VertexTextured.Stride(); got != 24 {
		t.Errorf("VertexTextured.Stride() = %d, want 24", got)
	}
}
