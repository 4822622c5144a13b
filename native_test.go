package cinder

// fakeNative is an in-memory Native used by the package tests. Factory
// failures are switchable per resource kind; every boundary call is recorded
// so tests can assert on what the wrappers handed across.
type fakeNative struct {
	nextHandle Handle

	failEngine   bool
	failGraphics bool
	failMesh     bool
	failTexture  bool
	failSprite   bool
	failTilemap  bool

	exited             bool
	terminates         int
	graphicsTerminates int

	startFrames int
	endFrames   int
	lastVsync   bool
	clearColor  Color
	clears      int
	set2Ds      int

	camera       CameraState
	cameraSets   int
	cameraUnsets int
	dialog       bool

	uploadedColored  map[Handle][]ColoredVertex
	uploadedTextured map[Handle][]TexturedVertex
	uploadedIndices  map[Handle][]uint16
	drawnMeshes      []Handle
	destroyedMeshes  []Handle
	meshOps          []string // boundary call order: "create" / "destroy"

	bound             Handle
	unbinds           int
	destroyedTextures []Handle

	spriteDraws      []fakeSpriteDraw
	destroyedSprites []Handle

	builtVertices     map[Handle][]TexturedVertex
	builtIndices      map[Handle][]uint16
	drawnTilemaps     []Handle
	destroyedTilemaps []Handle

	buttons Button
}

type fakeSpriteDraw struct {
	handle    Handle
	transform Transform2D
	layer     int
	tint      Color
}

func newFakeNative() *fakeNative {
	return &fakeNative{
		uploadedColored:  make(map[Handle][]ColoredVertex),
		uploadedTextured: make(map[Handle][]TexturedVertex),
		uploadedIndices:  make(map[Handle][]uint16),
		builtVertices:    make(map[Handle][]TexturedVertex),
		builtIndices:     make(map[Handle][]uint16),
	}
}

func (f *fakeNative) allocHandle() Handle {
	f.nextHandle++
	return f.nextHandle
}

func (f *fakeNative) Init() bool { return !f.failEngine }
func (f *fakeNative) Running() bool { return !f.exited }
func (f *fakeNative) Terminate() { f.terminates++ }
func (f *fakeNative) RequestExit() { f.exited = true }
func (f *fakeNative) GraphicsInit() bool { return !f.failGraphics }
func (f *fakeNative) GraphicsTerminate() { f.graphicsTerminates++ }
func (f *fakeNative) StartFrame() { f.startFrames++ }
func (f *fakeNative) EndFrame(vsync bool) { f.endFrames++; f.lastVsync = vsync }
func (f *fakeNative) SetClearColor(c Color) {
	f.clearColor = c
}
func (f *fakeNative) Clear() { f.clears++ }
func (f *fakeNative) Set2D() { f.set2Ds++ }
func (f *fakeNative) SetCamera(cam CameraState) {
	f.camera = cam
	f.cameraSets++
}
func (f *fakeNative) UnsetCamera() { f.cameraUnsets++ }
func (f *fakeNative) SetDialogMode(on bool) { f.dialog = on }

func (f *fakeNative) CreateMesh(kind VertexKind, vertexCount, indexCount int) Handle {
	f.meshOps = append(f.meshOps, "create")
	if f.failMesh || vertexCount <= 0 || indexCount <= 0 {
		return NilHandle
	}
	return f.allocHandle()
}

func (f *fakeNative) UploadColoredMesh(h Handle, vertices []ColoredVertex, indices []uint16) {
	f.uploadedColored[h] = append([]ColoredVertex(nil), vertices...)
	f.uploadedIndices[h] = append([]uint16(nil), indices...)
}

func (f *fakeNative) UploadTexturedMesh(h Handle, vertices []TexturedVertex, indices []uint16) {
	f.uploadedTextured[h] = append([]TexturedVertex(nil), vertices...)
	f.uploadedIndices[h] = append([]uint16(nil), indices...)
}

func (f *fakeNative) DrawMesh(h Handle) { f.drawnMeshes = append(f.drawnMeshes, h) }
func (f *fakeNative) DestroyMesh(h Handle) {
	f.meshOps = append(f.meshOps, "destroy")
	f.destroyedMeshes = append(f.destroyedMeshes, h)
}

func (f *fakeNative) LoadTexture(path string, flip, vram bool) Handle {
	if f.failTexture {
		return NilHandle
	}
	return f.allocHandle()
}

func (f *fakeNative) LoadTextureInfo(info TextureInfo) Handle {
	return f.LoadTexture(info.Path, info.Flip, info.VRAM)
}

func (f *fakeNative) BindTexture(h Handle) { f.bound = h }
func (f *fakeNative) UnbindTexture() { f.bound = NilHandle; f.unbinds++ }
func (f *fakeNative) DestroyTexture(h Handle) {
	f.destroyedTextures = append(f.destroyedTextures, h)
}

func (f *fakeNative) CreateSprite(position, size Vec2, texture Handle) Handle {
	if f.failSprite || texture == NilHandle {
		return NilHandle
	}
	return f.allocHandle()
}

func (f *fakeNative) DrawSprite(h Handle, t Transform2D, layer int, tint Color) {
	f.spriteDraws = append(f.spriteDraws, fakeSpriteDraw{handle: h, transform: t, layer: layer, tint: tint})
}

func (f *fakeNative) DestroySprite(h Handle) {
	f.destroyedSprites = append(f.destroyedSprites, h)
}

func (f *fakeNative) CreateTilemap(texture Handle, capacity int) Handle {
	if f.failTilemap || texture == NilHandle {
		return NilHandle
	}
	return f.allocHandle()
}

func (f *fakeNative) BuildTilemap(h Handle, vertices []TexturedVertex, indices []uint16) {
	f.builtVertices[h] = append([]TexturedVertex(nil), vertices...)
	f.builtIndices[h] = append([]uint16(nil), indices...)
}

func (f *fakeNative) DrawTilemap(h Handle) { f.drawnTilemaps = append(f.drawnTilemaps, h) }
func (f *fakeNative) DestroyTilemap(h Handle) {
	f.destroyedTilemaps = append(f.destroyedTilemaps, h)
}

func (f *fakeNative) PollButtons() Button { return f.buttons }

// newTestEngine initializes an Engine over a fresh fakeNative.
func newTestEngine(t interface{ Fatalf(string, ...any) }) (*Engine, *fakeNative) {
	f := newFakeNative()
	e, err := Init(f)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return e, f
}
