package cinder

// Handle is an opaque value identifying a resource inside the native engine.
// It is never inspected by the wrappers, only passed back to the matching
// native destroy/draw/bind call.
type Handle uint64

// NilHandle is the failure sentinel returned by native factory calls. A
// wrapper holding NilHandle owns nothing.
const NilHandle Handle = 0

// CameraState is the snapshot of a tracked camera handed to the native layer.
type CameraState struct {
	Position Vec2
	Rotation float64
	Zoom     float64
}

// TextureInfo describes a texture load: the source path plus decode and
// placement flags. It is the structured alternative to the positional
// LoadTexture arguments and is what contained sprites load from.
type TextureInfo struct {
	Path string
	Flip bool // flip vertically on load
	VRAM bool // prefer device-local memory
}

// Native is the boundary to the underlying rendering engine. Factory methods
// return NilHandle on failure; the wrappers turn that into a *CreationError.
// Everything else is assumed infallible at this layer: a native-side failure
// in a draw or bind is invisible to the core.
//
// All calls are synchronous and single-threaded. Draw calls are only valid
// between StartFrame and EndFrame.
type Native interface {
	// Engine lifecycle.
	Init() bool
	Running() bool
	Terminate()
	RequestExit()

	// Graphics lifecycle and frame control.
	GraphicsInit() bool
	GraphicsTerminate()
	StartFrame()
	EndFrame(vsync bool)
	SetClearColor(c Color)
	Clear()
	Set2D()
	SetCamera(cam CameraState)
	UnsetCamera()
	SetDialogMode(on bool)

	// Meshes. Upload copies the caller's data into the storage allocated by
	// CreateMesh; counts exceeding the created capacity are undefined.
	CreateMesh(kind VertexKind, vertexCount, indexCount int) Handle
	UploadColoredMesh(h Handle, vertices []ColoredVertex, indices []uint16)
	UploadTexturedMesh(h Handle, vertices []TexturedVertex, indices []uint16)
	DrawMesh(h Handle)
	DestroyMesh(h Handle)

	// Textures. Bind makes a texture the active sampling source for
	// subsequent draws; the most recent bind wins until Unbind.
	LoadTexture(path string, flip, vram bool) Handle
	LoadTextureInfo(info TextureInfo) Handle
	BindTexture(h Handle)
	UnbindTexture()
	DestroyTexture(h Handle)

	// Sprites. DrawSprite receives the wrapper's staged transform, layer,
	// and tint in one flush.
	CreateSprite(position, size Vec2, texture Handle) Handle
	DrawSprite(h Handle, t Transform2D, layer int, tint Color)
	DestroySprite(h Handle)

	// Tilemaps. BuildTilemap replaces the batched geometry wholesale.
	CreateTilemap(texture Handle, capacity int) Handle
	BuildTilemap(h Handle, vertices []TexturedVertex, indices []uint16)
	DrawTilemap(h Handle)
	DestroyTilemap(h Handle)

	// Input. PollButtons returns the raw button state for this instant.
	PollButtons() Button
}
