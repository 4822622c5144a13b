package cinder

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// EbitenNative is the Native implementation backed by Ebitengine. Textures
// are ebiten images, sprites are drawn with DrawImage, and mesh/tilemap
// batches go through DrawTriangles.
//
// Draw submissions made inside the frame bracket are queued as commands and
// rendered when the game loop calls Draw with the screen image (see Run).
// Sprite commands are ordered by layer (stable within a layer); mesh and
// tilemap commands draw at layer 0.
type EbitenNative struct {
	nextHandle Handle

	textures map[Handle]*ebitenTexture
	meshes   map[Handle]*ebitenMesh
	sprites  map[Handle]*ebitenSprite
	tilemaps map[Handle]*ebitenTilemap

	bound      Handle // active sampling source for mesh draws
	camera     CameraState
	cameraSet  bool
	dialog     bool
	clearColor Color
	exited     bool

	commands []drawCommand
	sortBuf  []drawCommand

	keymap map[Button]ebiten.Key

	// ScreenshotDir is where queued screenshots are written as PNG files.
	ScreenshotDir   string
	screenshotQueue []string
}

type ebitenTexture struct {
	img  *ebiten.Image
	vram bool
}

type ebitenMesh struct {
	kind     VertexKind
	colored  []ColoredVertex
	textured []TexturedVertex
	indices  []uint16
}

type ebitenSprite struct {
	texture   Handle
	transform Transform2D
	layer     int
	tint      Color
}

type ebitenTilemap struct {
	texture  Handle
	vertices []ebiten.Vertex
	indices  []uint16
}

type drawKind uint8

const (
	drawSprite drawKind = iota
	drawMesh
	drawTilemap
)

type drawCommand struct {
	kind   drawKind
	layer  int
	order  int // submission order, for stable sort within a layer
	handle Handle
	bound  Handle // texture bound at submission time (mesh draws)
}

// NewEbitenNative creates the ebiten backend with the default keyboard
// bindings. Rebind buttons with SetKeyBinding before the game loop starts.
func NewEbitenNative() *EbitenNative {
	return &EbitenNative{
		textures: make(map[Handle]*ebitenTexture),
		meshes:   make(map[Handle]*ebitenMesh),
		sprites:  make(map[Handle]*ebitenSprite),
		tilemaps: make(map[Handle]*ebitenTilemap),
		keymap: map[Button]ebiten.Key{
			ButtonUp:       ebiten.KeyArrowUp,
			ButtonDown:     ebiten.KeyArrowDown,
			ButtonLeft:     ebiten.KeyArrowLeft,
			ButtonRight:    ebiten.KeyArrowRight,
			ButtonCross:    ebiten.KeyZ,
			ButtonCircle:   ebiten.KeyX,
			ButtonSquare:   ebiten.KeyA,
			ButtonTriangle: ebiten.KeyS,
			ButtonLTrigger: ebiten.KeyQ,
			ButtonRTrigger: ebiten.KeyW,
			ButtonStart:    ebiten.KeyEnter,
			ButtonSelect:   ebiten.KeyBackspace,
		},
	}
}

// SetKeyBinding maps a controller button mask to a keyboard key.
func (n *EbitenNative) SetKeyBinding(b Button, k ebiten.Key) {
	n.keymap[b] = k
}

func (n *EbitenNative) allocHandle() Handle {
	n.nextHandle++
	return n.nextHandle
}

// --- Engine lifecycle ---

func (n *EbitenNative) Init() bool { return true }

func (n *EbitenNative) Running() bool { return !n.exited }

func (n *EbitenNative) Terminate() {
	n.textures = make(map[Handle]*ebitenTexture)
	n.meshes = make(map[Handle]*ebitenMesh)
	n.sprites = make(map[Handle]*ebitenSprite)
	n.tilemaps = make(map[Handle]*ebitenTilemap)
	n.commands = n.commands[:0]
}

func (n *EbitenNative) RequestExit() { n.exited = true }

// --- Graphics lifecycle and frame control ---

func (n *EbitenNative) GraphicsInit() bool { return true }

func (n *EbitenNative) GraphicsTerminate() {}

func (n *EbitenNative) StartFrame() {
	n.commands = n.commands[:0]
}

func (n *EbitenNative) EndFrame(vsync bool) {
	ebiten.SetVsyncEnabled(vsync)
}

func (n *EbitenNative) SetClearColor(c Color) {
	n.clearColor = c
}

// Clear discards everything submitted so far this frame; the screen fill
// happens in Draw.
func (n *EbitenNative) Clear() {
	n.commands = n.commands[:0]
}

// Set2D is a no-op: ebiten renders in 2D mode unconditionally.
func (n *EbitenNative) Set2D() {}

func (n *EbitenNative) SetCamera(cam CameraState) {
	n.camera = cam
	n.cameraSet = true
}

func (n *EbitenNative) UnsetCamera() {
	n.cameraSet = false
}

func (n *EbitenNative) SetDialogMode(on bool) {
	n.dialog = on
}

// --- Meshes ---

func (n *EbitenNative) CreateMesh(kind VertexKind, vertexCount, indexCount int) Handle {
	if vertexCount <= 0 || indexCount <= 0 {
		return NilHandle
	}
	h := n.allocHandle()
	n.meshes[h] = &ebitenMesh{kind: kind}
	return h
}

func (n *EbitenNative) UploadColoredMesh(h Handle, vertices []ColoredVertex, indices []uint16) {
	m, ok := n.meshes[h]
	if !ok {
		return
	}
	m.colored = append(m.colored[:0], vertices...)
	m.indices = append(m.indices[:0], indices...)
}

func (n *EbitenNative) UploadTexturedMesh(h Handle, vertices []TexturedVertex, indices []uint16) {
	m, ok := n.meshes[h]
	if !ok {
		return
	}
	m.textured = append(m.textured[:0], vertices...)
	m.indices = append(m.indices[:0], indices...)
}

func (n *EbitenNative) DrawMesh(h Handle) {
	if _, ok := n.meshes[h]; !ok {
		return
	}
	n.commands = append(n.commands, drawCommand{
		kind:   drawMesh,
		order:  len(n.commands),
		handle: h,
		bound:  n.bound,
	})
}

func (n *EbitenNative) DestroyMesh(h Handle) {
	delete(n.meshes, h)
}

// --- Textures ---

func (n *EbitenNative) LoadTexture(path string, flip, vram bool) Handle {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		logger.Warn("texture load failed", "path", path, "err", err)
		return NilHandle
	}
	if flip {
		img = flipVertical(img)
	}
	h := n.allocHandle()
	n.textures[h] = &ebitenTexture{img: img, vram: vram}
	return h
}

func (n *EbitenNative) LoadTextureInfo(info TextureInfo) Handle {
	return n.LoadTexture(info.Path, info.Flip, info.VRAM)
}

// flipVertical redraws the image mirrored across its horizontal midline.
func flipVertical(src *ebiten.Image) *ebiten.Image {
	b := src.Bounds()
	dst := ebiten.NewImage(b.Dx(), b.Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, -1)
	op.GeoM.Translate(0, float64(b.Dy()))
	dst.DrawImage(src, op)
	return dst
}

func (n *EbitenNative) BindTexture(h Handle) {
	n.bound = h
}

func (n *EbitenNative) UnbindTexture() {
	n.bound = NilHandle
}

func (n *EbitenNative) DestroyTexture(h Handle) {
	if n.bound == h {
		n.bound = NilHandle
	}
	delete(n.textures, h)
}

// --- Sprites ---

func (n *EbitenNative) CreateSprite(position, size Vec2, texture Handle) Handle {
	if _, ok := n.textures[texture]; !ok {
		return NilHandle
	}
	h := n.allocHandle()
	n.sprites[h] = &ebitenSprite{
		texture:   texture,
		transform: Transform2D{Position: position, Size: size},
		tint:      ColorWhite,
	}
	return h
}

func (n *EbitenNative) DrawSprite(h Handle, t Transform2D, layer int, tint Color) {
	s, ok := n.sprites[h]
	if !ok {
		return
	}
	s.transform = t
	s.layer = layer
	s.tint = tint
	n.commands = append(n.commands, drawCommand{
		kind:   drawSprite,
		layer:  layer,
		order:  len(n.commands),
		handle: h,
	})
}

func (n *EbitenNative) DestroySprite(h Handle) {
	delete(n.sprites, h)
}

// --- Tilemaps ---

func (n *EbitenNative) CreateTilemap(texture Handle, capacity int) Handle {
	if _, ok := n.textures[texture]; !ok {
		return NilHandle
	}
	if capacity <= 0 {
		return NilHandle
	}
	h := n.allocHandle()
	n.tilemaps[h] = &ebitenTilemap{texture: texture}
	return h
}

// BuildTilemap converts the batch's normalized UVs into the pixel source
// coordinates DrawTriangles expects and stores the result wholesale.
func (n *EbitenNative) BuildTilemap(h Handle, vertices []TexturedVertex, indices []uint16) {
	tm, ok := n.tilemaps[h]
	if !ok {
		return
	}
	tex, ok := n.textures[tm.texture]
	if !ok {
		return
	}
	b := tex.img.Bounds()
	w := float32(b.Dx())
	ht := float32(b.Dy())

	tm.vertices = tm.vertices[:0]
	for _, v := range vertices {
		tm.vertices = append(tm.vertices, ebitenVertex(v, w, ht))
	}
	tm.indices = append(tm.indices[:0], indices...)
}

func (n *EbitenNative) DrawTilemap(h Handle) {
	if _, ok := n.tilemaps[h]; !ok {
		return
	}
	n.commands = append(n.commands, drawCommand{
		kind:   drawTilemap,
		order:  len(n.commands),
		handle: h,
	})
}

func (n *EbitenNative) DestroyTilemap(h Handle) {
	delete(n.tilemaps, h)
}

// ebitenVertex converts a textured vertex to ebiten's layout, mapping
// normalized UVs to pixel source coordinates and premultiplying the color.
func ebitenVertex(v TexturedVertex, texW, texH float32) ebiten.Vertex {
	a := float32(v.Color.A) / 255
	return ebiten.Vertex{
		DstX:   v.X,
		DstY:   v.Y,
		SrcX:   v.U * texW,
		SrcY:   v.V * texH,
		ColorR: float32(v.Color.R) / 255 * a,
		ColorG: float32(v.Color.G) / 255 * a,
		ColorB: float32(v.Color.B) / 255 * a,
		ColorA: a,
	}
}

// --- Input ---

// PollButtons returns the mask of buttons whose bound keys are currently
// pressed.
func (n *EbitenNative) PollButtons() Button {
	var b Button
	for mask, key := range n.keymap {
		if ebiten.IsKeyPressed(key) {
			b |= mask
		}
	}
	return b
}

// --- Rendering ---

// viewMatrix computes the affine view transform for the tracked camera:
// world points translate by -Position, rotate by -Rotation, scale by Zoom,
// then recenter on the viewport. Identity when no camera is set.
// Layout: [a, b, c, d, tx, ty]; x' = a*x + c*y + tx, y' = b*x + d*y + ty.
func (n *EbitenNative) viewMatrix(screenW, screenH float64) [6]float64 {
	if !n.cameraSet {
		return [6]float64{1, 0, 0, 1, 0, 0}
	}
	cam := n.camera
	sin, cos := math.Sincos(-cam.Rotation)
	z := cam.Zoom
	if z == 0 {
		z = 1
	}
	a := z * cos
	b := z * sin
	c := -z * sin
	d := z * cos
	tx := screenW/2 - (a*cam.Position.X + c*cam.Position.Y)
	ty := screenH/2 - (b*cam.Position.X + d*cam.Position.Y)
	return [6]float64{a, b, c, d, tx, ty}
}

// Draw renders the queued frame onto the screen image. Called by the Run
// adapter from ebiten's draw callback; safe to call repeatedly for the same
// frame.
func (n *EbitenNative) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: n.clearColor.R, G: n.clearColor.G, B: n.clearColor.B, A: n.clearColor.A})

	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	view := n.viewMatrix(sw, sh)

	// Stable sort by layer; submission order breaks ties.
	if cap(n.sortBuf) < len(n.commands) {
		n.sortBuf = make([]drawCommand, len(n.commands))
	}
	n.sortBuf = n.sortBuf[:len(n.commands)]
	copy(n.sortBuf, n.commands)
	sort.SliceStable(n.sortBuf, func(i, j int) bool {
		return n.sortBuf[i].layer < n.sortBuf[j].layer
	})

	for _, cmd := range n.sortBuf {
		switch cmd.kind {
		case drawSprite:
			n.renderSprite(screen, cmd.handle, view)
		case drawMesh:
			n.renderMesh(screen, cmd.handle, cmd.bound, view)
		case drawTilemap:
			n.renderTilemap(screen, cmd.handle, view)
		}
	}

	if n.dialog {
		// Dim the scene under the modal overlay.
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sw, sh)
		screen.DrawImage(ensureDimPixel(), op)
	}

	n.flushScreenshots(screen)
}

func (n *EbitenNative) renderSprite(screen *ebiten.Image, h Handle, view [6]float64) {
	s, ok := n.sprites[h]
	if !ok {
		return
	}
	tex, ok := n.textures[s.texture]
	if !ok {
		return
	}

	b := tex.img.Bounds()
	iw := float64(b.Dx())
	ih := float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}

	t := s.transform
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(t.Size.X/iw, t.Size.Y/ih)
	op.GeoM.Translate(-t.Size.X/2, -t.Size.Y/2)
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Translate(t.Position.X+t.Size.X/2, t.Position.Y+t.Size.Y/2)
	op.GeoM.Concat(geoM(view))

	op.ColorScale.Scale(
		float32(s.tint.R)/255,
		float32(s.tint.G)/255,
		float32(s.tint.B)/255,
		float32(s.tint.A)/255,
	)
	screen.DrawImage(tex.img, op)
}

func (n *EbitenNative) renderMesh(screen *ebiten.Image, h, bound Handle, view [6]float64) {
	m, ok := n.meshes[h]
	if !ok {
		return
	}

	var img *ebiten.Image
	var texW, texH float32 = 1, 1
	if tex, ok := n.textures[bound]; ok && m.kind == VertexTextured {
		img = tex.img
		b := tex.img.Bounds()
		texW = float32(b.Dx())
		texH = float32(b.Dy())
	} else {
		img = ensureWhitePixel()
	}

	var verts []ebiten.Vertex
	switch m.kind {
	case VertexTextured:
		if len(m.textured) == 0 {
			return
		}
		verts = make([]ebiten.Vertex, len(m.textured))
		for i, v := range m.textured {
			verts[i] = ebitenVertex(v, texW, texH)
		}
	default:
		if len(m.colored) == 0 {
			return
		}
		verts = make([]ebiten.Vertex, len(m.colored))
		for i, v := range m.colored {
			verts[i] = ebitenVertex(TexturedVertex{Color: v.Color, X: v.X, Y: v.Y, Z: v.Z}, 1, 1)
		}
	}
	applyView(verts, view)
	screen.DrawTriangles(verts, m.indices, img, &ebiten.DrawTrianglesOptions{})
}

func (n *EbitenNative) renderTilemap(screen *ebiten.Image, h Handle, view [6]float64) {
	tm, ok := n.tilemaps[h]
	if !ok || len(tm.vertices) == 0 {
		return
	}
	tex, ok := n.textures[tm.texture]
	if !ok {
		return
	}
	// The batch is reused across frames; transform a scratch copy.
	verts := make([]ebiten.Vertex, len(tm.vertices))
	copy(verts, tm.vertices)
	applyView(verts, view)
	screen.DrawTriangles(verts, tm.indices, tex.img, &ebiten.DrawTrianglesOptions{})
}

// applyView transforms vertex destination positions by the view matrix.
func applyView(verts []ebiten.Vertex, view [6]float64) {
	a, b, c, d := float32(view[0]), float32(view[1]), float32(view[2]), float32(view[3])
	tx, ty := float32(view[4]), float32(view[5])
	if a == 1 && b == 0 && c == 0 && d == 1 && tx == 0 && ty == 0 {
		return
	}
	for i := range verts {
		x := verts[i].DstX
		y := verts[i].DstY
		verts[i].DstX = a*x + c*y + tx
		verts[i].DstY = b*x + d*y + ty
	}
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// --- Pixel singletons (cinder is single-threaded) ---

var (
	whitePixelImage *ebiten.Image
	dimPixelImage   *ebiten.Image
)

// ensureWhitePixel returns a lazily-initialized 1x1 white image, used by
// untextured mesh draws.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// ensureDimPixel returns a lazily-initialized 1x1 translucent black image,
// used by the dialog-mode overlay.
func ensureDimPixel() *ebiten.Image {
	if dimPixelImage == nil {
		dimPixelImage = ebiten.NewImage(1, 1)
		dimPixelImage.Fill(color.RGBA{A: 160})
	}
	return dimPixelImage
}
