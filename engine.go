package cinder

import "time"

// Engine is the render context: it owns the boundary to the native engine and
// the process-wide-in-the-original flags (tracked camera, dialog mode), which
// here live on an explicit value threaded through the frame loop instead.
// Last set wins within one Engine's lifetime.
//
// An Engine is single-threaded. Frames are delimited by StartFrame/EndFrame;
// mesh, sprite, and tilemap draws are only valid inside that bracket.
// Resource creation and destruction belong between frames.
type Engine struct {
	native Native

	camera     *Camera2D
	dialog     bool
	inFrame    bool
	terminated bool

	clock frameClock
}

// Init initializes the native engine and its graphics context and returns the
// Engine handle for it. Fails with a *CreationError if either native init
// reports failure; a failed graphics init tears the engine back down.
func Init(n Native) (*Engine, error) {
	if !n.Init() {
		return nil, creationFailed("Engine")
	}
	if !n.GraphicsInit() {
		n.Terminate()
		return nil, creationFailed("Graphics")
	}
	logger.Info("engine initialized")
	return &Engine{native: n}, nil
}

// Running reports whether the native engine is still running (no exit has
// been requested and the engine was not terminated).
func (e *Engine) Running() bool {
	return !e.terminated && e.native.Running()
}

// RequestExit asks the native engine to stop running. The current frame
// completes normally; Running returns false afterwards.
func (e *Engine) RequestExit() {
	e.native.RequestExit()
}

// Terminate shuts down the graphics context and the native engine. Resources
// created from this Engine must already be destroyed. Calling Terminate a
// second time is a no-op.
func (e *Engine) Terminate() {
	if e.terminated {
		return
	}
	e.terminated = true
	e.native.GraphicsTerminate()
	e.native.Terminate()
	logger.Info("engine terminated")
}

// --- Frame bracket ---

// StartFrame opens the frame bracket. The tracked camera, if any, is advanced
// (scroll tweens) and flushed to the native layer here, so camera mutations
// between frames cost one sync.
func (e *Engine) StartFrame() {
	if e.inFrame {
		logger.Warn("StartFrame called inside an open frame")
	}
	e.inFrame = true

	dt := e.clock.tick(time.Now())

	if e.camera != nil {
		e.camera.update(dt)
		e.native.SetCamera(e.camera.state())
	}
	e.native.StartFrame()
}

// EndFrame closes the frame bracket and presents the frame, waiting for
// vertical sync when vsync is true.
func (e *Engine) EndFrame(vsync bool) {
	if !e.inFrame {
		logger.Warn("EndFrame called outside a frame")
	}
	e.inFrame = false
	e.native.EndFrame(vsync)
}

// SetClearColor sets the background color used by Clear and frame setup.
func (e *Engine) SetClearColor(c Color) {
	e.native.SetClearColor(c)
}

// Clear clears the screen to the clear color.
func (e *Engine) Clear() {
	e.native.Clear()
}

// Set2D switches the renderer into 2D mode. Must be called inside the
// StartFrame/EndFrame bracket.
func (e *Engine) Set2D() {
	e.native.Set2D()
}

// --- Camera and dialog mode ---

// SetCamera makes the given camera the tracked camera. The camera is flushed
// to the native layer immediately and again at every StartFrame while
// tracked, so position mutations and scroll tweens take effect per frame.
func (e *Engine) SetCamera(cam *Camera2D) {
	e.camera = cam
	if cam != nil {
		e.native.SetCamera(cam.state())
	}
}

// UnsetCamera stops tracking the current camera.
func (e *Engine) UnsetCamera() {
	e.camera = nil
	e.native.UnsetCamera()
}

// Camera returns the currently tracked camera, or nil.
func (e *Engine) Camera() *Camera2D {
	return e.camera
}

// SetDialogMode sets the dialog-mode rendering flag. Last call wins; there is
// no nesting stack, so unrelated callers toggling this will clobber each
// other.
func (e *Engine) SetDialogMode(on bool) {
	e.dialog = on
	e.native.SetDialogMode(on)
}

// DialogMode reports the current dialog-mode flag.
func (e *Engine) DialogMode() bool {
	return e.dialog
}
