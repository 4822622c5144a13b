package cinder

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	Title  string
	Width  int // logical screen width, default 480
	Height int // logical screen height, default 272
	VSync  bool
}

// game adapts the Engine frame loop to ebiten's update/draw callbacks.
type game struct {
	engine  *Engine
	backend *EbitenNative
	update  func(*Engine)
	width   int
	height  int
	vsync   bool
}

func (g *game) Update() error {
	if !g.engine.Running() {
		return ebiten.Termination
	}
	g.engine.StartFrame()
	g.update(g.engine)
	g.engine.EndFrame(g.vsync)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.backend.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run creates an ebiten-backed Engine, opens a window, and drives the frame
// loop, calling update once per frame inside the StartFrame/EndFrame
// bracket. The loop ends when RequestExit is called or the window closes;
// the engine is terminated before Run returns.
//
// For full control over the loop (or a different Native backend), use Init
// and bracket frames yourself.
func Run(cfg RunConfig, update func(*Engine)) error {
	if cfg.Width <= 0 {
		cfg.Width = 480
	}
	if cfg.Height <= 0 {
		cfg.Height = 272
	}

	backend := NewEbitenNative()
	engine, err := Init(backend)
	if err != nil {
		return err
	}
	defer engine.Terminate()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	err = ebiten.RunGame(&game{
		engine:  engine,
		backend: backend,
		update:  update,
		width:   cfg.Width,
		height:  cfg.Height,
		vsync:   cfg.VSync,
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
