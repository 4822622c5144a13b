// Package cinder provides safe, lifecycle-managed handles over a low-level
// 2D rendering and tilemap engine of the kind found on resource-constrained
// handheld hardware.
//
// The native engine is an opaque boundary ([Native]) whose factory calls can
// fail by returning a sentinel handle. cinder wraps those handles in owned
// resource types ([Mesh], [Texture], [Sprite], [Tilemap]) that surface
// creation failures as errors, destroy each handle exactly once, and make
// repeated destruction a safe no-op. An ebiten-backed implementation of the
// boundary is included ([EbitenNative]).
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and frame
// loop over the ebiten backend:
//
//	cinder.Run(cinder.RunConfig{Title: "My Game"}, func(e *cinder.Engine) {
//		input.Update()
//		if input.Pressed(cinder.ButtonStart) {
//			e.RequestExit()
//		}
//		e.Clear()
//		player.Draw()
//		ground.Draw()
//	})
//
// For full control, call [Init] with a Native implementation and bracket
// frames yourself with [Engine.StartFrame] and [Engine.EndFrame].
//
// # Resource model
//
// Everything is single-threaded and frame-based: create resources between
// frames, draw inside the frame bracket, destroy on scene change or
// shutdown. Sprites stage their transform, layer, and tint on the wrapper
// and flush them to the native handle once per Draw. Tilemaps accumulate
// tiles addressed into a [TextureAtlas] grid and batch them into a single
// draw submission with [Tilemap.Build].
//
// Wrapper types are move-only: pass the pointers returned by the Engine
// constructors around, never copy the structs.
package cinder
