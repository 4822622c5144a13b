package cinder

// Texture owns a decoded, uploaded image inside the native engine for its
// lifetime. Move-only: use the *Texture returned by the Engine loaders and
// never copy the struct.
type Texture struct {
	native Native
	vram   bool

	res resource
}

// LoadTexture loads a texture from a file. flip mirrors the image vertically
// on load; vram asks the native engine to prefer device-local memory for
// faster sampling. Fails with a *CreationError carrying the path.
func (e *Engine) LoadTexture(path string, flip, vram bool) (*Texture, error) {
	t := &Texture{native: e.native, vram: vram}
	h := e.native.LoadTexture(path, flip, vram)
	if err := t.res.acquireFile("Texture", path, h, e.native.DestroyTexture); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTextureInfo loads a texture from a structured descriptor. This is the
// alternate load path used for contained sprites and pre-described sources.
func (e *Engine) LoadTextureInfo(info TextureInfo) (*Texture, error) {
	t := &Texture{native: e.native, vram: info.VRAM}
	h := e.native.LoadTextureInfo(info)
	if err := t.res.acquireFile("Texture", info.Path, h, e.native.DestroyTexture); err != nil {
		return nil, err
	}
	return t, nil
}

// Bind makes this texture the active sampling source for subsequent draws.
// Stateful and global to the renderer: the most recent Bind wins until
// Unbind or another Bind.
func (t *Texture) Bind() {
	if !t.res.valid() {
		return
	}
	t.native.BindTexture(t.res.handle)
}

// Unbind clears the active sampling source.
func (t *Texture) Unbind() {
	t.native.UnbindTexture()
}

// VRAM reports whether device-local memory was requested at load time.
func (t *Texture) VRAM() bool {
	return t.vram
}

// Destroy releases the native image. Sprites and tilemaps still referencing
// this texture must be destroyed or stop drawing first. A second Destroy is
// a no-op.
func (t *Texture) Destroy() {
	t.res.release()
}

// handle exposes the native handle to sprites and tilemaps binding to this
// texture.
func (t *Texture) handle() Handle {
	return t.res.handle
}
