package cinder

// noCopy triggers a `go vet` copylocks warning when a struct embedding it is
// copied by value. Owned resources are move-only: two copies would both
// destroy the same native handle.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// resource is the owned-handle core shared by Mesh, Texture, Sprite, and
// Tilemap. It pairs a native handle with its matching destroy call and
// guarantees the destroy runs at most once: release clears the handle to
// NilHandle, so a second release is a no-op.
type resource struct {
	noCopy  noCopy
	kind    string // human-readable resource label for errors and logs
	handle  Handle
	destroy func(Handle)
}

// acquire takes ownership of the result of a native factory call, releasing
// any handle currently held first (re-creation is an explicit replace, not an
// error). A NilHandle result becomes a *CreationError carrying the resource
// kind; the previously held handle is still released in that case.
func (r *resource) acquire(kind string, h Handle, destroy func(Handle)) error {
	return r.acquireFile(kind, "", h, destroy)
}

// acquireFile is acquire for file-backed resources: the source path is
// carried into the creation error.
func (r *resource) acquireFile(kind, path string, h Handle, destroy func(Handle)) error {
	r.release()
	if h == NilHandle {
		return &CreationError{Resource: kind, Path: path}
	}
	r.kind = kind
	r.handle = h
	r.destroy = destroy
	logger.Debug("resource created", "kind", kind, "handle", uint64(h))
	return nil
}

func (r *resource) valid() bool {
	return r.handle != NilHandle
}

// release calls the native destroy exactly once and clears the stored handle.
// Safe to call on an already-released or never-acquired resource.
func (r *resource) release() {
	if r.handle == NilHandle {
		return
	}
	logger.Debug("resource destroyed", "kind", r.kind, "handle", uint64(r.handle))
	r.destroy(r.handle)
	r.handle = NilHandle
}
