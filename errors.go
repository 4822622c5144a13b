package cinder

import "fmt"

// CreationError reports that a native factory call returned the failure
// sentinel. It carries the human-readable resource kind ("Mesh", "Texture",
// "Sprite", ...) so callers can tell which creation failed. Creation is never
// retried internally; the failed operation is terminal.
type CreationError struct {
	Resource string // resource kind label
	Path     string // source path for file-backed resources, "" otherwise
}

func (e *CreationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("cinder: %s creation failed (%s)", e.Resource, e.Path)
	}
	return fmt.Sprintf("cinder: %s creation failed", e.Resource)
}

// ValidationError reports that a caller passed invalid input to a data
// operation (nil/empty upload buffers, out-of-range atlas index). The
// operation performs no partial work before returning it.
type ValidationError struct {
	Op     string // operation name, e.g. "Mesh.AddData"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("cinder: %s: %s", e.Op, e.Reason)
}

func creationFailed(resource string) error {
	return &CreationError{Resource: resource}
}

func invalidInput(op, reason string) error {
	return &ValidationError{Op: op, Reason: reason}
}
