package graphics

import "errors"

// Failure kinds that end the process. Backends wrap the underlying cause.
var (
	ErrInit   = errors.New("failed to initialize windowing subsystem")
	ErrWindow = errors.New("failed to create window")
	ErrLoader = errors.New("failed to load OpenGL entry points")
)
