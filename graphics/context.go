package graphics

import "unsafe"

// Context defines the interface for a window and its OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(bool)
	PollEvents()
	SwapBuffers()
	SetSwapInterval(interval int)
	GetFramebufferSize() (int, int)
	// Time returns seconds elapsed since the windowing subsystem started.
	Time() float64
	// GetProcAddress resolves a GL entry point for the current context.
	GetProcAddress(name string) unsafe.Pointer
}
