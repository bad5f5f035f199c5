package glfwcontext

import (
	"fmt"
	"log"
	"runtime"
	"unsafe"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	graphics "github.com/richinsley/gltriangle/graphics"
	options "github.com/richinsley/gltriangle/options"
)

// Context owns one GLFW window and its OpenGL 2.0 context.
type Context struct {
	window *glfw.Window
}

// New creates a resizable window with an OpenGL 2.0 context and installs the
// Escape handler. InitGraphics must have succeeded first.
func New(opts *options.Options) (*Context, error) {
	win, err := createWindow(opts)
	if err != nil {
		ReportError(err)
		return nil, fmt.Errorf("%w: %w", graphics.ErrWindow, err)
	}
	// GLFW reports platform errors through its log and hands back no window.
	if win == nil {
		return nil, fmt.Errorf("%w: no window returned", graphics.ErrWindow)
	}

	c := &Context{window: win}
	win.SetKeyCallback(c.glfwKeyCallback)

	return c, nil
}

var createWindow = func(opts *options.Options) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	return glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
}

// glfwKeyCallback is called by GLFW on every key event.
func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if graphics.CloseRequested(graphics.Key(key), graphics.Action(action)) {
		w.SetShouldClose(true)
	}
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown only destroys the window; TerminateGraphics ends GLFW itself.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

func (c *Context) PollEvents() {
	glfw.PollEvents()
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

// SetSwapInterval applies to the current context.
func (c *Context) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

func (c *Context) GetProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := initGLFW(); err != nil {
		ReportError(err)
		return fmt.Errorf("%w: %w", graphics.ErrInit, err)
	}
	// Init returns nil on platform errors, leaving GLFW uninitialized.
	if err := started(); err != nil {
		ReportError(err)
		return fmt.Errorf("%w: %w", graphics.ErrInit, err)
	}
	log.Printf("GLFW Initialized")
	return nil
}

var (
	initGLFW  = glfw.Init
	probeGLFW = func() { glfw.GetTime() }
)

// started turns the panic GLFW raises when used uninitialized into an error.
func started() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	probeGLFW()
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
