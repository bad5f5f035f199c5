// Package headless renders without a display: a simulated window and clock
// paired with a device that records the calls made against it.
package headless

import (
	"fmt"
	"unsafe"

	"github.com/richinsley/gltriangle/graphics"
)

// FrameTime is how far the simulated clock advances per swap (60 Hz).
const FrameTime = 1.0 / 60

// Context implements graphics.Context in memory.
type Context struct {
	width       int
	height      int
	time        float64
	shouldClose bool
	current     bool
	shutdown    bool

	SwapInterval int
	Swaps        int
	Polls        int
	// OnPoll runs during every PollEvents, as a window's event callbacks would.
	OnPoll func(c *Context)
}

var _ graphics.Context = (*Context)(nil)

func NewHeadless(width, height int) (*Context, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid headless size %dx%d", width, height)
	}
	return &Context{width: width, height: height}, nil
}

func (c *Context) MakeCurrent() {
	c.current = true
}

func (c *Context) Current() bool {
	return c.current
}

func (c *Context) IsShutdown() bool {
	return c.shutdown
}

func (c *Context) ShouldClose() bool {
	return c.shouldClose
}

func (c *Context) SetShouldClose(v bool) {
	c.shouldClose = v
}

func (c *Context) SetSwapInterval(i int) {
	c.SwapInterval = i
}

func (c *Context) Time() float64 {
	return c.time
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.width, c.height
}

func (c *Context) Shutdown() {
	c.shutdown = true
	c.current = false
}

// GetProcAddress resolves nothing; the headless device needs no entry points.
func (c *Context) GetProcAddress(name string) unsafe.Pointer {
	return nil
}

func (c *Context) PollEvents() {
	c.Polls++
	if c.OnPoll != nil {
		c.OnPoll(c)
	}
}

// SwapBuffers presents the frame and advances the clock by one tick.
func (c *Context) SwapBuffers() {
	c.Swaps++
	c.time += FrameTime
}

// Resize changes the framebuffer size reported from the next frame on.
func (c *Context) Resize(width, height int) {
	c.width, c.height = width, height
}

// PressKey delivers a key event the way the window backend would.
func (c *Context) PressKey(key graphics.Key, action graphics.Action) {
	if graphics.CloseRequested(key, action) {
		c.shouldClose = true
	}
}
