package renderer

import (
	"fmt"
	"io"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gltriangle/graphics"
	"github.com/richinsley/gltriangle/options"
	"github.com/richinsley/gltriangle/scene"
	"github.com/richinsley/gltriangle/shader"
)

type Renderer struct {
	context      graphics.Context
	device       Device
	clearColor   mgl32.Vec4
	explicit     bool
	swapInterval int
	maxFrames    int
	programOK    bool
	lastErr      string
}

// NewRenderer makes the context current, loads the graphics API through it
// and writes the driver versions to out.
func NewRenderer(ctx graphics.Context, dev Device, opts *options.Options, out io.Writer) (*Renderer, error) {
	r := &Renderer{
		context:      ctx,
		device:       dev,
		swapInterval: opts.SwapInterval,
		maxFrames:    opts.Frames,
	}
	r.clearColor, r.explicit = opts.ClearColor()

	r.context.MakeCurrent()
	if err := r.device.Init(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", graphics.ErrLoader, err)
	}

	info := r.device.Info()
	fmt.Fprintf(out, "OpenGL %s, GLSL %s\n", info.Version, info.GLSLVersion)
	return r, nil
}

// InitScene uploads the triangle, builds its program, binds the vertex
// layout and sets the swap interval. A program that fails to build is
// logged and the loop still runs.
func (r *Renderer) InitScene() error {
	if err := r.device.UploadVertices(scene.Vertices()); err != nil {
		return fmt.Errorf("failed to upload vertices: %w", err)
	}

	if err := r.device.BuildProgram(shader.VertexSource, shader.FragmentSource); err != nil {
		log.Printf("Shader program: %v", err)
	} else {
		r.programOK = true
	}

	if err := r.device.BindLayout(scene.Layout, scene.Stride); err != nil {
		log.Printf("Vertex layout: %v", err)
	}

	r.context.SetSwapInterval(r.swapInterval)
	r.checkError()
	return nil
}

// ProgramOK reports whether the shader program compiled and linked.
func (r *Renderer) ProgramOK() bool { return r.programOK }

// RenderFrame draws the triangle rotated by t seconds into the current
// framebuffer. It does not swap buffers.
func (r *Renderer) RenderFrame(t float64) {
	width, height := r.context.GetFramebufferSize()

	r.device.Viewport(width, height)
	if r.explicit {
		r.device.ClearColor(r.clearColor)
	}
	r.device.Clear()

	r.device.SetMVP(scene.MVP(t, width, height))
	r.device.DrawTriangles(0, len(scene.Triangle))
}

// Run renders until the context is asked to close and returns the number of
// frames presented.
func (r *Renderer) Run() int {
	frames := 0
	for !r.context.ShouldClose() {
		r.context.PollEvents()
		if r.context.ShouldClose() {
			break
		}

		r.RenderFrame(r.context.Time())
		r.context.SwapBuffers()
		r.checkError()

		frames++
		if r.maxFrames > 0 && frames >= r.maxFrames {
			r.context.SetShouldClose(true)
		}
	}
	return frames
}

// checkError logs an API error when it differs from the last one seen.
func (r *Renderer) checkError() {
	err := r.device.Err()
	if err == nil {
		r.lastErr = ""
		return
	}
	if msg := err.Error(); msg != r.lastErr {
		log.Printf("OpenGL error: %s", msg)
		r.lastErr = msg
	}
}

// Shutdown releases GPU objects. The context is shut down by its owner.
func (r *Renderer) Shutdown() {
	r.device.Release()
}
