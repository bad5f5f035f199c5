package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gltriangle/graphics"
	"github.com/richinsley/gltriangle/scene"
)

// Info identifies the driver behind a Device.
type Info struct {
	Version     string
	GLSLVersion string
}

// Device issues the graphics API calls of the render loop. Calls must come
// from the goroutine that owns the current context.
type Device interface {
	// Init resolves API entry points through the context's loader.
	Init(ctx graphics.Context) error
	Info() Info

	UploadVertices(v []scene.Vertex) error
	ReadVertices() ([]scene.Vertex, error)
	// BuildProgram compiles and links the sources. The returned error carries
	// the driver's info log.
	BuildProgram(vertexSrc, fragmentSrc string) error
	BindLayout(layout []scene.Attribute, stride int32) error

	Viewport(width, height int)
	ClearColor(c mgl32.Vec4)
	Clear()
	SetMVP(m mgl32.Mat4)
	DrawTriangles(first, count int)

	// Err returns the pending API error state, if any.
	Err() error
	Release()
}
