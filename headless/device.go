package headless

import (
	"errors"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gltriangle/graphics"
	"github.com/richinsley/gltriangle/renderer"
	"github.com/richinsley/gltriangle/scene"
)

// Device records what the renderer asks of it. Set LoadErr or BuildErr to
// make Init or BuildProgram fail.
type Device struct {
	LoadErr  error
	BuildErr error
	// Errs is drained by Err, one per call.
	Errs []error

	Loaded     bool
	Released   bool
	VertexSrc  string
	FragSrc    string
	Layout     []scene.Attribute
	Stride     int32
	Width      int
	Height     int
	Color      mgl32.Vec4
	ColorSets  int
	Clears     int
	MVP        mgl32.Mat4
	Draws      int
	DrawnVerts int

	vertices []scene.Vertex
	program  bool
}

var _ renderer.Device = (*Device)(nil)

func NewDevice() *Device {
	return &Device{}
}

func (d *Device) Init(ctx graphics.Context) error {
	if d.LoadErr != nil {
		return d.LoadErr
	}
	d.Loaded = true
	return nil
}

func (d *Device) Info() renderer.Info {
	return renderer.Info{Version: "2.1 headless", GLSLVersion: "1.10 headless"}
}

func (d *Device) UploadVertices(v []scene.Vertex) error {
	if len(v) == 0 {
		return errors.New("no vertices")
	}
	d.vertices = append([]scene.Vertex(nil), v...)
	return nil
}

func (d *Device) ReadVertices() ([]scene.Vertex, error) {
	if d.vertices == nil {
		return nil, errors.New("no vertex buffer")
	}
	return append([]scene.Vertex(nil), d.vertices...), nil
}

func (d *Device) BuildProgram(vertexSrc, fragmentSrc string) error {
	d.VertexSrc, d.FragSrc = vertexSrc, fragmentSrc
	if d.BuildErr != nil {
		return d.BuildErr
	}
	if !strings.Contains(vertexSrc, "void main()") || !strings.Contains(fragmentSrc, "void main()") {
		return errors.New("failed to link program: missing main")
	}
	d.program = true
	return nil
}

func (d *Device) BindLayout(layout []scene.Attribute, stride int32) error {
	if !d.program {
		return errors.New("no program to bind layout for")
	}
	d.Layout = append([]scene.Attribute(nil), layout...)
	d.Stride = stride
	return nil
}

func (d *Device) Viewport(width, height int) { d.Width, d.Height = width, height }

func (d *Device) ClearColor(c mgl32.Vec4) {
	d.Color = c
	d.ColorSets++
}

func (d *Device) Clear() { d.Clears++ }

func (d *Device) SetMVP(m mgl32.Mat4) { d.MVP = m }

func (d *Device) DrawTriangles(first, count int) {
	d.Draws++
	d.DrawnVerts += count
}

func (d *Device) Err() error {
	if len(d.Errs) == 0 {
		return nil
	}
	err := d.Errs[0]
	d.Errs = d.Errs[1:]
	return err
}

func (d *Device) Release() {
	d.Released = true
	d.vertices = nil
	d.program = false
}
