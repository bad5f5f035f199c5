// Package gldevice drives an OpenGL 2.1 context for the renderer.
package gldevice

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gltriangle/graphics"
	"github.com/richinsley/gltriangle/renderer"
	"github.com/richinsley/gltriangle/scene"
	"github.com/richinsley/gltriangle/shader"
)

// Device owns the vertex buffer and shader program of the render loop.
type Device struct {
	vbo         uint32
	vertexCount int
	program     uint32
	mvpLoc      int32
}

var _ renderer.Device = (*Device)(nil)

func New() *Device {
	return &Device{mvpLoc: -1}
}

// Init loads entry points through the context's address resolver. The
// context must be current on the calling thread.
func (d *Device) Init(ctx graphics.Context) error {
	return gl.InitWithProcAddrFunc(ctx.GetProcAddress)
}

func (d *Device) Info() renderer.Info {
	return renderer.Info{
		Version:     gl.GoStr(gl.GetString(gl.VERSION)),
		GLSLVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}

func (d *Device) UploadVertices(v []scene.Vertex) error {
	if len(v) == 0 {
		return fmt.Errorf("no vertices")
	}
	if d.vbo == 0 {
		gl.GenBuffers(1, &d.vbo)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(v)*int(scene.Stride), gl.Ptr(v), gl.STATIC_DRAW)
	d.vertexCount = len(v)
	return nil
}

// ReadVertices copies the vertex buffer back from the GPU.
func (d *Device) ReadVertices() ([]scene.Vertex, error) {
	if d.vbo == 0 {
		return nil, fmt.Errorf("no vertex buffer")
	}
	out := make([]scene.Vertex, d.vertexCount)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.GetBufferSubData(gl.ARRAY_BUFFER, 0, len(out)*int(scene.Stride), gl.Ptr(out))
	return out, nil
}

func (d *Device) BuildProgram(vertexSrc, fragmentSrc string) error {
	program, err := newProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
	}
	d.program = program
	d.mvpLoc = gl.GetUniformLocation(program, gl.Str(shader.UniformMVP+"\x00"))
	if d.mvpLoc < 0 {
		log.Printf("Uniform %s not active in program %d", shader.UniformMVP, program)
	}
	return nil
}

// BindLayout points each attribute at the bound vertex buffer. Attributes
// the linker dropped are skipped.
func (d *Device) BindLayout(layout []scene.Attribute, stride int32) error {
	if d.program == 0 {
		return fmt.Errorf("no program to bind layout for")
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	for _, a := range layout {
		loc := gl.GetAttribLocation(d.program, gl.Str(a.Name+"\x00"))
		if loc < 0 {
			log.Printf("Attribute %s not active in program %d", a.Name, d.program)
			continue
		}
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointer(uint32(loc), a.Size, gl.FLOAT, false, stride, gl.PtrOffset(int(a.Offset)))
	}
	return nil
}

func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) ClearColor(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) SetMVP(m mgl32.Mat4) {
	gl.UseProgram(d.program)
	if d.mvpLoc >= 0 {
		gl.UniformMatrix4fv(d.mvpLoc, 1, false, &m[0])
	}
}

func (d *Device) DrawTriangles(first, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
}

func (d *Device) Err() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return Error(code)
	}
	return nil
}

func (d *Device) Release() {
	if d.program != 0 {
		gl.DeleteProgram(d.program)
		d.program = 0
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
		d.vbo = 0
	}
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(logText, "\x00"))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %s shader: %v", stageName(shaderType), strings.TrimRight(logText, "\x00"))
	}
	return shader, nil
}

func stageName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", shaderType)
}

// Error is a code returned by glGetError.
type Error uint32

func (e Error) Error() string {
	switch uint32(e) {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	case gl.STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	}
	return fmt.Sprintf("GL error 0x%x", uint32(e))
}
