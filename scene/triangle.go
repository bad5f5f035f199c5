// Package scene holds the fixed geometry drawn by the renderer and the
// per-frame transform applied to it.
package scene

import (
	"unsafe"

	"github.com/richinsley/gltriangle/shader"
)

// Vertex is one interleaved vertex record: position followed by color.
type Vertex struct {
	X, Y    float32
	R, G, B float32
}

// Triangle is uploaded once at startup and never modified.
var Triangle = [3]Vertex{
	{X: -0.6, Y: -0.4, R: 1, G: 0, B: 0},
	{X: 0.6, Y: -0.4, R: 0, G: 1, B: 0},
	{X: 0, Y: 0.6, R: 0, G: 0, B: 1},
}

// Stride is the distance in bytes between consecutive vertices.
const Stride = int32(unsafe.Sizeof(Vertex{}))

// Attribute describes where a named vertex shader input reads from inside
// a Vertex.
type Attribute struct {
	Name   string
	Size   int32 // float components
	Offset uintptr
}

// Layout binds each vertex shader attribute to its slice of a Vertex.
var Layout = []Attribute{
	{Name: shader.AttribPosition, Size: 2, Offset: unsafe.Offsetof(Vertex{}.X)},
	{Name: shader.AttribColor, Size: 3, Offset: unsafe.Offsetof(Vertex{}.R)},
}

// Vertices returns a copy of Triangle as a slice, ready for upload.
func Vertices() []Vertex {
	v := Triangle
	return v[:]
}
