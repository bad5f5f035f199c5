package gldevice

import (
	"runtime"
	"testing"

	"github.com/go-gl/gl/v2.1/gl"
	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/gltriangle/glfwcontext"
	"github.com/richinsley/gltriangle/scene"
	"github.com/richinsley/gltriangle/shader"
)

// hiddenContext makes an invisible 2.0 context current on the calling
// thread, or skips the test when no display is available.
func hiddenContext(t *testing.T) {
	t.Helper()
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)

	if err := glfwcontext.InitGraphics(); err != nil {
		t.Skipf("no windowing system: %v", err)
	}
	t.Cleanup(glfwcontext.TerminateGraphics)

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	win, err := glfw.CreateWindow(16, 16, "gldevice", nil, nil)
	if err != nil || win == nil {
		t.Skipf("no OpenGL 2.0 window: %v", err)
	}
	t.Cleanup(win.Destroy)

	win.MakeContextCurrent()
	if err := gl.InitWithProcAddrFunc(glfw.GetProcAddress); err != nil {
		t.Skipf("no OpenGL entry points: %v", err)
	}
}

func TestVertexReadback(t *testing.T) {
	hiddenContext(t)

	d := New()
	defer d.Release()

	if err := d.UploadVertices(scene.Vertices()); err != nil {
		t.Fatal(err)
	}
	have, err := d.ReadVertices()
	if err != nil {
		t.Fatal(err)
	}
	if len(have) != len(scene.Triangle) {
		t.Fatalf("expected %d vertices, have %d", len(scene.Triangle), len(have))
	}
	for i := range have {
		if have[i] != scene.Triangle[i] {
			t.Errorf("vertex %d: expected %+v, have %+v", i, scene.Triangle[i], have[i])
		}
	}
	if err := d.Err(); err != nil {
		t.Errorf("unexpected GL error %v", err)
	}
}

func TestProgramAndDraw(t *testing.T) {
	hiddenContext(t)

	d := New()
	defer d.Release()

	if err := d.UploadVertices(scene.Vertices()); err != nil {
		t.Fatal(err)
	}
	if err := d.BuildProgram(shader.VertexSource, shader.FragmentSource); err != nil {
		t.Fatal(err)
	}
	if d.mvpLoc < 0 {
		t.Errorf("expected %s to be active", shader.UniformMVP)
	}
	if err := d.BindLayout(scene.Layout, scene.Stride); err != nil {
		t.Fatal(err)
	}

	d.Viewport(16, 16)
	d.Clear()
	d.SetMVP(scene.MVP(0, 16, 16))
	d.DrawTriangles(0, len(scene.Triangle))
	if err := d.Err(); err != nil {
		t.Errorf("unexpected GL error %v", err)
	}

	if err := d.BuildProgram("#version 110\nvoid main() { undefined(); }\n", shader.FragmentSource); err == nil {
		t.Error("expected a broken vertex shader to fail with its info log")
	}
}

func TestReadVerticesWithoutBuffer(t *testing.T) {
	if _, err := New().ReadVertices(); err == nil {
		t.Error("expected read before upload to fail")
	}
}
