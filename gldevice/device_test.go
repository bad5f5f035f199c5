package gldevice

import (
	"testing"

	"github.com/go-gl/gl/v2.1/gl"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{gl.INVALID_ENUM, "GL_INVALID_ENUM"},
		{gl.INVALID_VALUE, "GL_INVALID_VALUE"},
		{gl.INVALID_OPERATION, "GL_INVALID_OPERATION"},
		{gl.OUT_OF_MEMORY, "GL_OUT_OF_MEMORY"},
		{0x9999, "GL error 0x9999"},
	}
	for _, tt := range tests {
		if have := Error(tt.code).Error(); have != tt.want {
			t.Errorf("Error(0x%x): expected %q, have %q", tt.code, tt.want, have)
		}
	}
}

func TestStageName(t *testing.T) {
	if have := stageName(gl.VERTEX_SHADER); have != "vertex" {
		t.Errorf("expected vertex, have %q", have)
	}
	if have := stageName(gl.FRAGMENT_SHADER); have != "fragment" {
		t.Errorf("expected fragment, have %q", have)
	}
}

func TestNewHasNoUniform(t *testing.T) {
	if d := New(); d.mvpLoc != -1 || d.program != 0 || d.vbo != 0 {
		t.Errorf("unexpected initial device state %+v", d)
	}
}
