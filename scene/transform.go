package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Aspect returns width/height. A non-positive height, as reported for a
// minimized window, yields 1.
func Aspect(width, height int) float32 {
	if height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Model rotates about the Z axis by t radians.
func Model(t float64) mgl32.Mat4 {
	angle := float32(math.Mod(t, 2*math.Pi))
	return mgl32.Ident4().Mul4(mgl32.HomogRotate3DZ(angle))
}

// Projection maps x in [-aspect, aspect] and y in [-1, 1] to clip space.
// Near and far are swapped (1, -1) so that z passes through unchanged.
func Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Ortho(-aspect, aspect, -1, 1, 1, -1)
}

// MVP is the column-major transform uploaded for a frame drawn at t seconds
// into a framebuffer of the given size.
func MVP(t float64, width, height int) mgl32.Mat4 {
	return Projection(Aspect(width, height)).Mul4(Model(t))
}
