package shader

// ────────────────────────────────── GLSL 1.10 ──────────────────────────────────

// Names of the program inputs declared by the sources below.
const (
	UniformMVP     = "MVP"
	AttribPosition = "vPos"
	AttribColor    = "vCol"
)

// VertexSource transforms vPos by MVP and forwards vCol to the fragment stage.
const VertexSource = `#version 110
uniform mat4 MVP;
attribute vec3 vCol;
attribute vec2 vPos;
varying vec3 color;
void main()
{
    gl_Position = MVP * vec4(vPos, 0.0, 1.0);
    color = vCol;
}
`

// FragmentSource writes the interpolated vertex color, fully opaque.
const FragmentSource = `#version 110
varying vec3 color;
void main()
{
    gl_FragColor = vec4(color, 1.0);
}
`
