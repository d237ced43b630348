package graphics

import (
	"fmt"

	"voxel-terrain/internal/geometry"
	"voxel-terrain/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const vertexShaderSrc = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 view;
uniform mat4 proj;

out vec3 vNormal;
out vec3 vWorldPos;

void main() {
	vNormal = aNormal;
	vWorldPos = aPos;
	gl_Position = proj * view * vec4(aPos, 1.0);
}`

const fragmentShaderSrc = `#version 410 core
in vec3 vNormal;
in vec3 vWorldPos;

uniform vec3 color;
uniform vec3 lightPos;

out vec4 fragColor;

void main() {
	vec3 toLight = normalize(lightPos - vWorldPos);
	float diffuse = max(dot(normalize(vNormal), toLight), 0.0);
	fragColor = vec4(color * (0.35 + 0.65 * diffuse), 1.0);
}`

// LightPosition is where the scene's point light sits.
var LightPosition = mgl32.Vec3{0, 40, 0}

type chunkMesh struct {
	tag         string
	vao, vbo    uint32
	vertexCount int32
	color       mgl32.Vec3
	bounds      geometry.AABB
}

// cullMargin inflates chunk bounds before frustum tests, in cells.
const cullMargin = 1

// Scene is a scene.Sink that uploads attached geometry to the GPU.
// All methods must be called on the thread owning the GL context.
type Scene struct {
	shader *Shader
	meshes []chunkMesh
	drawn  int
}

// NewScene compiles the terrain shader. gl.Init must have been called.
func NewScene() (*Scene, error) {
	shader, err := NewShader(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)
	return &Scene{shader: shader}, nil
}

// Attach uploads g to a new vertex buffer.
func (s *Scene) Attach(g scene.Geometry) error {
	src, ok := g.(scene.VertexSource)
	if !ok {
		return fmt.Errorf("graphics: attach %q: %T has no vertices", g.Tag(), g)
	}
	vertices := src.Vertices()
	bounds, ok := geometry.Bounds(vertices)
	if !ok {
		return nil
	}

	m := chunkMesh{
		tag:         g.Tag(),
		vertexCount: int32(len(vertices) / geometry.VertexStride),
		color:       scene.Grass.Color,
		bounds:      bounds.Grow(cullMargin),
	}
	if gm, ok := g.(*geometry.Mesh); ok {
		m.color = gm.Material.Color
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(geometry.VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	// unbind to reduce accidental state changes
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	s.meshes = append(s.meshes, m)
	return nil
}

// Len returns the number of uploaded meshes.
func (s *Scene) Len() int { return len(s.meshes) }

// Drawn returns how many meshes passed frustum culling in the last Render.
func (s *Scene) Drawn() int { return s.drawn }

// Render draws every attached mesh inside the camera frustum.
func (s *Scene) Render(cam *Camera) {
	view, proj := cam.ViewMatrix(), cam.ProjectionMatrix()
	frustum := geometry.NewFrustum(proj.Mul4(view))

	s.shader.Use()
	s.shader.SetMat4("view", view)
	s.shader.SetMat4("proj", proj)
	s.shader.SetVec3("lightPos", LightPosition)
	s.drawn = 0
	for _, m := range s.meshes {
		if !frustum.Intersects(m.bounds) {
			continue
		}
		s.drawn++
		s.shader.SetVec3("color", m.color)
		gl.BindVertexArray(m.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
	}
	gl.BindVertexArray(0)
}

// Dispose releases all GPU resources.
func (s *Scene) Dispose() {
	for _, m := range s.meshes {
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteVertexArrays(1, &m.vao)
	}
	s.meshes = nil
	s.shader.Delete()
}
