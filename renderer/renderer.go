// Package renderer draws the pyramid. GPU work goes through Device so the
// transform and resource logic here stays independent of the GL bindings.
package renderer

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpyramid/meshes"
)

type Primitive int

const (
	Primitive_Triangles Primitive = iota
	Primitive_TriangleStrip
)

func (p Primitive) String() string {
	switch p {
	case Primitive_Triangles:
		return "triangles"
	case Primitive_TriangleStrip:
		return "strip"
	default:
		return "unknown"
	}
}

// MeshBuffers are the GPU objects of one mesh. Zero ids are not allocated.
type MeshBuffers struct {
	VaoId      uint32
	VboId      uint32
	IboId      uint32
	IndexCount int32
}

func (b *MeshBuffers) IsZero() bool {
	return b.VaoId == 0 && b.VboId == 0 && b.IboId == 0
}

// Device is the subset of a GPU API the pyramid renderer needs.
type Device interface {
	// SetupFrameState sets the clear color, blending, depth testing and face culling
	SetupFrameState(clearColor *gglm.Vec4)

	// NewMeshBuffers allocates a vertex array with vertex and index buffers.
	// On error the returned buffers hold whatever was allocated, to be released with DeleteMeshBuffers.
	NewMeshBuffers() (MeshBuffers, error)
	// UploadMesh copies positions and indices into bufs and binds positions to posAttribLoc
	UploadMesh(bufs *MeshBuffers, mesh *meshes.Mesh, posAttribLoc uint32)
	DeleteMeshBuffers(bufs *MeshBuffers)

	// CompileProgram compiles and links a vertex and fragment shader, returning the program id
	CompileProgram(vertSrc, fragSrc []byte) (uint32, error)
	// AttribLocation returns -1 if the program has no such active attribute
	AttribLocation(progId uint32, name string) int32
	// UniformLocation returns -1 if the program has no such active uniform
	UniformLocation(progId uint32, name string) int32
	DeleteProgram(progId uint32)

	Clear()
	UseProgram(progId uint32)
	SetUniformVec4(progId uint32, loc int32, v *gglm.Vec4)
	SetUniformMat4(progId uint32, loc int32, m *gglm.Mat4)
	DrawIndexed(bufs *MeshBuffers, mode Primitive, count int32)
}
