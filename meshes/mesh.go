package meshes

import (
	"github.com/bloeys/gglm/gglm"
)

const (
	// PositionComponents is the number of floats per vertex position
	PositionComponents = 3
)

// Mesh is CPU side, position only geometry with 16-bit indices describing a triangle list.
type Mesh struct {
	Name      string
	Positions []float32
	Indices   []uint16
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions) / PositionComponents
}

func (m *Mesh) IndexCount() int32 {
	return int32(len(m.Indices))
}

func (m *Mesh) Vertex(i int) gglm.Vec3 {
	return gglm.NewVec3(m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2])
}

// Triangle returns the vertices of the i-th triangle of the index list
func (m *Mesh) Triangle(i int) [3]gglm.Vec3 {
	return [3]gglm.Vec3{
		m.Vertex(int(m.Indices[i*3])),
		m.Vertex(int(m.Indices[i*3+1])),
		m.Vertex(int(m.Indices[i*3+2])),
	}
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

var (
	pyramidPositions = [...]float32{
		// Base
		-1, -1, 1, // 0
		1, -1, 1, // 1
		1, -1, -1, // 2
		-1, -1, -1, // 3

		// Apex
		0, 1, 0, // 4
	}

	// Counter-clockwise when seen from outside, so back-face culling keeps the visible faces
	pyramidIndices = [...]uint16{
		// Base
		0, 3, 1,
		1, 3, 2,

		// Sides
		0, 1, 4, // Front
		1, 2, 4, // Right
		2, 3, 4, // Back
		3, 0, 4, // Left
	}
)

// Pyramid returns the square-base pyramid: 5 vertices and 6 triangles.
// Each call returns fresh slices.
func Pyramid() Mesh {

	m := Mesh{
		Name:      "pyramid",
		Positions: make([]float32, len(pyramidPositions)),
		Indices:   make([]uint16, len(pyramidIndices)),
	}

	copy(m.Positions, pyramidPositions[:])
	copy(m.Indices, pyramidIndices[:])
	return m
}
