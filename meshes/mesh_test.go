package meshes

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
)

func TestPyramidShape(t *testing.T) {

	m := Pyramid()

	if m.VertexCount() != 5 {
		t.Errorf("VertexCount() = %d, want 5", m.VertexCount())
	}

	if m.IndexCount() != 18 || m.TriangleCount() != 6 {
		t.Errorf("IndexCount() = %d, TriangleCount() = %d, want 18 and 6", m.IndexCount(), m.TriangleCount())
	}

	for i, idx := range m.Indices {
		if int(idx) >= m.VertexCount() {
			t.Errorf("index %d = %d out of range", i, idx)
		}
	}

	apex := m.Vertex(4)
	if apex.X() != 0 || apex.Y() != 1 || apex.Z() != 0 {
		t.Errorf("apex = %v, want (0, 1, 0)", apex.Data)
	}
}

func TestPyramidFacesPointOutwards(t *testing.T) {

	m := Pyramid()

	var center gglm.Vec3
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		center.Add(&v)
	}
	center.Scale(1 / float32(m.VertexCount()))

	for i := 0; i < m.TriangleCount(); i++ {

		tri := m.Triangle(i)

		e1 := *tri[1].Clone().Sub(&tri[0])
		e2 := *tri[2].Clone().Sub(&tri[0])
		normal := gglm.Cross(&e1, &e2)

		faceCenter := *tri[0].Clone().Add(&tri[1]).Add(&tri[2])
		faceCenter.Scale(1.0 / 3)
		outward := *faceCenter.Sub(&center)

		if gglm.DotVec3(&normal, &outward) <= 0 {
			t.Errorf("triangle %d (%v) winds inwards", i, m.Indices[i*3:i*3+3])
		}
	}
}

func TestPyramidReturnsCopies(t *testing.T) {

	a := Pyramid()
	a.Indices[0] = 4
	a.Positions[0] = 100

	b := Pyramid()
	if b.Indices[0] != 0 || b.Positions[0] != -1 {
		t.Error("Pyramid() shares its backing arrays")
	}
}
