package buffers

import (
	"errors"

	"github.com/bloeys/glpyramid/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type VertexArray struct {
	Id          uint32
	Vbos        []VertexBuffer
	IndexBuffer IndexBuffer
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.Id)
}

func (va *VertexArray) UnBind() {
	gl.BindVertexArray(0)
}

// AddVertexBuffer wires the layout of vbo into this vao. Element i is bound to attribLocs[i],
// or to location i when no locations are given.
func (va *VertexArray) AddVertexBuffer(vbo VertexBuffer, attribLocs ...uint32) {

	assert.T(len(attribLocs) == 0 || len(attribLocs) == len(vbo.layout), "Got %d attribute locations for a layout of %d elements", len(attribLocs), len(vbo.layout))

	// NOTE: VBOs are only bound at 'VertexAttribPointer' (and related) calls

	va.Bind()
	vbo.Bind()

	for i := 0; i < len(vbo.layout); i++ {

		l := &vbo.layout[i]

		loc := uint32(i)
		if len(attribLocs) > 0 {
			loc = attribLocs[i]
		}

		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, l.ElementType.CompCount(), l.ElementType.GLType(), false, vbo.Stride, uintptr(l.Offset))
	}

	va.Vbos = append(va.Vbos, vbo)
}

func (va *VertexArray) SetIndexBuffer(ib IndexBuffer) {
	va.Bind()
	ib.Bind()
	va.IndexBuffer = ib
}

// Delete releases the vao. Buffers added to it are owned by the caller
func (va *VertexArray) Delete() {

	if va.Id == 0 {
		return
	}

	gl.DeleteVertexArrays(1, &va.Id)
	va.Id = 0
	va.Vbos = nil
	va.IndexBuffer = IndexBuffer{}
}

func NewVertexArray() (VertexArray, error) {

	vao := VertexArray{}

	gl.GenVertexArrays(1, &vao.Id)
	if vao.Id == 0 {
		return vao, errors.New("failed to create OpenGL vertex array object")
	}

	return vao, nil
}
