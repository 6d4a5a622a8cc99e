package buffers

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// IndexBuffer holds 16-bit indices
type IndexBuffer struct {
	Id uint32
	// IndexBufCount is the number of elements in the index buffer. Updated in IndexBuffer.SetData
	IndexBufCount int32
}

func (ib *IndexBuffer) Bind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.Id)
}

func (ib *IndexBuffer) UnBind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

// GLType is the index type to pass to draw calls
func (ib *IndexBuffer) GLType() uint32 {
	return gl.UNSIGNED_SHORT
}

func (ib *IndexBuffer) SetData(values []uint16, usage BufUsage) {

	ib.Bind()

	sizeInBytes := len(values) * 2
	ib.IndexBufCount = int32(len(values))

	if sizeInBytes == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, gl.Ptr(nil), usage.ToGL())
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, sizeInBytes, gl.Ptr(&values[0]), usage.ToGL())
	}
}

// Delete releases the buffer. Safe on a zero IndexBuffer
func (ib *IndexBuffer) Delete() {

	if ib.Id == 0 {
		return
	}

	gl.DeleteBuffers(1, &ib.Id)
	ib.Id = 0
	ib.IndexBufCount = 0
}

func NewIndexBuffer() (IndexBuffer, error) {

	ib := IndexBuffer{}

	gl.GenBuffers(1, &ib.Id)
	if ib.Id == 0 {
		return ib, errors.New("failed to create OpenGL index buffer")
	}

	return ib, nil
}
