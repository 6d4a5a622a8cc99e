package buffers

import (
	"github.com/bloeys/glpyramid/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Element is one attribute of an interleaved vertex layout, at Offset bytes into the vertex
type Element struct {
	Offset int
	ElementType
}

// ElementType is a float vector type of 1 to 4 components
type ElementType uint8

const (
	DataTypeUnknown ElementType = iota

	DataTypeFloat32
	DataTypeVec2
	DataTypeVec3
	DataTypeVec4
)

var elementTypeNames = [...]string{
	DataTypeUnknown: "Unknown",
	DataTypeFloat32: "float32",
	DataTypeVec2:    "Vec2",
	DataTypeVec3:    "Vec3",
	DataTypeVec4:    "Vec4",
}

func (dt ElementType) isValid() bool {
	return dt > DataTypeUnknown && dt <= DataTypeVec4
}

// GLType is the component type passed to glVertexAttribPointer
func (dt ElementType) GLType() uint32 {
	assert.T(dt.isValid(), "Unknown data type passed. DataType '%d'", dt)
	return gl.FLOAT
}

// CompCount returns the number of float components, e.g. 3 for Vec3
func (dt ElementType) CompCount() int32 {

	if !dt.isValid() {
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}

	// Types are declared in component order
	return int32(dt - DataTypeFloat32 + 1)
}

// Size returns the size in bytes, e.g. 12 for Vec3
func (dt ElementType) Size() int32 {
	return dt.CompCount() * 4
}

func (dt ElementType) String() string {

	if int(dt) >= len(elementTypeNames) {
		return "Unknown"
	}

	return elementTypeNames[dt]
}
