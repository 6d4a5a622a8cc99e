package buffers

import (
	"github.com/bloeys/glpyramid/assert"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// BufUsage is the glBufferData usage hint
type BufUsage int

const (
	BufUsage_Unknown BufUsage = iota

	// Uploaded once, drawn every frame (the pyramid mesh)
	BufUsage_Static_Draw
	// Re-uploaded every frame (UI vertex data)
	BufUsage_Stream_Draw
)

func (b BufUsage) ToGL() uint32 {

	if b == BufUsage_Stream_Draw {
		return gl.STREAM_DRAW
	}

	assert.T(b == BufUsage_Static_Draw, "Unexpected BufUsage value '%d'", b)
	return gl.STATIC_DRAW
}
