package renderer

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glpyramid/controller"
)

const (
	FovDeg   float32 = 45
	NearClip float32 = 3
	FarClip  float32 = 7
)

// Aspect returns width/height, substituting 1 for a zero or negative height.
func Aspect(width, height int32) float32 {

	if height <= 0 {
		height = 1
	}

	return float32(width) / float32(height)
}

// Projection is the perspective projection for a viewport of the given size.
func Projection(width, height int32) gglm.Mat4 {
	proj := gglm.Perspective(FovDeg*gglm.Deg2Rad, Aspect(width, height), NearClip, FarClip)
	return *proj.Clone()
}

// AngleToRad converts sixteenths of a degree to radians
func AngleToRad(angle int) float32 {
	return float32(angle) / controller.AngleUnitsPerDegree * gglm.Deg2Rad
}

// ModelMatrix translates along the view axis by zoom, then rotates around x and then y.
// The z rotation is only applied when applyZ is set.
func ModelMatrix(xRot, yRot, zRot int, zoom float32, applyZ bool) gglm.Mat4 {

	model := gglm.NewTrMatId()
	model.Translate(0, 0, zoom)

	model.Mat4.Mul(rotationMat(AngleToRad(xRot), 1, 0, 0))
	model.Mat4.Mul(rotationMat(AngleToRad(yRot), 0, 1, 0))
	if applyZ {
		model.Mat4.Mul(rotationMat(AngleToRad(zRot), 0, 0, 1))
	}

	return model.Mat4
}

func rotationMat(rads, x, y, z float32) *gglm.Mat4 {
	rot := gglm.NewTrMatId()
	rot.Rotate(rads, x, y, z)
	return &rot.Mat4
}

// MVP returns projection * model
func MVP(projection, model *gglm.Mat4) gglm.Mat4 {
	return *projection.Clone().Mul(model)
}
