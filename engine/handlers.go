package engine

import (
	"github.com/bloeys/glpyramid/controller"
	"github.com/veandco/go-sdl2/sdl"
)

// PointerHandler receives pointer input that the UI did not capture.
// Positions are window coordinates, buttons the mask held during the event.
type PointerHandler interface {
	PointerPressed(x, y int32, buttons controller.Buttons)
	PointerMoved(x, y int32, buttons controller.Buttons)
	WheelScrolled(yDelta int32)
}

// ViewportHandler is told the drawable size on startup and after every resize.
type ViewportHandler interface {
	Resize(width, height int32)
}

func sdlButtonToMask(btn uint8) controller.Buttons {

	switch btn {
	case sdl.BUTTON_LEFT:
		return controller.ButtonPrimary
	case sdl.BUTTON_MIDDLE:
		return controller.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return controller.ButtonSecondary
	default:
		return 0
	}
}

// sdlStateToMask converts an SDL button state mask (as in MouseMotionEvent.State)
func sdlStateToMask(state uint32) controller.Buttons {

	var b controller.Buttons
	if state&sdl.ButtonLMask() != 0 {
		b |= controller.ButtonPrimary
	}

	if state&sdl.ButtonMMask() != 0 {
		b |= controller.ButtonMiddle
	}

	if state&sdl.ButtonRMask() != 0 {
		b |= controller.ButtonSecondary
	}

	return b
}

// wheelDeltaY returns the vertical scroll with 'natural scrolling' undone
func wheelDeltaY(e *sdl.MouseWheelEvent) int32 {

	if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
		return -e.Y
	}

	return e.Y
}
