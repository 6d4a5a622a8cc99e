package engine

import (
	"github.com/bloeys/glpyramid/input"
	"github.com/bloeys/glpyramid/timing"
	nmageimgui "github.com/bloeys/glpyramid/ui/imgui"
)

var (
	isRunning = false
)

// Game is driven by Run. Update, Render and FrameEnd are only called on frames that
// are actually drawn, which happens when something requested a redraw or the UI is settling.
type Game interface {
	Init() error

	// Update runs between the UI frame start and the scene render, so it is where UI is built
	Update()
	Render()
	FrameEnd()
	DeInit()
}

// FrameEnder is implemented by renderers that cache state for the length of a frame
type FrameEnder interface {
	FrameEnd()
}

// Run drives the window until Quit is called or the window is closed.
// When nothing needs drawing it blocks waiting for events.
func Run(g Game, w *Window, ui nmageimgui.ImguiInfo, rend FrameEnder) error {

	isRunning = true

	if err := g.Init(); err != nil {
		return err
	}
	defer g.DeInit()

	// Let handlers see the initial drawable size
	w.handleWindowResize()

	for isRunning {

		w.handleInputs(!w.NeedsFrame())
		if input.IsQuitClicked() {
			Quit()
			break
		}

		if !w.NeedsFrame() {
			continue
		}

		w.beginFrame()
		timing.FrameStarted()

		winWidth, winHeight := w.SDLWin.GetSize()
		fbWidth, fbHeight := w.SDLWin.GLGetDrawableSize()

		ui.FrameStart(float32(winWidth), float32(winHeight))

		g.Update()
		if !isRunning {
			// Keep imgui's frame balanced even when quitting
			ui.Render(float32(winWidth), float32(winHeight), fbWidth, fbHeight)
			break
		}

		g.Render()
		ui.Render(float32(winWidth), float32(winHeight), fbWidth, fbHeight)

		w.SDLWin.GLSwap()

		g.FrameEnd()
		if rend != nil {
			rend.FrameEnd()
		}
	}

	return nil
}

// beginFrame consumes the pending redraw. Redraws requested while the frame is
// built (e.g. by a UI slider) schedule the next frame.
func (w *Window) beginFrame() {

	w.needsRedraw = false
	if w.uiFramesLeft > 0 {
		w.uiFramesLeft--
	}
}

func Quit() {
	isRunning = false
}

func IsRunning() bool {
	return isRunning
}
