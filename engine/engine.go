package engine

import (
	"runtime"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/bloeys/glpyramid/assert"
	"github.com/bloeys/glpyramid/input"
	"github.com/bloeys/glpyramid/logging"
	"github.com/bloeys/glpyramid/timing"
	nmageimgui "github.com/bloeys/glpyramid/ui/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	// uiSettleFrames is how many frames are drawn after input so imgui hover/active state catches up
	uiSettleFrames = 2

	mainThreadTaskBuffer = 16
)

var (
	isInited = false

	isSdlButtonLeftDown   = false
	isSdlButtonMiddleDown = false
	isSdlButtonRightDown  = false
)

type Window struct {
	SDLWin         *sdl.Window
	GlCtx          sdl.GLContext
	EventCallbacks []func(sdl.Event)

	Pointer  PointerHandler
	Viewport ViewportHandler

	needsRedraw    bool
	uiFramesLeft   int
	mainThreadJobs chan func()
	wakeEventType  uint32
}

// RequestRedraw marks the window dirty. Multiple requests before the next frame draw one frame.
// Must be called on the main thread.
func (w *Window) RequestRedraw() {
	w.needsRedraw = true
}

// NeedsFrame reports whether the loop has a frame to draw
func (w *Window) NeedsFrame() bool {
	return w.needsRedraw || w.uiFramesLeft > 0
}

// RunOnMainThread queues fn to run on the thread owning the GL context and wakes the loop.
// Safe to call from any goroutine. The task is dropped if the queue is full.
func (w *Window) RunOnMainThread(fn func()) {

	select {
	case w.mainThreadJobs <- fn:
	default:
		logging.WarnLog.Println("Main thread task queue is full, dropping task")
		return
	}

	// SDL_PushEvent is thread safe, and a waiting loop returns on it
	sdl.PushEvent(&sdl.UserEvent{Type: w.wakeEventType})
}

func (w *Window) runMainThreadJobs() {
	for {
		select {
		case fn := <-w.mainThreadJobs:
			fn()
		default:
			return
		}
	}
}

// handleInputs processes all pending events. With wait set it blocks until at least one event arrives.
func (w *Window) handleInputs(wait bool) {

	imIo := imgui.CurrentIO()

	imguiCaptureMouse := imIo.WantCaptureMouse()
	imguiCaptureKeyboard := imIo.WantCaptureKeyboard()
	input.EventLoopStart(imguiCaptureKeyboard)

	// If imgui captures the keyboard mid key press we never see the key up event,
	// so forget held keys instead of leaving them stuck down.
	if imguiCaptureKeyboard {
		input.ClearKeyboardState()
	}

	if wait {
		if event := sdl.WaitEvent(); event != nil {
			w.handleEvent(event, imguiCaptureMouse, imguiCaptureKeyboard)
		}
	}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		w.handleEvent(event, imguiCaptureMouse, imguiCaptureKeyboard)
	}

	x, y, _ := sdl.GetMouseState()
	imIo.SetMousePos(imgui.Vec2{X: float32(x), Y: float32(y)})

	// If a mouse press event came, always pass it as "mouse held this frame", so we don't miss click-release events that are shorter than 1 frame.
	imIo.SetMouseButtonDown(imgui.MouseButtonLeft, isSdlButtonLeftDown)
	imIo.SetMouseButtonDown(imgui.MouseButtonRight, isSdlButtonRightDown)
	imIo.SetMouseButtonDown(imgui.MouseButtonMiddle, isSdlButtonMiddleDown)
}

func (w *Window) handleEvent(event sdl.Event, imguiCaptureMouse, imguiCaptureKeyboard bool) {

	imIo := imgui.CurrentIO()

	//Fire callbacks
	for i := 0; i < len(w.EventCallbacks); i++ {
		w.EventCallbacks[i](event)
	}

	//Internal processing
	switch e := event.(type) {

	case *sdl.MouseWheelEvent:

		if !imguiCaptureMouse && w.Pointer != nil {
			w.Pointer.WheelScrolled(wheelDeltaY(e))
		}

		imIo.AddMouseWheelDelta(float32(e.X), float32(e.Y))
		w.uiFramesLeft = uiSettleFrames

	case *sdl.KeyboardEvent:

		if !imguiCaptureKeyboard {
			input.HandleKeyboardEvent(e)
		}

		imIo.AddKeyEvent(nmageimgui.SdlScancodeToImGuiKey(e.Keysym.Scancode), e.Type == sdl.KEYDOWN)

		setImguiModifier(e.Keysym.Sym, e.Type == sdl.KEYDOWN)

		w.uiFramesLeft = uiSettleFrames

	case *sdl.TextInputEvent:
		imIo.AddInputCharactersUTF8(e.GetText())
		w.uiFramesLeft = uiSettleFrames

	case *sdl.MouseButtonEvent:

		isPressed := e.State == sdl.PRESSED

		if e.Button == sdl.BUTTON_LEFT {
			isSdlButtonLeftDown = isPressed
		} else if e.Button == sdl.BUTTON_MIDDLE {
			isSdlButtonMiddleDown = isPressed
		} else if e.Button == sdl.BUTTON_RIGHT {
			isSdlButtonRightDown = isPressed
		}

		if isPressed && !imguiCaptureMouse && w.Pointer != nil {
			_, _, state := sdl.GetMouseState()
			w.Pointer.PointerPressed(e.X, e.Y, sdlButtonToMask(e.Button)|sdlStateToMask(state))
		}

		w.uiFramesLeft = uiSettleFrames

	case *sdl.MouseMotionEvent:

		if !imguiCaptureMouse && w.Pointer != nil {
			w.Pointer.PointerMoved(e.X, e.Y, sdlStateToMask(e.State))
		}

		w.uiFramesLeft = uiSettleFrames

	case *sdl.WindowEvent:

		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			w.handleWindowResize()
		} else if e.Event == sdl.WINDOWEVENT_EXPOSED {
			w.RequestRedraw()
		}

	case *sdl.UserEvent:

		if e.Type == w.wakeEventType {
			w.runMainThreadJobs()
		}

	case *sdl.QuitEvent:
		input.HandleQuitEvent(e)
	}
}

func setImguiModifier(sym sdl.Keycode, isDown bool) {

	imIo := imgui.CurrentIO()
	switch sym {
	case sdl.K_LCTRL, sdl.K_RCTRL:
		imIo.SetKeyCtrl(isDown)
	case sdl.K_LSHIFT, sdl.K_RSHIFT:
		imIo.SetKeyShift(isDown)
	case sdl.K_LALT, sdl.K_RALT:
		imIo.SetKeyAlt(isDown)
	case sdl.K_LGUI, sdl.K_RGUI:
		imIo.SetKeySuper(isDown)
	}
}

func (w *Window) handleWindowResize() {

	fbWidth, fbHeight := w.SDLWin.GLGetDrawableSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}

	gl.Viewport(0, 0, fbWidth, fbHeight)
	if w.Viewport != nil {
		w.Viewport.Resize(fbWidth, fbHeight)
	}

	w.RequestRedraw()
}

func (w *Window) Destroy() error {

	if w.GlCtx != nil {
		sdl.GLDeleteContext(w.GlCtx)
		w.GlCtx = nil
	}

	return w.SDLWin.Destroy()
}

func Init() error {

	isInited = true

	runtime.LockOSThread()
	timing.Init()
	err := initSDL()

	return err
}

func initSDL() error {

	err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO)
	if err != nil {
		return err
	}

	sdl.ShowCursor(1)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)

	sdl.GLSetAttribute(sdl.GL_RED_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	// Allows us to do MSAA
	sdl.GLSetAttribute(sdl.GL_MULTISAMPLEBUFFERS, 1)
	sdl.GLSetAttribute(sdl.GL_MULTISAMPLESAMPLES, 4)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	return nil
}

func CreateOpenGLWindow(title string, x, y, width, height int32, flags WindowFlags) (*Window, error) {
	return createWindow(title, x, y, width, height, WindowFlags_OPENGL|flags)
}

func CreateOpenGLWindowCentered(title string, width, height int32, flags WindowFlags) (*Window, error) {
	return createWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, WindowFlags_OPENGL|flags)
}

func createWindow(title string, x, y, width, height int32, flags WindowFlags) (*Window, error) {

	assert.T(isInited, "engine.Init() was not called!")

	sdlWin, err := sdl.CreateWindow(title, x, y, width, height, uint32(flags))
	if err != nil {
		return nil, err
	}

	win := &Window{
		SDLWin:         sdlWin,
		EventCallbacks: make([]func(sdl.Event), 0),
		mainThreadJobs: make(chan func(), mainThreadTaskBuffer),
		wakeEventType:  sdl.RegisterEvents(1),
	}

	win.GlCtx, err = sdlWin.GLCreateContext()
	if err != nil {
		sdlWin.Destroy()
		return nil, err
	}

	err = initOpenGL()
	if err != nil {
		win.Destroy()
		return nil, err
	}

	// Get rid of the blinding white startup screen (unfortunately there is still one frame of white)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	sdlWin.GLSwap()

	return win, nil
}

func initOpenGL() error {

	if err := gl.Init(); err != nil {
		return err
	}

	gl.ClearColor(0, 0, 0, 1)
	return nil
}

func SetVSync(enabled bool) {

	if enabled {
		sdl.GLSetSwapInterval(1)
	} else {
		sdl.GLSetSwapInterval(0)
	}
}

func SetMSAA(isEnabled bool) {

	if isEnabled {
		gl.Enable(gl.MULTISAMPLE)
	} else {
		gl.Disable(gl.MULTISAMPLE)
	}
}
