// The input package tracks keyboard and quit state between event loop passes.
//
// Functions come in two forms, 'xy' and 'xyCaptured'. The captured form reports
// keys even while the UI has keyboard focus, the plain form returns false then.
// Use the plain form for app shortcuts so typing into a UI field doesn't trigger them.
//
// Pointer input is not tracked here, the engine forwards it to its handlers directly.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

type keyState struct {
	isDown bool

	// Only true during the pass the key changed in
	wasPressed  bool
	wasReleased bool
}

var (
	keys = make(map[sdl.Keycode]keyState)

	isQuitRequested    bool
	isKeyboardCaptured bool
)

// EventLoopStart resets per-pass state. Called before each batch of events is handled.
func EventLoopStart(keyboardGotCaptured bool) {

	isKeyboardCaptured = keyboardGotCaptured
	isQuitRequested = false

	for kc, ks := range keys {

		// Released keys carry no more information
		if !ks.isDown {
			delete(keys, kc)
			continue
		}

		ks.wasPressed = false
		ks.wasReleased = false
		keys[kc] = ks
	}
}

func ClearKeyboardState() {
	clear(keys)
}

func HandleQuitEvent(e *sdl.QuitEvent) {
	isQuitRequested = true
}

func IsKeyboardCaptured() bool {
	return isKeyboardCaptured
}

func IsQuitClicked() bool {
	return isQuitRequested
}

func HandleKeyboardEvent(e *sdl.KeyboardEvent) {

	ks := keys[e.Keysym.Sym]

	// Auto repeat doesn't count as a new press
	if e.Repeat != 0 {
		ks.isDown = e.State == sdl.PRESSED
	} else if e.State == sdl.PRESSED {
		ks.isDown = true
		ks.wasPressed = true
	} else {
		ks.isDown = false
		ks.wasReleased = true
	}

	keys[e.Keysym.Sym] = ks
}

func KeyClicked(kc sdl.Keycode) bool {
	return !isKeyboardCaptured && KeyClickedCaptured(kc)
}

func KeyClickedCaptured(kc sdl.Keycode) bool {
	return keys[kc].wasPressed
}

func KeyReleased(kc sdl.Keycode) bool {
	return !isKeyboardCaptured && KeyReleasedCaptured(kc)
}

func KeyReleasedCaptured(kc sdl.Keycode) bool {
	return keys[kc].wasReleased
}

func KeyDown(kc sdl.Keycode) bool {
	return !isKeyboardCaptured && KeyDownCaptured(kc)
}

func KeyDownCaptured(kc sdl.Keycode) bool {
	return keys[kc].isDown
}
