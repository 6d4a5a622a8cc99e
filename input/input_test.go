package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func keyEvent(kc sdl.Keycode, state uint8, repeat uint8) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{
		State:  state,
		Repeat: repeat,
		Keysym: sdl.Keysym{Sym: kc},
	}
}

func TestKeyClickedLastsOnePass(t *testing.T) {

	ClearKeyboardState()
	EventLoopStart(false)

	HandleKeyboardEvent(keyEvent(sdl.K_ESCAPE, sdl.PRESSED, 0))
	if !KeyClicked(sdl.K_ESCAPE) {
		t.Fatal("expected escape clicked")
	}

	if !KeyDown(sdl.K_ESCAPE) {
		t.Fatal("expected escape down")
	}

	EventLoopStart(false)
	if KeyClicked(sdl.K_ESCAPE) {
		t.Fatal("click should be cleared on the next pass")
	}

	if !KeyDown(sdl.K_ESCAPE) {
		t.Fatal("key held across passes should stay down")
	}

	HandleKeyboardEvent(keyEvent(sdl.K_ESCAPE, sdl.RELEASED, 0))
	if !KeyReleased(sdl.K_ESCAPE) || KeyDown(sdl.K_ESCAPE) {
		t.Fatal("expected escape released")
	}
}

func TestClickShorterThanAPass(t *testing.T) {

	ClearKeyboardState()
	EventLoopStart(false)

	HandleKeyboardEvent(keyEvent(sdl.K_HOME, sdl.PRESSED, 0))
	HandleKeyboardEvent(keyEvent(sdl.K_HOME, sdl.RELEASED, 0))
	if !KeyClicked(sdl.K_HOME) {
		t.Fatal("press and release in one pass should still be a click")
	}

	if KeyDown(sdl.K_HOME) {
		t.Fatal("key should not be down after release")
	}

	EventLoopStart(false)
	if KeyClicked(sdl.K_HOME) || KeyReleased(sdl.K_HOME) {
		t.Fatal("state should be gone on the next pass")
	}
}

func TestRepeatIsNotAClick(t *testing.T) {

	ClearKeyboardState()
	EventLoopStart(false)

	HandleKeyboardEvent(keyEvent(sdl.K_HOME, sdl.PRESSED, 1))
	if KeyClicked(sdl.K_HOME) {
		t.Fatal("repeat event should not count as a click")
	}

	if !KeyDown(sdl.K_HOME) {
		t.Fatal("repeat still means the key is down")
	}
}

func TestCapturedKeyboard(t *testing.T) {

	ClearKeyboardState()
	EventLoopStart(true)

	HandleKeyboardEvent(keyEvent(sdl.K_HOME, sdl.PRESSED, 0))
	if KeyClicked(sdl.K_HOME) {
		t.Error("plain form should ignore keys while captured")
	}

	if !KeyClickedCaptured(sdl.K_HOME) {
		t.Error("captured form should still report the click")
	}

	if !IsKeyboardCaptured() {
		t.Error("expected keyboard captured")
	}
}

func TestQuit(t *testing.T) {

	EventLoopStart(false)
	HandleQuitEvent(&sdl.QuitEvent{})
	if !IsQuitClicked() {
		t.Fatal("expected quit")
	}

	EventLoopStart(false)
	if IsQuitClicked() {
		t.Fatal("quit should reset each pass")
	}
}
