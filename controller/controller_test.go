package controller

import (
	"math"
	"testing"
)

func newTestController() (*Controller, *int) {
	redraws := 0
	c := New(DefaultOptions(), func() { redraws++ })
	return c, &redraws
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestNormalizeAngle(t *testing.T) {

	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: 0},
		{in: 5, want: 5},
		{in: FullTurn - 1, want: FullTurn - 1},
		{in: FullTurn, want: 0},
		{in: FullTurn + 16, want: 16},
		{in: -1, want: FullTurn - 1},
		{in: -FullTurn, want: 0},
		{in: -3*FullTurn - 160, want: FullTurn - 160},
		{in: 1_000_000_007, want: 1_000_000_007 % FullTurn},
	}

	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		if got != tt.want {
			t.Errorf("NormalizeAngle(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	for a := -3 * FullTurn; a <= 3*FullTurn; a += 37 {
		n := NormalizeAngle(a)
		if n < 0 || n >= FullTurn {
			t.Fatalf("NormalizeAngle(%d) = %d, outside [0, %d)", a, n, FullTurn)
		}

		if (a-n)%FullTurn != 0 {
			t.Fatalf("NormalizeAngle(%d) = %d, not congruent mod %d", a, n, FullTurn)
		}
	}
}

func TestSetRotationNotifiesOnce(t *testing.T) {

	c, redraws := newTestController()

	var got []int
	c.OnXRotationChanged(func(angle int) { got = append(got, angle) })

	c.SetXRotation(100)
	c.SetXRotation(100 + FullTurn)

	if len(got) != 1 || got[0] != 100 {
		t.Errorf("notifications = %v, want [100]", got)
	}

	if *redraws != 1 {
		t.Errorf("redraws = %d, want 1", *redraws)
	}

	if c.XRotation() != 100 {
		t.Errorf("XRotation() = %d, want 100", c.XRotation())
	}
}

func TestSetRotationPerAxis(t *testing.T) {

	c, _ := newTestController()

	var x, y, z []int
	c.OnXRotationChanged(func(angle int) { x = append(x, angle) })
	c.OnYRotationChanged(func(angle int) { y = append(y, angle) })
	c.OnZRotationChanged(func(angle int) { z = append(z, angle) })

	c.SetYRotation(-16)
	c.SetZRotation(FullTurn + 32)

	if len(x) != 0 {
		t.Errorf("x notified: %v", x)
	}

	if len(y) != 1 || y[0] != FullTurn-16 {
		t.Errorf("y notifications = %v", y)
	}

	if len(z) != 1 || z[0] != 32 {
		t.Errorf("z notifications = %v", z)
	}

	// Back to a value equal to the initial one is a no-op for an untouched axis
	c.SetRotation(AxisX, FullTurn)
	if len(x) != 0 {
		t.Errorf("x notified for unchanged angle: %v", x)
	}
}

func TestUnsubscribe(t *testing.T) {

	c, _ := newTestController()

	calls := 0
	unsub := c.OnXRotationChanged(func(int) { calls++ })
	other := 0
	c.OnXRotationChanged(func(int) { other++ })

	c.SetXRotation(1)
	unsub()
	c.SetXRotation(2)

	if calls != 1 {
		t.Errorf("unsubscribed listener called %d times, want 1", calls)
	}

	if other != 2 {
		t.Errorf("remaining listener called %d times, want 2", other)
	}

	// Unsubscribing twice is harmless
	unsub()
}

func TestColorSetters(t *testing.T) {

	c, redraws := newTestController()

	tests := []struct {
		name  string
		set   func(int)
		index int
		in    int
		want  float32
	}{
		{name: "red zero", set: c.SetRed, index: 0, in: 0, want: 0},
		{name: "red full", set: c.SetRed, index: 0, in: 255, want: 1},
		{name: "red half", set: c.SetRed, index: 0, in: 128, want: 128.0 / 255},
		{name: "green", set: c.SetGreen, index: 1, in: 51, want: 0.2},
		{name: "blue", set: c.SetBlue, index: 2, in: 255, want: 1},
		{name: "alpha", set: c.SetAlpha, index: 3, in: 0, want: 0},
		{name: "clamp high", set: c.SetBlue, index: 2, in: 1000, want: 1},
		{name: "clamp low", set: c.SetGreen, index: 1, in: -4, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := *redraws
			tt.set(tt.in)

			got := c.Color().Data[tt.index]
			if !near(got, tt.want) {
				t.Errorf("component %d = %v, want %v", tt.index, got, tt.want)
			}

			if *redraws != before+1 {
				t.Errorf("redraws = %d, want %d", *redraws, before+1)
			}
		})
	}

	if math.Abs(float64(c.Color().Data[0])-0.502) > 1e-3 {
		t.Errorf("red after 128 = %v, want ~0.502", c.Color().Data[0])
	}
}

func TestColorSetterAlwaysRedraws(t *testing.T) {

	c, redraws := newTestController()

	c.SetRed(10)
	c.SetRed(10)

	if *redraws != 2 {
		t.Errorf("redraws = %d, want 2", *redraws)
	}
}

func TestInitialColor(t *testing.T) {

	c, _ := newTestController()

	want := [4]float32{1, 0, 0, 1}
	if c.Color().Data != want {
		t.Errorf("initial color = %v, want %v", c.Color().Data, want)
	}
}

func TestDragMapping(t *testing.T) {

	c, _ := newTestController()

	c.PointerPressed(100, 100, ButtonPrimary)
	c.PointerMoved(110, 105, ButtonPrimary)

	if c.XRotation() != NormalizeAngle(5) {
		t.Errorf("XRotation() = %d, want %d", c.XRotation(), NormalizeAngle(5))
	}

	if c.YRotation() != NormalizeAngle(10) {
		t.Errorf("YRotation() = %d, want %d", c.YRotation(), NormalizeAngle(10))
	}

	// Deltas are relative to the last move, not the press
	c.PointerMoved(100, 95, ButtonPrimary)
	if c.XRotation() != FullTurn-5 || c.YRotation() != 0 {
		t.Errorf("rotation after moving back = (%d, %d), want (%d, 0)", c.XRotation(), c.YRotation(), FullTurn-5)
	}
}

func TestDragIgnoresOtherButtons(t *testing.T) {

	c, redraws := newTestController()

	c.PointerPressed(0, 0, ButtonPrimary)
	c.PointerPressed(50, 50, ButtonSecondary)
	c.PointerMoved(60, 60, ButtonSecondary)
	c.PointerMoved(70, 70, 0)

	if c.XRotation() != 0 || c.YRotation() != 0 || *redraws != 0 {
		t.Errorf("rotation changed without primary button: (%d, %d), redraws=%d", c.XRotation(), c.YRotation(), *redraws)
	}

	// The press with the secondary button did not move the anchor
	c.PointerMoved(1, 2, ButtonPrimary|ButtonSecondary)
	if c.XRotation() != 2 || c.YRotation() != 1 {
		t.Errorf("rotation = (%d, %d), want (2, 1)", c.XRotation(), c.YRotation())
	}
}

func TestWheelZoom(t *testing.T) {

	c, redraws := newTestController()

	if c.Zoom() != -5 {
		t.Fatalf("initial zoom = %v, want -5", c.Zoom())
	}

	c.WheelScrolled(120)
	if !near(c.Zoom(), -4.9) {
		t.Errorf("zoom after scroll up = %v, want -4.9", c.Zoom())
	}

	c.WheelScrolled(-3)
	if !near(c.Zoom(), -5) {
		t.Errorf("zoom after round trip = %v, want -5", c.Zoom())
	}

	c.WheelScrolled(0)
	if !near(c.Zoom(), -5.1) {
		t.Errorf("zoom after zero delta = %v, want -5.1", c.Zoom())
	}

	if *redraws != 3 {
		t.Errorf("redraws = %d, want 3", *redraws)
	}
}

func TestReset(t *testing.T) {

	c, _ := newTestController()
	c.SetXRotation(10)
	c.SetZRotation(20)
	c.SetGreen(255)
	c.WheelScrolled(1)

	var notified []int
	c.OnXRotationChanged(func(angle int) { notified = append(notified, angle) })

	c.Reset()

	s := c.State()
	if s.XRot != 0 || s.YRot != 0 || s.ZRot != 0 || s.Zoom != -5 {
		t.Errorf("state after reset = %+v", s)
	}

	if s.Color.Data[1] != 1 {
		t.Errorf("reset changed color: %v", s.Color.Data)
	}

	if len(notified) != 1 || notified[0] != 0 {
		t.Errorf("reset notifications = %v, want [0]", notified)
	}
}

func TestNilRedrawAndZeroStep(t *testing.T) {

	c := New(Options{InitialZoom: 1}, nil)
	c.WheelScrolled(1)

	if !near(c.Zoom(), 1+DefaultZoomStep) {
		t.Errorf("zoom = %v, want %v", c.Zoom(), 1+DefaultZoomStep)
	}
}
