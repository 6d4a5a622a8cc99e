package panel

import (
	"testing"

	"github.com/bloeys/glpyramid/controller"
)

func newTestPanel() (*Panel, *controller.Controller, *int) {

	redraws := 0
	c := controller.New(controller.DefaultOptions(), func() { redraws++ })
	p := New(c, controller.DefaultOptions().InitialColor)
	return p, c, &redraws
}

func TestInitialSliders(t *testing.T) {

	p, _, _ := newTestPanel()

	want := [4]int32{255, 0, 0, 255}
	if p.Channels != want {
		t.Errorf("got channels %v, want %v", p.Channels, want)
	}

	if p.Rotations != [3]int32{} {
		t.Errorf("got rotations %v, want zeros", p.Rotations)
	}
}

func TestChannelSlidersDriveColor(t *testing.T) {

	tests := []struct {
		channel int
		value   int32
	}{
		{0, 0},
		{1, 255},
		{2, 51},
		{3, 102},
	}

	for _, tt := range tests {
		t.Run(channelLabels[tt.channel], func(t *testing.T) {

			p, c, redraws := newTestPanel()
			p.Channels[tt.channel] = tt.value
			p.ChannelChanged(tt.channel)

			got := c.Color().Data[tt.channel]
			want := float32(tt.value) / 255
			if got != want {
				t.Errorf("got component %v, want %v", got, want)
			}

			if *redraws != 1 {
				t.Errorf("got %d redraws, want 1", *redraws)
			}
		})
	}
}

func TestRotationFollowsController(t *testing.T) {

	p, c, _ := newTestPanel()

	c.SetXRotation(160)
	c.SetYRotation(-16)
	c.SetZRotation(controller.FullTurn + 5)

	want := [3]int32{160, controller.FullTurn - 16, 5}
	if p.Rotations != want {
		t.Errorf("got rotations %v, want %v", p.Rotations, want)
	}

	// Pointer drags reach the panel through the same notifications
	c.PointerPressed(0, 0, controller.ButtonPrimary)
	c.PointerMoved(10, 20, controller.ButtonPrimary)
	if p.Rotations[controller.AxisX] != 180 || p.Rotations[controller.AxisY] != controller.FullTurn-6 {
		t.Errorf("got rotations %v after drag", p.Rotations)
	}
}

func TestRotationSliderDrivesController(t *testing.T) {

	p, c, redraws := newTestPanel()

	p.Rotations[controller.AxisY] = 720
	p.RotationChanged(controller.AxisY)

	if c.YRotation() != 720 {
		t.Errorf("got y rotation %d, want 720", c.YRotation())
	}

	if *redraws != 1 {
		t.Errorf("got %d redraws, want 1", *redraws)
	}

	// Same value again is a no-op in the controller
	p.RotationChanged(controller.AxisY)
	if *redraws != 1 {
		t.Errorf("unchanged rotation should not redraw, got %d redraws", *redraws)
	}
}

func TestClose(t *testing.T) {

	p, c, _ := newTestPanel()
	p.Close()

	c.SetXRotation(32)
	if p.Rotations[controller.AxisX] != 0 {
		t.Errorf("closed panel still follows the controller: %v", p.Rotations)
	}

	// Closing twice is fine
	p.Close()
}

func TestRotationText(t *testing.T) {

	tests := []struct {
		angle int32
		want  string
	}{
		{0, "0 (0.00 deg)"},
		{16, "16 (1.00 deg)"},
		{1440, "1440 (90.00 deg)"},
		{8, "8 (0.50 deg)"},
	}

	for _, tt := range tests {
		if got := RotationText(tt.angle); got != tt.want {
			t.Errorf("RotationText(%d) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}
