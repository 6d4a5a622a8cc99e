// Package panel is the viewer's control window: RGBA channel sliders, rotation
// readouts with sliders bound to the controller, the zoom value and a reset button.
package panel

import (
	"fmt"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/bloeys/glpyramid/controller"
)

const (
	WindowName = "Pyramid"
)

var channelLabels = [4]string{"R", "G", "B", "A"}

var rotationLabels = [3]string{"X rotation", "Y rotation", "Z rotation"}

// Controls is what the panel drives. *controller.Controller implements it.
type Controls interface {
	SetRed(value int)
	SetGreen(value int)
	SetBlue(value int)
	SetAlpha(value int)
	SetRotation(axis controller.Axis, angle int)
	OnRotationChanged(axis controller.Axis, fn controller.RotationListener) func()
	Zoom() float32
	Reset()
}

type Panel struct {
	ctrls Controls

	// Slider values. Channels are 0-255, rotations in angle units.
	Channels  [4]int32
	Rotations [3]int32

	unsubscribers []func()
}

// New creates a panel whose rotation sliders follow ctrls through its rotation-changed notifications.
// initialColor is RGBA in 0-255.
func New(ctrls Controls, initialColor [4]int) *Panel {

	p := &Panel{
		ctrls: ctrls,
	}

	for i := 0; i < len(p.Channels); i++ {
		p.Channels[i] = int32(initialColor[i])
	}

	for axis := controller.AxisX; axis <= controller.AxisZ; axis++ {
		p.unsubscribers = append(p.unsubscribers, ctrls.OnRotationChanged(axis, p.rotationUpdater(axis)))
	}

	return p
}

func (p *Panel) rotationUpdater(axis controller.Axis) controller.RotationListener {
	return func(angle int) {
		p.Rotations[axis] = int32(angle)
	}
}

// Close stops listening for rotation changes
func (p *Panel) Close() {

	for _, unsub := range p.unsubscribers {
		unsub()
	}

	p.unsubscribers = nil
}

// ChannelChanged forwards the slider value of channel i (0=R .. 3=A) to the controls
func (p *Panel) ChannelChanged(i int) {

	v := int(p.Channels[i])
	switch i {
	case 0:
		p.ctrls.SetRed(v)
	case 1:
		p.ctrls.SetGreen(v)
	case 2:
		p.ctrls.SetBlue(v)
	case 3:
		p.ctrls.SetAlpha(v)
	}
}

// RotationChanged forwards the slider value of axis to the controls
func (p *Panel) RotationChanged(axis controller.Axis) {
	p.ctrls.SetRotation(axis, int(p.Rotations[axis]))
}

// RotationText formats an angle in sixteenths of a degree for display
func RotationText(angle int32) string {
	return fmt.Sprintf("%d (%.2f deg)", angle, float32(angle)/controller.AngleUnitsPerDegree)
}

// Build emits the panel's widgets. Must be called between the UI frame start and render.
func (p *Panel) Build() {

	imgui.Begin(WindowName)

	imgui.Text("Color")
	for i := 0; i < len(p.Channels); i++ {
		if imgui.SliderInt(channelLabels[i], &p.Channels[i], 0, controller.MaxChannelValue) {
			p.ChannelChanged(i)
		}
	}

	imgui.Spacing()

	imgui.Text("Rotation")
	for axis := controller.AxisX; axis <= controller.AxisZ; axis++ {

		imgui.LabelText(rotationLabels[axis], RotationText(p.Rotations[axis]))

		if imgui.SliderInt("##"+rotationLabels[axis], &p.Rotations[axis], 0, controller.FullTurn-1) {
			p.RotationChanged(axis)
		}
	}

	imgui.Spacing()

	imgui.LabelText("Zoom", fmt.Sprintf("%.2f", p.ctrls.Zoom()))
	if imgui.Button("Reset view") {
		p.ctrls.Reset()
	}

	imgui.End()
}
