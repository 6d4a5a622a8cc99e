// Package controller owns the viewer's interaction state: rotation angles in
// sixteenths of a degree, zoom and the draw color. Pointer, wheel and color
// channel inputs mutate it, and every effective change asks the host for a redraw.
package controller

import (
	"github.com/bloeys/gglm/gglm"
)

const (
	// AngleUnitsPerDegree is the angle resolution; 16 units make one degree
	AngleUnitsPerDegree = 16
	// FullTurn is one full rotation in angle units
	FullTurn = 360 * AngleUnitsPerDegree

	DefaultZoom     float32 = -5
	DefaultZoomStep float32 = 0.1

	MaxChannelValue = 255
)

// Axis identifies a rotation axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	axisCount
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// Buttons is a pointer button mask as delivered with pointer events.
type Buttons uint32

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonMiddle
	ButtonSecondary
)

func (b Buttons) Has(btns Buttons) bool {
	return b&btns == btns
}

// RotationListener receives the new normalized angle of one axis.
type RotationListener func(angle int)

// DrawState is a snapshot of what the renderer needs for one frame.
type DrawState struct {
	XRot, YRot, ZRot int
	Zoom             float32
	Color            gglm.Vec4
}

type Options struct {
	InitialZoom float32
	ZoomStep    float32
	// InitialColor is RGBA, 0-255 per channel
	InitialColor [4]int
}

func DefaultOptions() Options {
	return Options{
		InitialZoom:  DefaultZoom,
		ZoomStep:     DefaultZoomStep,
		InitialColor: [4]int{255, 0, 0, 255},
	}
}

type Controller struct {
	rot   [axisCount]int
	zoom  float32
	color gglm.Vec4

	opts Options

	lastPosX int32
	lastPosY int32

	nextListenerId uint64
	listeners      [axisCount][]listenerEntry

	requestRedraw func()
}

type listenerEntry struct {
	id uint64
	fn RotationListener
}

// New creates a controller. requestRedraw is called after every state change and may be nil.
func New(opts Options, requestRedraw func()) *Controller {

	if opts.ZoomStep <= 0 {
		opts.ZoomStep = DefaultZoomStep
	}

	if requestRedraw == nil {
		requestRedraw = func() {}
	}

	c := &Controller{
		zoom:          opts.InitialZoom,
		opts:          opts,
		requestRedraw: requestRedraw,
	}

	for i := 0; i < 4; i++ {
		c.color.Data[i] = channelToUnit(opts.InitialColor[i])
	}

	return c
}

// NormalizeAngle wraps angle into [0, FullTurn).
func NormalizeAngle(angle int) int {

	angle %= FullTurn
	if angle < 0 {
		angle += FullTurn
	}

	return angle
}

func channelToUnit(value int) float32 {

	if value < 0 {
		value = 0
	} else if value > MaxChannelValue {
		value = MaxChannelValue
	}

	return float32(value) / MaxChannelValue
}

func (c *Controller) setRotation(axis Axis, angle int) {

	angle = NormalizeAngle(angle)
	if angle == c.rot[axis] {
		return
	}

	c.rot[axis] = angle

	// Listeners may unsubscribe while being notified, so iterate over a copy
	listeners := append([]listenerEntry(nil), c.listeners[axis]...)
	for i := 0; i < len(listeners); i++ {
		listeners[i].fn(angle)
	}

	c.requestRedraw()
}

func (c *Controller) SetXRotation(angle int) {
	c.setRotation(AxisX, angle)
}

func (c *Controller) SetYRotation(angle int) {
	c.setRotation(AxisY, angle)
}

// SetZRotation tracks the z angle and notifies its listeners. Whether it affects
// the model matrix is up to the renderer.
func (c *Controller) SetZRotation(angle int) {
	c.setRotation(AxisZ, angle)
}

// SetRotation is SetXRotation/SetYRotation/SetZRotation keyed by axis.
func (c *Controller) SetRotation(axis Axis, angle int) {
	if axis < 0 || axis >= axisCount {
		return
	}
	c.setRotation(axis, angle)
}

func (c *Controller) Rotation(axis Axis) int {
	return c.rot[axis]
}

func (c *Controller) XRotation() int { return c.rot[AxisX] }
func (c *Controller) YRotation() int { return c.rot[AxisY] }
func (c *Controller) ZRotation() int { return c.rot[AxisZ] }

// Color setters always overwrite and redraw, there is no change detection or notification.

func (c *Controller) SetRed(value int) {
	c.setChannel(0, value)
}

func (c *Controller) SetGreen(value int) {
	c.setChannel(1, value)
}

func (c *Controller) SetBlue(value int) {
	c.setChannel(2, value)
}

func (c *Controller) SetAlpha(value int) {
	c.setChannel(3, value)
}

func (c *Controller) setChannel(index int, value int) {
	c.color.Data[index] = channelToUnit(value)
	c.requestRedraw()
}

func (c *Controller) Color() gglm.Vec4 {
	return c.color
}

func (c *Controller) Zoom() float32 {
	return c.zoom
}

// OnRotationChanged subscribes fn to changes of axis. The returned func unsubscribes.
func (c *Controller) OnRotationChanged(axis Axis, fn RotationListener) (unsubscribe func()) {

	c.nextListenerId++
	id := c.nextListenerId
	c.listeners[axis] = append(c.listeners[axis], listenerEntry{id: id, fn: fn})

	return func() {
		entries := c.listeners[axis]
		for i := 0; i < len(entries); i++ {
			if entries[i].id == id {
				c.listeners[axis] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) OnXRotationChanged(fn RotationListener) func() {
	return c.OnRotationChanged(AxisX, fn)
}

func (c *Controller) OnYRotationChanged(fn RotationListener) func() {
	return c.OnRotationChanged(AxisY, fn)
}

func (c *Controller) OnZRotationChanged(fn RotationListener) func() {
	return c.OnRotationChanged(AxisZ, fn)
}

// PointerPressed starts a drag by recording the position, only while the primary button is held.
func (c *Controller) PointerPressed(x, y int32, buttons Buttons) {

	if !buttons.Has(ButtonPrimary) {
		return
	}

	c.lastPosX = x
	c.lastPosY = y
}

// PointerMoved rotates while the primary button is held. Vertical movement drives
// the x axis and horizontal movement drives the y axis.
func (c *Controller) PointerMoved(x, y int32, buttons Buttons) {

	if !buttons.Has(ButtonPrimary) {
		return
	}

	dx := int(x - c.lastPosX)
	dy := int(y - c.lastPosY)

	c.SetXRotation(c.rot[AxisX] + dy)
	c.SetYRotation(c.rot[AxisY] + dx)

	c.lastPosX = x
	c.lastPosY = y
}

// WheelScrolled steps zoom by a fixed amount regardless of delta magnitude.
// A positive delta brings the pyramid closer.
func (c *Controller) WheelScrolled(yDelta int32) {

	if yDelta > 0 {
		c.zoom += c.opts.ZoomStep
	} else {
		c.zoom -= c.opts.ZoomStep
	}

	c.requestRedraw()
}

// Reset restores the initial rotation and zoom. Color is kept.
func (c *Controller) Reset() {

	c.SetXRotation(0)
	c.SetYRotation(0)
	c.SetZRotation(0)

	c.zoom = c.opts.InitialZoom
	c.requestRedraw()
}

func (c *Controller) State() DrawState {
	return DrawState{
		XRot:  c.rot[AxisX],
		YRot:  c.rot[AxisY],
		ZRot:  c.rot[AxisZ],
		Zoom:  c.zoom,
		Color: c.color,
	}
}
