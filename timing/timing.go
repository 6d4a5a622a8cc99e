// Package timing tracks frame delta time for the UI.
package timing

import "time"

var (
	startTime      time.Time
	frameStartTime time.Time
	dt             float32 = 1.0 / 60
)

func Init() {
	startTime = time.Now()
	frameStartTime = startTime
}

// FrameStarted records the frame start and updates DT with the time since the previous frame started.
// Frames are event driven, so long idle gaps are capped to keep UI animations sane.
func FrameStarted() {

	now := time.Now()
	if !frameStartTime.IsZero() {
		dt = float32(now.Sub(frameStartTime).Seconds())
	}
	frameStartTime = now

	if dt <= 0 {
		dt = 1.0 / 1000
	} else if dt > 0.25 {
		dt = 0.25
	}
}

// DT returns the frame delta time in seconds.
func DT() float32 {
	return dt
}

// ElapsedTime returns the time since Init in seconds.
func ElapsedTime() float64 {
	return time.Since(startTime).Seconds()
}
