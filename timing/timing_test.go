package timing

import (
	"testing"
	"time"
)

func TestFrameStartedClampsDT(t *testing.T) {

	Init()

	frameStartTime = time.Now().Add(-10 * time.Second)
	FrameStarted()
	if DT() != 0.25 {
		t.Errorf("DT after long idle = %v, want 0.25", DT())
	}

	frameStartTime = time.Now().Add(-20 * time.Millisecond)
	FrameStarted()
	if DT() <= 0 || DT() > 0.25 {
		t.Errorf("DT = %v, want within (0, 0.25]", DT())
	}
}
