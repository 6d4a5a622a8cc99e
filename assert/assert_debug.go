//go:build debug

package assert

import (
	"fmt"

	"github.com/bloeys/glpyramid/logging"
)

// Enabled reports whether assertions are compiled in.
const Enabled = true

// T panics with the formatted message when check is false.
func T(check bool, msg string, args ...any) {
	if check {
		return
	}

	logging.ErrLog.Panicf("Assert failed: %s", fmt.Sprintf(msg, args...))
}
