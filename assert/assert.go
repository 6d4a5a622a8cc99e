//go:build !debug

// Package assert holds checks for programmer errors. They are only active
// when building with '-tags debug'.
package assert

const Enabled = false

func T(check bool, msg string, args ...any) {
}
