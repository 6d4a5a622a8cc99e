//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the viewer with the config in the repo root.
func (Run) Viewer() error {
	fmt.Println("Run viewer...")
	_, err := executeCmd("go", withArgs("run", ".", "-config", "pyramid.toml"), withStream())
	return err
}

// Runs the viewer with debug assertions and debug logging.
func (Run) Debug() error {
	_, err := executeCmd("go", withArgs("run", "-tags", "debug", ".", "-config", "pyramid.toml", "-log-level", "debug"), withStream())
	return err
}
