//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

const binaryName = "pyramid"

type Build mg.Namespace

// Builds the viewer binary into the repo root.
func (Build) Release() error {
	_, err := executeCmd("go", withArgs("build", "-o", binaryName, "."), withStream())
	return err
}

// Builds with debug assertions enabled.
func (Build) Debug() error {
	_, err := executeCmd("go", withArgs("build", "-tags", "debug", "-o", binaryName, "."), withStream())
	return err
}
