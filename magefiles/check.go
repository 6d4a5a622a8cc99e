//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Check mg.Namespace

// Runs go vet on all packages.
func (Check) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}

// Runs the tests, then again with debug assertions enabled.
func (Check) Test() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}

	_, err := executeCmd("go", withArgs("test", "-tags", "debug", "./..."), withStream())
	return err
}

// Runs vet and the tests.
func (Check) All() {
	mg.SerialDeps(Check.Vet, Check.Test)
}
