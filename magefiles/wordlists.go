//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Wordlists builds the CLI and runs the full extraction pipeline,
// downloading WordNet on first use.
func Wordlists() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "build")
}

// Corpus reports the state of the local WordNet index.
func Corpus() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "corpus", "status")
}
