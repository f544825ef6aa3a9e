//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Lexicon is the namespace for lexicon cache targets.
type Lexicon mg.Namespace

// Build parses the raw lexicon into assets/ once, reusing an existing cache.
func (Lexicon) Build() error {
	mg.Deps(Init, Build)
	return sh.RunV(binPath, "lexicon", "build")
}

// Rebuild reparses the raw lexicon and rewrites the cache.
func (Lexicon) Rebuild() error {
	mg.Deps(Init, Build)
	return sh.RunV(binPath, "lexicon", "build", "--force")
}

// Inspect prints word counts per grammar tag.
func (Lexicon) Inspect() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "lexicon", "inspect")
}

// Sample writes a sample article to output/ using the default settings.
func Sample() error {
	mg.Deps(Init, Build)
	fmt.Println("[generate] Writing a sample article to output/.")
	return sh.RunV(binPath, "generate", "--output-dir", "output", "--seed", "1")
}
