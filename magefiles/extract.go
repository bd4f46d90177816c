//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const sampleDoc = "testdata/sample.txt"

// Extract builds the CLI and runs it on testdata/sample.txt in both modes.
// Requires ANTHROPIC_API_KEY (or a key under .secrets/).
func Extract() error {
	mg.Deps(Build)

	bin := filepath.Join(binDir, binName)
	for _, mode := range []string{"single-shot", "tools"} {
		out := filepath.Join(binDir, "sample-"+mode+".csv")
		fmt.Printf("[extract] %s -> %s\n", mode, out)
		if err := sh.RunV(bin, "run", sampleDoc, "--mode", mode, "--output", out, "--sort"); err != nil {
			return fmt.Errorf("running %s mode: %w", mode, err)
		}
	}
	return nil
}
