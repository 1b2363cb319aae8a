//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Sample builds the CLI and extracts images from $PDF into $OUT (default
// "images"), using $FORMAT (default jpg) and $QUALITY (default 90).
func Sample() error {
	mg.Deps(Build)

	pdf := os.Getenv("PDF")
	if pdf == "" {
		return fmt.Errorf("PDF is not set: run PDF=path/to/file.pdf mage sample")
	}
	out := envOr("OUT", "images")
	format := envOr("FORMAT", "jpg")
	quality := envOr("QUALITY", "90")

	return sh.RunV(filepath.Join(binDir, binName), pdf, out, format, quality)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
