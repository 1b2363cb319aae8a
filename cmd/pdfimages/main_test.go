// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfimages/internal/pdftest"
)

// execute runs the root command with args and returns everything written
// to stdout and stderr.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func fixture(t *testing.T) (pdfPath, dir string) {
	t.Helper()
	dir = t.TempDir()
	pdfPath = pdftest.Write(t, dir, "catalogue.pdf",
		pdftest.Page{Text: "Product #12345", Images: []pdftest.Image{{Width: 800, Height: 600}}},
		pdftest.Page{Images: []pdftest.Image{{Width: 300, Height: 300}}},
	)
	return pdfPath, dir
}

func names(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pdfimages dev\n", out)
}

func TestConfig_Defaults(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "min_side: 500")
	assert.Contains(t, out, "max_label_length: 20")
	assert.Contains(t, out, "default_quality: 90")
}

func TestConfig_EnvOverride(t *testing.T) {
	t.Setenv("PDFIMAGES_MIN_SIDE", "250")
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "min_side: 250")
}

func TestRun_UnknownFormat(t *testing.T) {
	pdfPath, dir := fixture(t)
	outDir := filepath.Join(dir, "out")

	out, err := execute(t, pdfPath, outDir, "BMP", "75")
	require.NoError(t, err)

	assert.Contains(t, out, "Using format: bmp, quality: 75")
	assert.Contains(t, out, "Text on Page 2:\nNo text found on this page.")
	assert.Equal(t, []string{"12345_1_0.jpg"}, names(t, outDir))
}

func TestRun_QualityOutOfRange(t *testing.T) {
	pdfPath, dir := fixture(t)
	outDir := filepath.Join(dir, "out")

	out, err := execute(t, pdfPath, outDir, "png", "101")
	require.NoError(t, err)

	assert.Contains(t, out, "quality 101 is invalid, setting to 90")
	assert.Contains(t, out, "Using format: png, quality: 90")
	assert.Equal(t, []string{"12345_1_0.png"}, names(t, outDir))
}

func TestRun_ReportsFailedImages(t *testing.T) {
	pdfPath, dir := fixture(t)
	outDir := filepath.Join(dir, "out")
	// A directory in the way makes writing the only qualifying image fail.
	require.NoError(t, os.MkdirAll(filepath.Join(outDir, "12345_1_0.jpg"), 0o755))

	out, err := execute(t, pdfPath, outDir, "jpg", "90")
	require.NoError(t, err)

	assert.Contains(t, out, "error saving image")
	assert.Contains(t, out, "Summary: 2 pages, 0 saved, 1 filtered, 1 failed (total images: 2)")
	assert.Contains(t, out, "1 of 2 images could not be saved")
}

func TestRun_Errors(t *testing.T) {
	pdfPath, dir := fixture(t)

	_, err := execute(t, pdfPath, dir, "jpg", "high")
	assert.ErrorContains(t, err, "not an integer")

	_, err = execute(t, pdfPath, dir, "jpg")
	assert.Error(t, err)

	_, err = execute(t, filepath.Join(dir, "missing.pdf"), dir, "jpg", "90")
	assert.ErrorContains(t, err, "opening PDF")
}
