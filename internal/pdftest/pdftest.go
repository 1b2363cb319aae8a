// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest writes small real PDFs for tests: pages with a line of
// Helvetica text and any number of embedded JPEG images.
package pdftest

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// Image is an embedded image of the given pixel size.
type Image struct {
	Width  int
	Height int
}

// Page describes one page of a fixture document. Empty Text draws no text.
type Page struct {
	Text   string
	Images []Image
}

// Write renders pages into dir/name and returns the file path.
func Write(t testing.TB, dir, name string, pages ...Page) string {
	t.Helper()

	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	doc.SetCompression(false)

	n := 0
	for _, p := range pages {
		doc.AddPage()
		if p.Text != "" {
			doc.Text(40, 60, p.Text)
		}
		y := 80.0
		for _, img := range p.Images {
			data, err := JPEG(img.Width, img.Height, n)
			if err != nil {
				t.Fatalf("encoding fixture image: %v", err)
			}
			ref := fmt.Sprintf("img%d", n)
			opt := gofpdf.ImageOptions{ImageType: "JPG"}
			doc.RegisterImageOptionsReader(ref, opt, bytes.NewReader(data))
			// Draw at a fixed scale; the pixel size is what extraction sees.
			doc.ImageOptions(ref, 40, y, 200, 150, false, opt, 0, "")
			y += 160
			n++
		}
	}

	path := filepath.Join(dir, name)
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("writing fixture PDF: %v", err)
	}
	return path
}

// JPEG returns a w×h gradient encoded as JPEG. seed varies the colours so
// that distinct images never share a byte stream.
func JPEG(w, h, seed int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8((x + seed*40) % 256),
				G: uint8((y + seed*70) % 256),
				B: uint8(seed * 50 % 256),
				A: 255,
			})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
