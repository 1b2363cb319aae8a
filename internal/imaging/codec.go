// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pdiddy/pdfimages/pkg/types"
)

// Decode decodes raw image bytes and returns the image with the name of
// the detected codec (e.g. "jpeg", "png", "tiff").
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("decoding image: empty data")
	}
	img, kind, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decoding image: %w", err)
	}
	return img, kind, nil
}

// Dimensions returns the pixel size of encoded image data without decoding
// the pixels.
func Dimensions(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("reading image config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// Encode writes img to w. PNG output ignores quality; every other format
// is written as JPEG at the given quality.
func Encode(w io.Writer, img image.Image, format types.ImageFormat, quality int) error {
	if format.IsPNG() {
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding png: %w", err)
		}
		return nil
	}
	if !types.QualityInRange(quality) {
		return fmt.Errorf("encoding jpeg: quality %d outside [%d,%d]", quality, types.MinQuality, types.MaxQuality)
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("encoding jpeg: %w", err)
	}
	return nil
}
