// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imaging decodes, downsizes and encodes extracted page images.
package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// ShrinkFactor is applied to the dominant side of every normalized image.
const ShrinkFactor = 0.7

// TargetSize returns the dimensions Normalize would produce for a w×h image
// and whether a resize is needed at all. The dominant side becomes
// floor(0.7 * max(w, h)); the minor side keeps the aspect ratio, rounded down.
func TargetSize(w, h int) (nw, nh int, resize bool) {
	if w <= 0 || h <= 0 {
		return w, h, false
	}

	maxSize := int(float64(max(w, h)) * ShrinkFactor)
	if maxSize < 1 {
		return w, h, false
	}
	if w <= maxSize && h <= maxSize {
		return w, h, false
	}

	if w > h {
		nw = maxSize
		nh = int(float64(maxSize) * (float64(h) / float64(w)))
	} else {
		nh = maxSize
		nw = int(float64(maxSize) * (float64(w) / float64(h)))
	}
	return max(nw, 1), max(nh, 1), true
}

// Normalize shrinks img to TargetSize using Catmull-Rom resampling. Images
// that need no resize, including degenerate ones, are returned as is.
func Normalize(img image.Image) image.Image {
	b := img.Bounds()
	nw, nh, resize := TargetSize(b.Dx(), b.Dy())
	if !resize {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
