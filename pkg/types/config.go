// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration shared by the CLI and the
// extraction pipeline.
package types

import "strings"

const (
	// DefaultQuality replaces any requested quality outside [MinQuality, MaxQuality].
	DefaultQuality = 90

	// MinQuality and MaxQuality bound the accepted JPEG quality.
	MinQuality = 1
	MaxQuality = 100

	// DefaultMinSide is the minimum width and height, in pixels, of an image worth keeping.
	DefaultMinSide = 500

	// DefaultMaxLabelLength caps the reference label used as a filename prefix.
	DefaultMaxLabelLength = 20
)

// ImageFormat is the requested output encoding, lower-cased.
type ImageFormat string

const (
	FormatJPG  ImageFormat = "jpg"
	FormatJPEG ImageFormat = "jpeg"
	FormatPNG  ImageFormat = "png"
)

// ParseImageFormat lower-cases s. Unrecognised formats are kept as given;
// Extension and IsPNG decide how they are written.
func ParseImageFormat(s string) ImageFormat {
	return ImageFormat(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether f is one of jpg, jpeg or png.
func (f ImageFormat) Known() bool {
	switch f {
	case FormatJPG, FormatJPEG, FormatPNG:
		return true
	}
	return false
}

// IsPNG reports whether images should be PNG encoded. Everything else is JPEG.
func (f ImageFormat) IsPNG() bool { return f == FormatPNG }

// Extension returns the filename extension, without the dot. Unknown
// formats fall back to "jpg".
func (f ImageFormat) Extension() string {
	if f.Known() {
		return string(f)
	}
	return string(FormatJPG)
}

// ExtractionConfig holds settings for one extraction run. The CLI fills
// OutputDir, Format and Quality from positional arguments; the remaining
// fields come from the config file or PDFIMAGES_* environment variables.
type ExtractionConfig struct {
	// OutputDir is the flat directory that receives image files. Created if missing.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Format is the requested output format.
	Format ImageFormat `json:"format" yaml:"format"`

	// Quality is the JPEG quality in [1,100]. Ignored for PNG.
	Quality int `json:"quality" yaml:"quality"`

	// MinSide is the minimum width and height of a kept image (default 500).
	MinSide int `json:"min_side" yaml:"min_side"`

	// MaxLabelLength caps the filename prefix derived from page text (default 20).
	MaxLabelLength int `json:"max_label_length" yaml:"max_label_length"`

	// DefaultQuality replaces an out-of-range Quality (default 90).
	DefaultQuality int `json:"default_quality" yaml:"default_quality"`
}

// DefaultExtractionConfig returns the built-in defaults with no output
// directory and JPEG output.
func DefaultExtractionConfig() ExtractionConfig {
	return ExtractionConfig{
		Format:         FormatJPG,
		Quality:        DefaultQuality,
		MinSide:        DefaultMinSide,
		MaxLabelLength: DefaultMaxLabelLength,
		DefaultQuality: DefaultQuality,
	}
}

// WithDefaults fills zero-valued tuning fields with the built-in defaults.
func (c ExtractionConfig) WithDefaults() ExtractionConfig {
	if c.Format == "" {
		c.Format = FormatJPG
	}
	if c.MinSide <= 0 {
		c.MinSide = DefaultMinSide
	}
	if c.MaxLabelLength <= 0 {
		c.MaxLabelLength = DefaultMaxLabelLength
	}
	if c.DefaultQuality < MinQuality || c.DefaultQuality > MaxQuality {
		c.DefaultQuality = DefaultQuality
	}
	return c
}

// QualityInRange reports whether q is an accepted JPEG quality.
func QualityInRange(q int) bool {
	return q >= MinQuality && q <= MaxQuality
}
