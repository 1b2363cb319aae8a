// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestImageFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ImageFormat
		known   bool
		png     bool
		wantExt string
	}{
		{in: "jpg", want: FormatJPG, known: true, wantExt: "jpg"},
		{in: "JPEG", want: FormatJPEG, known: true, wantExt: "jpeg"},
		{in: " Png ", want: FormatPNG, known: true, png: true, wantExt: "png"},
		{in: "bmp", want: "bmp", wantExt: "jpg"},
		{in: "", want: "", wantExt: "jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f := ParseImageFormat(tt.in)
			if f != tt.want {
				t.Errorf("ParseImageFormat(%q) = %q, want %q", tt.in, f, tt.want)
			}
			if f.Known() != tt.known {
				t.Errorf("Known() = %v, want %v", f.Known(), tt.known)
			}
			if f.IsPNG() != tt.png {
				t.Errorf("IsPNG() = %v, want %v", f.IsPNG(), tt.png)
			}
			if got := f.Extension(); got != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", got, tt.wantExt)
			}
		})
	}
}

func TestQualityInRange(t *testing.T) {
	for _, q := range []int{1, 50, 90, 100} {
		if !QualityInRange(q) {
			t.Errorf("QualityInRange(%d) = false, want true", q)
		}
	}
	for _, q := range []int{0, -5, 101, 1000} {
		if QualityInRange(q) {
			t.Errorf("QualityInRange(%d) = true, want false", q)
		}
	}
}

func TestWithDefaults(t *testing.T) {
	got := ExtractionConfig{OutputDir: "out", Quality: 70, DefaultQuality: 500}.WithDefaults()
	want := ExtractionConfig{
		OutputDir:      "out",
		Format:         FormatJPG,
		Quality:        70,
		MinSide:        DefaultMinSide,
		MaxLabelLength: DefaultMaxLabelLength,
		DefaultQuality: DefaultQuality,
	}
	if got != want {
		t.Errorf("WithDefaults() = %+v, want %+v", got, want)
	}

	custom := ExtractionConfig{Format: FormatPNG, MinSide: 200, MaxLabelLength: 8, DefaultQuality: 60}.WithDefaults()
	if custom.MinSide != 200 || custom.MaxLabelLength != 8 || custom.DefaultQuality != 60 || custom.Format != FormatPNG {
		t.Errorf("WithDefaults() overwrote explicit values: %+v", custom)
	}
}
