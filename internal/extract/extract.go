// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract runs the page image pipeline: for every page it prints
// the text, derives a reference label, and writes each embedded image that
// is large enough, downsized, to the output directory.
package extract

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/pdfimages/internal/imaging"
	"github.com/pdiddy/pdfimages/internal/reference"
	"github.com/pdiddy/pdfimages/internal/source"
	"github.com/pdiddy/pdfimages/pkg/types"
)

// ruleWidth is the length of the separator lines in the page report.
const ruleWidth = 50

// Summary counts what a run did with the images it saw.
type Summary struct {
	Pages    int
	Saved    int
	Filtered int
	Failed   int
}

// Total returns the number of images seen.
func (s Summary) Total() int {
	return s.Saved + s.Filtered + s.Failed
}

// HasFailures reports whether any image could not be decoded or written.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Extractor writes the qualifying images of a document to a directory.
// The page report goes to out; warnings and per-image failures go to the
// logger.
type Extractor struct {
	cfg types.ExtractionConfig
	out io.Writer
	log zerolog.Logger
}

// New returns an Extractor for cfg. A quality outside [1,100] is replaced
// by cfg.DefaultQuality with a warning.
func New(cfg types.ExtractionConfig, out io.Writer, logger zerolog.Logger) *Extractor {
	cfg = cfg.WithDefaults()
	if !types.QualityInRange(cfg.Quality) {
		logger.Warn().
			Int("quality", cfg.Quality).
			Int("fallback", cfg.DefaultQuality).
			Msgf("quality %d is invalid, setting to %d", cfg.Quality, cfg.DefaultQuality)
		cfg.Quality = cfg.DefaultQuality
	}
	return &Extractor{cfg: cfg, out: out, log: logger}
}

// Config returns the effective configuration after defaults and the
// quality fallback were applied.
func (e *Extractor) Config() types.ExtractionConfig { return e.cfg }

// Filename returns the base name of the file for image index on the
// zero-based page: {label}_{page+1}_{index}.{ext}, with label cut to
// maxLabel runes.
func Filename(label string, page, index int, format types.ImageFormat, maxLabel int) string {
	return fmt.Sprintf("%s_%d_%d.%s", reference.Truncate(label, maxLabel), page+1, index, format.Extension())
}

// Run processes every page of doc in order and prints the page report,
// followed by a one-line summary.
// It creates the output directory first. A Document error aborts the run;
// per-image failures are logged and counted.
func (e *Extractor) Run(ctx context.Context, doc source.Document) (Summary, error) {
	var sum Summary

	if err := os.MkdirAll(e.cfg.OutputDir, 0o755); err != nil {
		return sum, fmt.Errorf("creating output directory %s: %w", e.cfg.OutputDir, err)
	}

	fmt.Fprintf(e.out, "Using format: %s, quality: %d\n", e.cfg.Format, e.cfg.Quality)

	for page := 0; page < doc.PageCount(); page++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		text, err := doc.PageText(page)
		if err != nil {
			return sum, fmt.Errorf("page %d: %w", page+1, err)
		}

		fmt.Fprintf(e.out, "Text on Page %d:\n", page+1)
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			fmt.Fprintln(e.out, trimmed)
		} else {
			fmt.Fprintln(e.out, "No text found on this page.")
		}
		fmt.Fprintln(e.out, strings.Repeat("-", ruleWidth))

		saved, err := e.savePage(doc, page, reference.Label(text), &sum)
		if err != nil {
			return sum, fmt.Errorf("page %d: %w", page+1, err)
		}
		sum.Pages++

		if len(saved) == 0 {
			fmt.Fprintln(e.out, "No images found on this page.")
		}
		for _, p := range saved {
			fmt.Fprintf(e.out, "Image Saved: %s\n", p)
		}
		fmt.Fprintln(e.out, strings.Repeat("=", ruleWidth))
	}

	fmt.Fprintf(e.out, "\nSummary: %d pages, %d saved, %d filtered, %d failed (total images: %d)\n",
		sum.Pages, sum.Saved, sum.Filtered, sum.Failed, sum.Total())
	return sum, nil
}

// SavePageImages writes the qualifying images of the zero-based page and
// returns their paths in processing order. The output directory must
// already exist. It fails only when the page's images cannot be listed.
func (e *Extractor) SavePageImages(doc source.Document, page int, label string) ([]string, error) {
	var sum Summary
	return e.savePage(doc, page, label, &sum)
}

func (e *Extractor) savePage(doc source.Document, page int, label string, sum *Summary) ([]string, error) {
	images, err := doc.PageImages(page)
	if err != nil {
		return nil, err
	}

	var saved []string
	// index counts every image on the page, kept or not.
	for index := 0; index < len(images); index++ {
		raw := images[index]

		img, _, err := imaging.Decode(raw.Data)
		if err != nil {
			e.log.Error().Err(err).
				Int("page", page+1).
				Int("image", index).
				Str("file_type", raw.FileType).
				Msg("skipping undecodable image")
			sum.Failed++
			continue
		}

		b := img.Bounds()
		if b.Dx() < e.cfg.MinSide || b.Dy() < e.cfg.MinSide {
			sum.Filtered++
			continue
		}

		img = imaging.Normalize(img)

		path := filepath.Join(e.cfg.OutputDir, Filename(label, page, index, e.cfg.Format, e.cfg.MaxLabelLength))
		if err := e.write(path, img); err != nil {
			e.log.Error().Err(err).
				Str("format", string(e.cfg.Format)).
				Int("quality", e.cfg.Quality).
				Int("page", page+1).
				Int("image", index).
				Msg("error saving image")
			sum.Failed++
			continue
		}

		sum.Saved++
		saved = append(saved, path)
	}
	return saved, nil
}

// write encodes img to path, removing the partial file on failure.
func (e *Extractor) write(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := imaging.Encode(f, img, e.cfg.Format, e.cfg.Quality); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
