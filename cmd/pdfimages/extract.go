// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfimages/internal/extract"
	"github.com/pdiddy/pdfimages/internal/source"
	"github.com/pdiddy/pdfimages/pkg/types"
)

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := extractionConfig(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logger := newLogger(out)
	ex := extract.New(cfg, out, logger)

	doc, err := source.Open(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	sum, err := ex.Run(cmd.Context(), doc)
	if err != nil {
		return err
	}
	if sum.HasFailures() {
		logger.Warn().
			Int("failed", sum.Failed).
			Int("total", sum.Total()).
			Msgf("%d of %d images could not be saved", sum.Failed, sum.Total())
	}
	return nil
}

// tuningConfig returns the defaults overlaid with the config file and
// PDFIMAGES_* environment variables.
func tuningConfig() types.ExtractionConfig {
	cfg := types.DefaultExtractionConfig()
	cfg.MinSide = viper.GetInt("min_side")
	cfg.MaxLabelLength = viper.GetInt("max_label_length")
	cfg.DefaultQuality = viper.GetInt("default_quality")
	return cfg.WithDefaults()
}

// extractionConfig builds the run configuration from the positional
// arguments input_file, output_dir, img_format and img_quality. Only a
// non-integer quality is an error; the range is checked by extract.New.
func extractionConfig(args []string) (types.ExtractionConfig, error) {
	quality, err := strconv.Atoi(strings.TrimSpace(args[3]))
	if err != nil {
		return types.ExtractionConfig{}, fmt.Errorf("img_quality %q is not an integer", args[3])
	}

	cfg := tuningConfig()
	cfg.OutputDir = args[1]
	cfg.Format = types.ParseImageFormat(args[2])
	cfg.Quality = quality
	return cfg, nil
}
