// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfimages CLI. It prints the text
// of every page of a PDF and writes the page's large embedded images,
// downsized, to an output directory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfimages/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd extracts images when given the four positional arguments.
var rootCmd = &cobra.Command{
	Use:   "pdfimages <input_file> <output_dir> <img_format> <img_quality>",
	Short: "Extract text and embedded images from a PDF",
	Long: `pdfimages prints the text of each page of a PDF and saves every embedded
image of at least 500x500 pixels to output_dir, shrunk by 30% on its longer
side. Files are named {digits}_{page}_{index}.{ext}, where digits are the
decimal digits found in the page text ("page" when there are none).

img_format is jpg, jpeg or png; anything else is written as JPEG with a .jpg
extension. img_quality is the JPEG quality from 1 to 100; out-of-range values
fall back to 90.`,
	Example:      "  pdfimages catalogue.pdf out/ jpg 85",
	Args:         cobra.ExactArgs(4),
	SilenceUsage: true,
	RunE:         runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfimages.yaml or ~/.config/pdfimages/config.yaml)")

	viper.SetDefault("min_side", types.DefaultMinSide)
	viper.SetDefault("max_label_length", types.DefaultMaxLabelLength)
	viper.SetDefault("default_quality", types.DefaultQuality)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfimages")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfimages"))
		}
	}

	viper.SetEnvPrefix("PDFIMAGES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger writes human-readable log lines to w, alongside the page report.
func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
