// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config prints the settings a run would use after the config file and
PDFIMAGES_* environment variables are applied. output_dir, format and
quality are shown with their defaults; a run takes them from its positional
arguments.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(tuningConfig())
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
