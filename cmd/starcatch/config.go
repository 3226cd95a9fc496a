package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starcatch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning file",
	Long: `Print the built-in starcatch.yaml. Save it as
~/.starcatch/configs/starcatch.yaml and edit it to override the defaults,
or pass a copy with --config.

Examples:
  starcatch config > ~/.starcatch/configs/starcatch.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	},
}
