// Package cli wires the divetrace command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reefscope/divetrace/internal/config"
)

var (
	configPath string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "divetrace",
	Short: "Bühlmann ZH-L16B-GF analysis of recorded dive logs",
	Long: `divetrace replays a recorded dive log through the Bühlmann ZH-L16B
decompression model with gradient factors, deriving per-tissue ceilings,
in-deco state and recalculated no-decompression limits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "divetrace.toml", "path to the TOML config file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
