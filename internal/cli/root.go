// Package cli wires the rebuild commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/coregx/rebuild/internal/cli/build"
	"github.com/coregx/rebuild/internal/cli/check"
	"github.com/coregx/rebuild/internal/cli/ops"
	"github.com/coregx/rebuild/internal/config"
	"github.com/coregx/rebuild/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Build regular expressions from chain recipes",
	Long: `rebuild assembles ECMAScript regular expressions from YAML recipes
that name the steps of a builder chain, and tests texts against them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromCommand(cmd)
		if err != nil {
			return err
		}
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetVerbose(cfg.Verbose)
		logger.Debug("settings: %+v", cfg)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.AddFlags(rootCmd)

	rootCmd.AddCommand(build.Cmd)
	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(ops.Cmd)
}
