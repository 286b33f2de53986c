package cmd

import (
	"log"

	"github.com/shlint/shlint/core/config"
	"github.com/spf13/cobra"
)

// initCmd writes the default configuration file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default shlint.yaml into the config directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", 0)

		return config.Initialize(appFs, cfgPath, logger)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
