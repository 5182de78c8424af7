package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/jobline-sh/jobline/core/config"
)

// initCmd writes the built-in configuration for editing
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the jobline configuration in the config directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", 0)

		_, err := config.Initialize(cfgPath, logger)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
