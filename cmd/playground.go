package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jobline-sh/jobline/core"
	"github.com/jobline-sh/jobline/core/config"
	"github.com/jobline-sh/jobline/core/logger"
)

// playgroundCmd runs the parser loop against the local terminal.
var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Run the interactive parser playground.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		playgroundLogger := log.New(cmd.ErrOrStderr(), "[playground] ", 0)

		cfg, err := config.Load(cfgPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// No saved configuration, run from a throwaway directory.
			dir, mkErr := os.MkdirTemp("", "playground")
			if mkErr != nil {
				return mkErr
			}
			defer os.RemoveAll(dir)

			cfg, err = config.Initialize(dir, playgroundLogger)
			if err != nil {
				return err
			}
		case err != nil:
			return err
		}

		sessionLog := logger.NewNopLogRecorder().NewSession()
		if cfg.LogEvents {
			logFd, err := cfg.OpenEventLog()
			if err != nil {
				return err
			}
			defer logFd.Close()

			sessionLog = logger.NewJsonLinesLogRecorder(logFd).NewSession()
			playgroundLogger.Printf("Logging to: file://%s\n", cfg.EventLogPath())
			playgroundLogger.Printf("See a summary with: jobline events report\n")
		}
		playgroundLogger.Println(strings.Repeat("=", 80))

		playground, err := core.NewPlayground(cfg, os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr(), sessionLog)
		if err != nil {
			return err
		}
		defer playground.Close()

		playground.Run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}
