package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobline-sh/jobline/core/pipeline"
)

// lintCmd exits non-zero when any line has findings, for use in scripts.
var lintCmd = &cobra.Command{
	Use:   "lint [LINE...]",
	Short: "Report constructs the parser accepts but probably shouldn't.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		total := 0
		lineNo := 0
		fromStdin := len(args) == 0
		err := forEachInputLine(cmd, args, func(line string) error {
			lineNo++
			for _, problem := range pipeline.Lint(line) {
				total++
				if fromStdin {
					fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", lineNo, problem)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), problem)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		switch total {
		case 0:
			fmt.Fprintln(cmd.OutOrStdout(), "no findings")
			return nil
		case 1:
			return errors.New("1 finding")
		default:
			return fmt.Errorf("%d findings", total)
		}
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
