package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jobline-sh/jobline/core/pipeline"
)

// operatorsCmd shows the operator tokens the parser recognizes.
var operatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "Show the operator tokens the parser recognizes.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		operators := []struct {
			op      string
			meaning string
		}{
			{pipeline.OpPipe, "connect this stage's stdout to the next stage's stdin"},
			{pipeline.OpBackground, "run the pipeline in the background when at the end of the line"},
			{pipeline.OpStdin, "read stdin from the file named by the next token"},
			{pipeline.OpStdout, "write stdout to the file named by the next token, truncating it"},
			{pipeline.OpStdoutAppend, "write stdout to the file named by the next token, appending"},
			{pipeline.OpStderr, "write stderr to the file named by the next token, truncating it"},
			{pipeline.OpStderrAppend, "write stderr to the file named by the next token, appending"},
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		for _, entry := range operators {
			fmt.Fprintf(w, "%s\t%s\n", entry.op, entry.meaning)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(operatorsCmd)
}
