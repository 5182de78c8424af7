package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jobline-sh/jobline/commands"
	"github.com/jobline-sh/jobline/core/pipeline"
)

var outputFormat string

// parseCmd parses the arguments as one line, or each line of stdin.
var parseCmd = &cobra.Command{
	Use:   "parse [LINE...]",
	Short: "Parse a line of shell input and print the pipeline.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		return forEachInputLine(cmd, args, func(line string) error {
			req := pipeline.Parse(line)
			return commands.WriteRequest(cmd.OutOrStdout(), req, outputFormat)
		})
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format, one of text, json or yaml")
}
