package cmd

import (
	"fmt"

	shlex "github.com/anmitsu/go-shlex"
	"github.com/spf13/cobra"

	"github.com/jobline-sh/jobline/core/token"
)

var posixSplit bool

// tokensCmd shows the tokenization of the arguments or of each stdin line.
var tokensCmd = &cobra.Command{
	Use:   "tokens [LINE...]",
	Short: "Print the normalized tokens for a line of shell input.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		return forEachInputLine(cmd, args, func(line string) error {
			toks := token.Split(line)
			if posixSplit {
				var err error
				toks, err = shlex.Split(line, true)
				if err != nil {
					return fmt.Errorf("posix: %w", err)
				}
			}

			for i, tok := range toks {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %q\n", i, tok)
			}
			if !posixSplit && token.Unclosed(line) {
				fmt.Fprintln(cmd.OutOrStdout(), "(open quote: unfinished literal dropped)")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVarP(&posixSplit, "posix", "p", false, "split with a strict POSIX lexer instead")
}
