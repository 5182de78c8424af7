package commands

import (
	"fmt"

	"github.com/jobline-sh/jobline/core/logger"
	"github.com/jobline-sh/jobline/core/pipeline"
)

var lintCmd = &Command{
	Name:  "lint",
	Short: "Point out constructs the parser accepts but probably shouldn't.",
	Run:   Lint,
}

// Lint prints findings for the line after the command name.
func Lint(env *Env) int {
	problems := pipeline.Lint(env.Line)
	if len(problems) == 0 {
		fmt.Fprintln(env.Stdout, "no findings")
		return 0
	}

	var codes []string
	for _, p := range problems {
		codes = append(codes, string(p.Code))
		fmt.Fprintf(env.Stdout, "%s %s\n",
			env.Sprintf(ColorBoldRed, "%s:", string(p.Code)), p.Message)
	}
	env.Record(&logger.LintReported{Raw: env.Line, Codes: codes})
	return 1
}

func init() {
	register(lintCmd)
}
