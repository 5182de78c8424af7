package commands

import (
	"fmt"
	"strconv"

	"github.com/jobline-sh/jobline/core/logger"
)

var dropCmd = &Command{
	Name:  "drop",
	Short: "Remove a job from the table.",
	Run:   Drop,
}

// Drop removes one job by ID.
func Drop(env *Env) int {
	cmd := &SimpleCommand{
		Use:   "drop JOB",
		Short: dropCmd.Short,
	}

	return cmd.Run(env, func() int {
		args := cmd.Flags().Args()
		if len(args) != 1 {
			fmt.Fprintln(env.Stderr, "expected exactly one JOB")
			return 1
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(env.Stderr, "bad job ID %q\n", args[0])
			return 1
		}
		if !env.Jobs.Remove(id) {
			fmt.Fprintf(env.Stderr, "no job %d\n", id)
			return 1
		}

		env.Record(&logger.JobRemoved{JobID: id})
		fmt.Fprintf(env.Stdout, "dropped [%d]\n", id)
		return 0
	})
}

func init() {
	register(dropCmd)
}
