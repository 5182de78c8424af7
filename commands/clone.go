package commands

import (
	"fmt"
	"strconv"

	"github.com/jobline-sh/jobline/core/logger"
)

var cloneCmd = &Command{
	Name:  "clone",
	Short: "Re-parse a job's input and register the copy as a new job.",
	Run:   Clone,
}

// Clone copies a job the way a job control engine restarts one: the raw
// input is parsed again and the copy gets a fresh job ID and clean stage
// bookkeeping.
func Clone(env *Env) int {
	cmd := &SimpleCommand{
		Use:   "clone JOB",
		Short: cloneCmd.Short,
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
		req, ok := env.Jobs.Get(id)
		if !ok {
			fmt.Fprintf(env.Stderr, "no job %d\n", id)
			return 1
		}

		copied := req.Clone()
		newID := env.Jobs.Add(copied)

		command := ""
		if copied.NumProcs() > 0 {
			command = copied.Procs[0].Args[0]
		}
		env.Record(&logger.JobAdded{JobID: newID, Command: command, Stages: copied.NumProcs()})

		fmt.Fprintln(env.Stdout, copied.String())
		return 0
	})
}

func init() {
	register(cloneCmd)
}
