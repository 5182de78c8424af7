package commands

import (
	"fmt"
	"strconv"

	"github.com/jobline-sh/jobline/core/pipeline"
)

var markCmd = &Command{
	Name:  "mark",
	Short: "Change a job's stage bookkeeping the way an engine would.",
	Run:   Mark,
}

// Mark flips the stopped or completed flags of a job's stages, or of one
// stage, and keeps the job status in sync.
func Mark(env *Env) int {
	cmd := &SimpleCommand{
		Use:   "mark (-s|-c|-r) JOB [STAGE]",
		Short: markCmd.Short,
	}

	opts := cmd.Flags()
	stop := opts.Bool('s', "mark as stopped")
	complete := opts.Bool('c', "mark as completed")
	resume := opts.Bool('r', "clear stopped marks and set the job running")

	return cmd.Run(env, func() int {
		picked := 0
		for _, flag := range []bool{*stop, *complete, *resume} {
			if flag {
				picked++
			}
		}
		if picked != 1 {
			fmt.Fprintln(env.Stderr, "exactly one of -s, -c or -r is required")
			return 1
		}

		args := opts.Args()
		if len(args) < 1 || len(args) > 2 {
			fmt.Fprintln(env.Stderr, "expected JOB [STAGE]")
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

		from, to := 0, len(req.State)
		if len(args) == 2 {
			stage, err := strconv.Atoi(args[1])
			if err != nil || stage < 0 || stage >= len(req.State) {
				fmt.Fprintf(env.Stderr, "no stage %q in job %d\n", args[1], id)
				return 1
			}
			from, to = stage, stage+1
		}

		for i := from; i < to; i++ {
			switch {
			case *stop:
				req.State[i].Stopped = true
			case *complete:
				req.State[i].Completed = true
			case *resume:
				req.State[i].Stopped = false
			}
		}
		switch {
		case *stop:
			req.SetStatus(pipeline.StatusStopped)
		case *resume:
			req.SetStatus(pipeline.StatusRunning)
		}

		fmt.Fprintf(env.Stdout, "[%d]  %s  %s\n",
			req.JobID, env.Sprintf(statusColor(req), "%-8s", statusLabel(req)), req.Raw)
		return 0
	})
}

func init() {
	register(markCmd)
}
