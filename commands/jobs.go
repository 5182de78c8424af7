package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/jobline-sh/jobline/core/pipeline"
)

var jobsCmd = &Command{
	Name:  "jobs",
	Short: "List the registered pipelines.",
	Run:   Jobs,
}

// Jobs lists the job table in shell style.
func Jobs(env *Env) int {
	cmd := &SimpleCommand{
		Use:   "jobs [-l]",
		Short: jobsCmd.Short,
	}

	opts := cmd.Flags()
	long := opts.Bool('l', "also show stages and redirections")

	return cmd.Run(env, func() int {
		list := env.Jobs.List()
		if len(list) == 0 {
			fmt.Fprintln(env.Stdout, "no jobs")
			return 0
		}

		for _, req := range list {
			fmt.Fprintf(env.Stdout, "[%d]  %s  %s\n",
				req.JobID, env.Sprintf(statusColor(req), "%-8s", statusLabel(req)), req.Raw)
			if *long {
				printDetails(env, req)
			}
		}
		return 0
	})
}

// statusLabel derives the display status from the stage bookkeeping,
// falling back to the job status field.
func statusLabel(req *pipeline.Request) string {
	switch {
	case req.Completed():
		return "Done"
	case req.Stopped():
		return "Stopped"
	default:
		return string(req.Status)
	}
}

func statusColor(req *pipeline.Request) *color.Color {
	switch statusLabel(req) {
	case "Done":
		return ColorBoldBlue
	case "Stopped":
		return ColorBoldRed
	default:
		return ColorBoldGreen
	}
}

func printDetails(env *Env, req *pipeline.Request) {
	for i, proc := range req.Procs {
		pipeMark := ""
		if proc.PipesToNext {
			pipeMark = " |"
		}
		state := req.State[i]
		fmt.Fprintf(env.Stdout, "     Process %d (PID/PGID = %d/%d) argv: %s%s\n",
			i, state.PID, state.PGID, strings.Join(proc.Args, " "), pipeMark)
	}
	if path, ok := req.Stdin.Target.Path(); ok {
		fmt.Fprintf(env.Stdout, "     stdin  < %s\n", path)
	}
	if path, ok := req.Stdout.Target.Path(); ok {
		fmt.Fprintf(env.Stdout, "     stdout %s %s\n", outOp(">", req.Stdout.Mode), path)
	}
	if path, ok := req.Stderr.Target.Path(); ok {
		fmt.Fprintf(env.Stdout, "     stderr %s %s\n", outOp("e>", req.Stderr.Mode), path)
	}
}

func outOp(base string, mode pipeline.Mode) string {
	if mode == pipeline.ModeAppend {
		return base + ">"
	}
	return base
}

func init() {
	register(jobsCmd)
}
