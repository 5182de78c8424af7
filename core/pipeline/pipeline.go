// Package pipeline turns one line of shell input into an executable
// pipeline description.
//
// Parsing is deliberately lenient: malformed quoting and misplaced
// operators degrade to a defined result instead of an error, so a job
// control engine can always show the user something for what they typed.
package pipeline

import (
	"github.com/jobline-sh/jobline/core/token"
)

// UnsetID marks process and job identifiers the execution engine has not
// assigned yet.
const UnsetID = -1

// Status is the job control engine's view of a pipeline.
type Status string

const (
	StatusRunning Status = "Running"
	StatusStopped Status = "Stopped"
)

// Process is the parse result for one pipeline stage. The parser fills it
// in and nothing mutates it afterwards.
type Process struct {
	// Args is the exec-style argument vector. Args[0] is the command name.
	Args []string `json:"args"`
	// PipesToNext is true when the stage's stdout feeds the next stage.
	PipesToNext bool `json:"pipes_to_next"`
}

// ProcessState is the execution engine's bookkeeping for the stage at the
// same index. The parser only ever writes sentinels here.
type ProcessState struct {
	PID       int  `json:"pid"`
	PGID      int  `json:"pgid"`
	Stopped   bool `json:"stopped"`
	Completed bool `json:"completed"`
}

// Request is one parsed line of shell input: the ordered pipeline stages,
// the stream redirections for the whole pipeline, and the job bookkeeping
// the execution engine maintains.
type Request struct {
	// Raw is the trimmed original input.
	Raw string `json:"raw"`
	// Foreground is false only when the last character of Raw is '&'.
	Foreground bool `json:"foreground"`
	// Procs holds the stages in pipeline order.
	Procs []Process `json:"processes"`
	// State holds per-stage bookkeeping, parallel to Procs.
	State []ProcessState `json:"state"`

	Stdin  Redirect `json:"stdin"`
	Stdout Redirect `json:"stdout"`
	Stderr Redirect `json:"stderr"`

	// JobID is assigned by the job table when the pipeline is registered.
	JobID int `json:"job_id"`
	// Status tracks whether the job is running or stopped.
	Status Status `json:"status"`
}

// Parse builds a Request from one line of shell input. It never fails.
func Parse(line string) *Request {
	raw := token.Trim(line)
	tokens := token.Split(raw)
	procs := stages(tokens)
	stdin, stdout, stderr := redirects(tokens)

	return &Request{
		Raw:        raw,
		Foreground: len(raw) == 0 || raw[len(raw)-1] != '&',
		Procs:      procs,
		State:      newStates(len(procs)),
		Stdin:      stdin,
		Stdout:     stdout,
		Stderr:     stderr,
		JobID:      UnsetID,
		Status:     StatusRunning,
	}
}

// stages groups tokens into per-stage argument vectors. The branch order
// matters: the first token always opens stage zero and any token after "|"
// always opens the next stage, even when that token is an operator. After
// those two rules, redirection operators and their targets are skipped,
// "|" marks the previous stage as piped, and "&" is dropped.
func stages(tokens []string) []Process {
	var procs []Process
	for i, tok := range tokens {
		switch {
		case i == 0 || tokens[i-1] == OpPipe:
			procs = append(procs, Process{Args: []string{tok}})
		case isRedirectOp(tok) || isRedirectOp(tokens[i-1]):
			// Redirections and their targets never become arguments.
		case tok == OpPipe:
			procs[len(procs)-1].PipesToNext = true
		case tok != OpBackground:
			last := len(procs) - 1
			procs[last].Args = append(procs[last].Args, tok)
		}
	}
	return procs
}

func newStates(n int) []ProcessState {
	states := make([]ProcessState, n)
	for i := range states {
		states[i] = ProcessState{PID: UnsetID, PGID: UnsetID}
	}
	return states
}

// Clone re-parses the request's raw input and carries over the job ID and
// status. Stage bookkeeping resets to sentinels; in particular the copied
// job ID is not pushed back into the fresh stage group IDs.
func (r *Request) Clone() *Request {
	c := Parse(r.Raw)
	c.JobID = r.JobID
	c.Status = r.Status
	return c
}

// SetJobID records the job ID and propagates it to every stage's group ID.
func (r *Request) SetJobID(id int) {
	r.JobID = id
	for i := range r.State {
		r.State[i].PGID = id
	}
}

// SetStatus updates the job status. An empty status is ignored.
func (r *Request) SetStatus(s Status) {
	if s != "" {
		r.Status = s
	}
}

// NumProcs returns the number of stages.
func (r *Request) NumProcs() int {
	return len(r.Procs)
}

// NumPipes counts the pipe connections between stages.
func (r *Request) NumPipes() int {
	n := 0
	for _, p := range r.Procs {
		if p.PipesToNext {
			n++
		}
	}
	return n
}

// Stopped reports whether every stage is stopped or completed. A request
// with no stages counts as stopped.
func (r *Request) Stopped() bool {
	for _, s := range r.State {
		if !s.Stopped && !s.Completed {
			return false
		}
	}
	return true
}

// Completed reports whether every stage has completed.
func (r *Request) Completed() bool {
	for _, s := range r.State {
		if !s.Completed {
			return false
		}
	}
	return true
}
