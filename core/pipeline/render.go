package pipeline

import (
	"fmt"
	"strings"
)

// String renders the classic job control dump: a header line with the job
// ID and foreground flag, then one line per stage with its process and
// group IDs and argument vector. There is no newline after the last stage.
func (r *Request) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "JID = %d, In foreground? %t\n", r.JobID, r.Foreground)
	for i, p := range r.Procs {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "Process %d (PID/PGID = %d/%d) argv: %s",
			i, r.State[i].PID, r.State[i].PGID, strings.Join(p.Args, " "))
	}
	return b.String()
}
