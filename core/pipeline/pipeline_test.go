package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func argvs(r *Request) [][]string {
	var out [][]string
	for _, p := range r.Procs {
		out = append(out, p.Args)
	}
	return out
}

func TestParseStages(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		want  [][]string
		pipes int
	}{
		{"single command", "ls", [][]string{{"ls"}}, 0},
		{"flags kept", "ls -l /tmp", [][]string{{"ls", "-l", "/tmp"}}, 0},
		{"two stage pipe", "ls -l | wc", [][]string{{"ls", "-l"}, {"wc"}}, 1},
		{"three stage pipe", "cat f | grep x | wc -l", [][]string{{"cat", "f"}, {"grep", "x"}, {"wc", "-l"}}, 2},
		{"background marker dropped", "sleep 10 &", [][]string{{"sleep", "10"}}, 0},
		{"redirection excluded from argv", "sort x > out.txt", [][]string{{"sort", "x"}}, 0},
		{"redirect then pipe", "a e>> err | b", [][]string{{"a"}, {"b"}}, 1},
		{"double pipe keeps middle stage", "a | | b", [][]string{{"a"}, {"|"}, {"b"}}, 1},
		{"leading pipe is a command", "| a", [][]string{{"|"}, {"a"}}, 0},
		{"leading redirect is a command", "< f", [][]string{{"<"}}, 0},
		{"quoted pipe is data", `echo "a | b"`, [][]string{{"echo", "a | b"}}, 0},
		{"quoted operator is real", `a ">" b`, [][]string{{"a"}}, 0},
		{"pipe after redirect skipped", "a > | b", [][]string{{"a"}, {"b"}}, 0},
		{"empty line", "", nil, 0},
		{"blank line", " \t ", nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Parse(tc.line)
			assert.Equal(t, tc.want, argvs(r))
			assert.Equal(t, tc.pipes, r.NumPipes())
			assert.Equal(t, len(tc.want), r.NumProcs())
		})
	}
}

func TestParseForeground(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"", true},
		{"ls", true},
		{"sleep 10 &", false},
		{"sleep 10&", false},
		{"a & b", true},
		{`echo "&"`, true},
		{"work &  ", false},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			assert.Equal(t, tc.want, Parse(tc.line).Foreground)
		})
	}
}

func TestParseRedirects(t *testing.T) {
	cases := []struct {
		name   string
		line   string
		stdin  Redirect
		stdout Redirect
		stderr Redirect
	}{
		{
			name:   "no redirections",
			line:   "ls -l",
			stdin:  Redirect{Target: StandardIn},
			stdout: Redirect{Target: StandardOut},
			stderr: Redirect{Target: StandardError},
		},
		{
			name:   "stdout truncate",
			line:   "a > out.txt",
			stdin:  Redirect{Target: StandardIn},
			stdout: Redirect{Target: File("out.txt"), Mode: ModeTruncate},
			stderr: Redirect{Target: StandardError},
		},
		{
			name:   "stdout append and stderr truncate",
			line:   "a >> log e> err.log",
			stdin:  Redirect{Target: StandardIn},
			stdout: Redirect{Target: File("log"), Mode: ModeAppend},
			stderr: Redirect{Target: File("err.log"), Mode: ModeTruncate},
		},
		{
			name:   "stdin with stdout",
			line:   "sort < in.txt > out.txt",
			stdin:  Redirect{Target: File("in.txt")},
			stdout: Redirect{Target: File("out.txt"), Mode: ModeTruncate},
			stderr: Redirect{Target: StandardError},
		},
		{
			name:   "first redirection wins",
			line:   "a > f > g",
			stdin:  Redirect{Target: StandardIn},
			stdout: Redirect{Target: File("f"), Mode: ModeTruncate},
			stderr: Redirect{Target: StandardError},
		},
		{
			name:   "stderr append",
			line:   "a e>> err",
			stdin:  Redirect{Target: StandardIn},
			stdout: Redirect{Target: StandardOut},
			stderr: Redirect{Target: File("err"), Mode: ModeAppend},
		},
		{
			name:   "dangling operator ignored",
			line:   "a <",
			stdin:  Redirect{Target: StandardIn},
			stdout: Redirect{Target: StandardOut},
			stderr: Redirect{Target: StandardError},
		},
		{
			name:   "operator token as target",
			line:   "a > | b",
			stdin:  Redirect{Target: StandardIn},
			stdout: Redirect{Target: File("|"), Mode: ModeTruncate},
			stderr: Redirect{Target: StandardError},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Parse(tc.line)
			assert.Equal(t, tc.stdin, r.Stdin)
			assert.Equal(t, tc.stdout, r.Stdout)
			assert.Equal(t, tc.stderr, r.Stderr)
		})
	}
}

func TestParseSentinels(t *testing.T) {
	r := Parse("a | b")
	assert.Equal(t, UnsetID, r.JobID)
	assert.Equal(t, StatusRunning, r.Status)
	require.Len(t, r.State, 2)
	for _, s := range r.State {
		assert.Equal(t, UnsetID, s.PID)
		assert.Equal(t, UnsetID, s.PGID)
		assert.False(t, s.Stopped)
		assert.False(t, s.Completed)
	}
}

func TestSetJobID(t *testing.T) {
	r := Parse("a | b | c")
	r.SetJobID(7)

	assert.Equal(t, 7, r.JobID)
	for _, s := range r.State {
		assert.Equal(t, 7, s.PGID)
		assert.Equal(t, UnsetID, s.PID)
	}
}

func TestSetStatus(t *testing.T) {
	r := Parse("a")
	r.SetStatus(StatusStopped)
	assert.Equal(t, StatusStopped, r.Status)

	r.SetStatus("")
	assert.Equal(t, StatusStopped, r.Status, "empty status is a no-op")

	r.SetStatus("Waiting")
	assert.Equal(t, Status("Waiting"), r.Status, "unknown statuses are accepted")
}

func TestClone(t *testing.T) {
	r := Parse(`grep -i "a b" < in | sort`)
	r.SetJobID(4)
	r.SetStatus(StatusStopped)
	r.State[0].PID = 123
	r.State[0].Stopped = true

	c := r.Clone()

	assert.Equal(t, r.Raw, c.Raw)
	assert.Equal(t, 4, c.JobID)
	assert.Equal(t, StatusStopped, c.Status)
	assert.Equal(t, argvs(r), argvs(c))
	assert.Equal(t, r.Stdin, c.Stdin)

	// Stage bookkeeping resets and the group IDs are not re-derived from
	// the carried job ID.
	for _, s := range c.State {
		assert.Equal(t, UnsetID, s.PID)
		assert.Equal(t, UnsetID, s.PGID)
		assert.False(t, s.Stopped)
	}

	// The clone is independent of the original.
	c.State[0].PID = 999
	assert.Equal(t, 123, r.State[0].PID)
}

func TestStoppedAndCompleted(t *testing.T) {
	t.Run("zero stages", func(t *testing.T) {
		r := Parse("")
		assert.True(t, r.Stopped())
		assert.True(t, r.Completed())
	})

	t.Run("running", func(t *testing.T) {
		r := Parse("a | b")
		assert.False(t, r.Stopped())
		assert.False(t, r.Completed())
	})

	t.Run("mixed stopped and completed", func(t *testing.T) {
		r := Parse("a | b")
		r.State[0].Stopped = true
		r.State[1].Completed = true
		assert.True(t, r.Stopped())
		assert.False(t, r.Completed())
	})

	t.Run("all completed", func(t *testing.T) {
		r := Parse("a | b")
		r.State[0].Completed = true
		r.State[1].Completed = true
		assert.True(t, r.Stopped())
		assert.True(t, r.Completed())
	})
}

func TestRequestJSON(t *testing.T) {
	r := Parse("sort < in.txt > out.txt &")
	got, err := json.Marshal(r)
	require.NoError(t, err)

	js := string(got)
	assert.Contains(t, js, `"foreground":false`)
	assert.Contains(t, js, `"stdin":{"target":{"path":"in.txt"},"mode":"none"}`)
	assert.Contains(t, js, `"stdout":{"target":{"path":"out.txt"},"mode":"truncate"}`)
	assert.Contains(t, js, `"stderr":{"target":{"standard":"stderr"},"mode":"none"}`)
	assert.Contains(t, js, `"job_id":-1`)
}

func TestTargetAccessors(t *testing.T) {
	path, ok := File("x.txt").Path()
	assert.True(t, ok)
	assert.Equal(t, "x.txt", path)
	assert.False(t, File("x.txt").IsDefault())

	_, ok = StandardOut.Path()
	assert.False(t, ok)
	assert.True(t, StandardOut.IsDefault())
	assert.Equal(t, "STDOUT_FILENO", StandardOut.String())
	assert.Equal(t, "STDIN_FILENO", StandardIn.String())
	assert.Equal(t, "STDERR_FILENO", StandardError.String())
}

func TestIsOperator(t *testing.T) {
	for _, op := range []string{"|", "&", "<", ">", ">>", "e>", "e>>"} {
		assert.True(t, IsOperator(op), op)
	}
	assert.False(t, IsOperator("ls"))
	assert.False(t, IsOperator(">>>"))
	assert.False(t, IsOperator(""))
}
