package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobline-sh/jobline/core/pipeline"
)

func TestMarkStopped(t *testing.T) {
	env, stdout, _ := testEnv("mark -s 1")
	req := pipeline.Parse("sleep 30")
	env.Jobs.Add(req)

	assert.Equal(t, 0, Mark(env))
	assert.True(t, req.State[0].Stopped)
	assert.Equal(t, pipeline.StatusStopped, req.Status)
	assert.Contains(t, stdout.String(), "Stopped")
}

func TestMarkSingleStage(t *testing.T) {
	env, _, _ := testEnv("mark -c 1 1")
	req := pipeline.Parse("a | b | c")
	env.Jobs.Add(req)

	assert.Equal(t, 0, Mark(env))
	assert.False(t, req.State[0].Completed)
	assert.True(t, req.State[1].Completed)
	assert.False(t, req.State[2].Completed)
}

func TestMarkResume(t *testing.T) {
	env, _, _ := testEnv("mark -r 1")
	req := pipeline.Parse("vim notes.txt")
	env.Jobs.Add(req)
	req.State[0].Stopped = true
	req.SetStatus(pipeline.StatusStopped)

	assert.Equal(t, 0, Mark(env))
	assert.False(t, req.State[0].Stopped)
	assert.Equal(t, pipeline.StatusRunning, req.Status)
}

func TestMarkValidation(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		wantErr string
	}{
		{"no flag", "mark 1", "exactly one of"},
		{"two flags", "mark -s -c 1", "exactly one of"},
		{"no job arg", "mark -s", "expected JOB"},
		{"bad id", "mark -s x", "bad job ID"},
		{"missing job", "mark -s 9", "no job 9"},
		{"bad stage", "mark -s 1 7", "no stage"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env, _, stderr := testEnv(tc.line)
			env.Jobs.Add(pipeline.Parse("a"))

			assert.Equal(t, 1, Mark(env))
			assert.Contains(t, stderr.String(), tc.wantErr)
		})
	}
}
