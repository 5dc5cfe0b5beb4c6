package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobStatus(t *testing.T) {
	cases := []struct {
		name     string
		procs    []Process
		expected string
	}{
		{
			name:     "all running",
			procs:    []Process{{PID: 10}, {PID: 11}},
			expected: StatusRunning,
		},
		{
			name:     "one stage still running",
			procs:    []Process{{PID: 10, Completed: true}, {PID: 11}},
			expected: StatusRunning,
		},
		{
			name:     "all stopped",
			procs:    []Process{{PID: 10, Stopped: true}, {PID: 11, Stopped: true}},
			expected: StatusStopped,
		},
		{
			name:     "stopped and completed mix",
			procs:    []Process{{PID: 10, Completed: true}, {PID: 11, Stopped: true}},
			expected: StatusStopped,
		},
		{
			name:     "all completed",
			procs:    []Process{{PID: 10, Completed: true}, {PID: 11, Completed: true}},
			expected: StatusDone,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j := &Job{JID: 10, Procs: tc.procs}
			assert.Equal(t, tc.expected, j.Status())
		})
	}
}

func TestJobFindProc(t *testing.T) {
	j := &Job{
		JID: 100,
		Procs: []Process{
			{PID: 100, Args: []string{"cat"}},
			{PID: 101, Args: []string{"wc"}},
		},
	}

	p := j.FindProc(101)
	assert.NotNil(t, p)
	assert.Equal(t, []string{"wc"}, p.Args)

	// Mutations through the pointer land on the owned value.
	p.Completed = true
	assert.True(t, j.Procs[1].Completed)

	assert.Nil(t, j.FindProc(999))
}
