package job

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestLaunchForegroundExitStatus(t *testing.T) {
	requireSh(t)

	var out bytes.Buffer
	tbl := testTable(&out)

	j := &Job{
		Raw:        "sh -c 'exit 3'",
		Foreground: true,
		Procs:      []Process{{Args: []string{"sh", "-c", "exit 3"}}},
	}

	status, err := tbl.Launch(j)
	require.NoError(t, err)
	assert.Equal(t, 3, status)
	assert.Equal(t, 0, tbl.Len(), "completed foreground jobs leave the table")
	assert.Empty(t, out.String(), "normal foreground exits are silent")
	assert.NotZero(t, j.JID)
	assert.Equal(t, j.JID, j.Procs[0].PID)
}

func TestLaunchPipelineBytesFlow(t *testing.T) {
	requireSh(t)

	outPath := filepath.Join(t.TempDir(), "out.txt")
	var out bytes.Buffer
	tbl := testTable(&out)

	j := &Job{
		Raw:        "echo hello | cat | cat > out.txt",
		Foreground: true,
		Procs: []Process{
			{Args: []string{"echo", "hello"}, HasPipe: true},
			{Args: []string{"cat"}, HasPipe: true},
			{Args: []string{"cat"}},
		},
		Stdout: &Redirect{Path: outPath},
	}

	status, err := tbl.Launch(j)
	require.NoError(t, err)
	assert.Equal(t, 0, status)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
	assert.Equal(t, 0, tbl.Len())
}

func TestLaunchSixteenStagePipeline(t *testing.T) {
	for _, tool := range []string{"echo", "cat"} {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skipf("%s not available", tool)
		}
	}

	outPath := filepath.Join(t.TempDir(), "out.txt")
	var out bytes.Buffer
	tbl := testTable(&out)

	// One producer feeding fifteen relays: every stage must hand the
	// exact byte stream to its successor with no truncation.
	procs := []Process{{Args: []string{"echo", "hello"}, HasPipe: true}}
	for i := 0; i < 15; i++ {
		procs = append(procs, Process{Args: []string{"cat"}, HasPipe: true})
	}
	procs[len(procs)-1].HasPipe = false

	j := &Job{
		Raw:        "echo hello | cat | ... | cat > out.txt",
		Foreground: true,
		Procs:      procs,
		Stdout:     &Redirect{Path: outPath},
	}

	status, err := tbl.Launch(j)
	require.NoError(t, err)
	assert.Equal(t, 0, status)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))

	assert.Equal(t, 0, tbl.Len())
	for i := range j.Procs {
		assert.NotZero(t, j.Procs[i].PID, "stage %d", i)
	}
}

func TestLaunchCommandNotFound(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.txt")
	var out bytes.Buffer
	tbl := testTable(&out)

	j := &Job{
		Raw:        "definitely-not-a-command-1730",
		Foreground: true,
		Procs:      []Process{{Args: []string{"definitely-not-a-command-1730"}}},
		Stdout:     &Redirect{Path: outPath},
	}

	status, err := tbl.Launch(j)
	require.NoError(t, err)
	assert.Equal(t, 127, status)
	assert.Equal(t, 0, tbl.Len(), "nothing started, nothing tracked")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "definitely-not-a-command-1730: command not found\n", string(data))
}

func TestLaunchBackgroundReapsThroughPoll(t *testing.T) {
	requireSh(t)

	var out bytes.Buffer
	tbl := testTable(&out)

	j := &Job{
		Raw:        "sh -c 'exit 0' &",
		Foreground: false,
		Procs:      []Process{{Args: []string{"sh", "-c", "exit 0"}}},
	}

	status, err := tbl.Launch(j)
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	require.Equal(t, 1, tbl.Len(), "background jobs stay in the table")

	deadline := time.Now().Add(5 * time.Second)
	for tbl.Len() > 0 && time.Now().Before(deadline) {
		tbl.Poll()
		time.Sleep(10 * time.Millisecond)
	}

	require.Equal(t, 0, tbl.Len(), "poll reaps the finished background job")
	assert.Regexp(t, regexp.MustCompile(`^\d+ Exited \(0\) sh -c 'exit 0' &\n$`), out.String())
}
