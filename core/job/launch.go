package job

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// ErrSpawn wraps a failure to start any stage whose command was found,
// the first stage included. Once a child exists the shell can no longer
// guarantee a clean pipeline, so the REPL treats these as fatal.
var ErrSpawn = errors.New("spawn failed")

type pipePair struct {
	r, w *os.File
}

// Launch starts every stage of the job in one process group, wires the
// pipes and resolved redirections, inserts the job into the table, and
// then either waits in the foreground or returns immediately. The int
// result is the job's exit status when it ran to completion in the
// foreground, 0 otherwise. When no stage could be started (every
// command was not found) the job is not inserted and the last stage's
// status, 127, is returned whether or not the job is in the foreground.
//
// The Go runtime exposes fork+exec as a unit, so the child-side steps
// of the classic launch sequence map onto SysProcAttr: Setpgid/Pgid
// runs setpgid between fork and exec, which closes the race where a
// child execs before the parent assigns its group. The parent still
// repeats the setpgid after Start returns; whichever call lands second
// fails EACCES/EPERM, which is benign and ignored.
func (t *Table) Launch(j *Job) (int, error) {
	stdio, err := OpenRedirects(j)
	if err != nil {
		return 0, err
	}
	defer stdio.Close()

	n := len(j.Procs)
	pipes := make([]pipePair, n-1)
	for i := range pipes {
		r, w, err := os.Pipe()
		if err != nil {
			closePipes(pipes)
			return 0, fmt.Errorf("pipe: %w", err)
		}
		pipes[i] = pipePair{r: r, w: w}
	}

	started := 0
	for i := range j.Procs {
		p := &j.Procs[i]

		in, out, errf := os.Stdin, os.Stdout, os.Stderr
		if i > 0 {
			in = pipes[i-1].r
		} else if stdio.In != nil {
			in = stdio.In
		}
		if i < n-1 {
			out = pipes[i].w
		} else if stdio.Out != nil {
			out = stdio.Out
		}
		if i == n-1 && stdio.Err != nil {
			errf = stdio.Err
		}

		// The parent's copy of a pipe end is closed as soon as the
		// stage consuming it has been started (or skipped); a held
		// write end would keep the reader from ever seeing EOF.
		releaseEnds := func() {
			if i > 0 {
				pipes[i-1].r.Close()
			}
			if i < n-1 {
				pipes[i].w.Close()
			}
		}

		path, lookErr := exec.LookPath(p.Args[0])
		if lookErr != nil {
			fmt.Fprintf(out, "%s: command not found\n", p.Args[0])
			p.Completed = true
			p.ExitStatus = 127
			releaseEnds()
			continue
		}

		cmd := &exec.Cmd{
			Path:   path,
			Args:   p.Args,
			Stdin:  in,
			Stdout: out,
			Stderr: errf,
			SysProcAttr: &syscall.SysProcAttr{
				Setpgid: true,
				Pgid:    j.JID, // 0 for the group leader
			},
		}

		if err := cmd.Start(); err != nil {
			releaseEnds()
			closePipes(pipes[i:])
			return 0, fmt.Errorf("%w: %v", ErrSpawn, err)
		}

		p.PID = cmd.Process.Pid
		if j.JID == 0 {
			j.JID = p.PID
		}
		_ = unix.Setpgid(p.PID, j.JID)

		releaseEnds()
		started++
	}

	stdio.Close()

	if started == 0 {
		// Every stage failed to resolve; nothing to track.
		j.ExitStatus = j.last().ExitStatus
		return j.ExitStatus, nil
	}

	t.Add(j)

	if j.Foreground {
		return t.Foreground(j, false), nil
	}
	t.Background(j, false)
	return 0, nil
}

func closePipes(pipes []pipePair) {
	for _, p := range pipes {
		if p.r != nil {
			p.r.Close()
		}
		if p.w != nil {
			p.w.Close()
		}
	}
}
