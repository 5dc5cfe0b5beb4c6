package job

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"golang.org/x/sys/unix"
)

// Table holds every active job keyed by jid. The shell is single
// threaded, so the table itself needs no locking; only the foreground
// pgid is shared with the signal-relay goroutine and sits behind its
// own mutex.
type Table struct {
	jobs map[int]*Job
	out  io.Writer
	term *Terminal

	fgMu   sync.Mutex
	fgPgid int

	reapedExit int
	reapedSeen bool
}

// NewTable builds an empty table. Status lines are written to out.
func NewTable(out io.Writer, term *Terminal) *Table {
	return &Table{
		jobs: make(map[int]*Job),
		out:  out,
		term: term,
	}
}

// Add inserts a launched job. Jids are pids, so they cannot collide
// while the previous holder is still in the table.
func (t *Table) Add(j *Job) {
	t.jobs[j.JID] = j
}

// Get returns the job with the given jid, or nil.
func (t *Table) Get(jid int) *Job {
	return t.jobs[jid]
}

// Remove drops a job from the table.
func (t *Table) Remove(jid int) {
	delete(t.jobs, jid)
}

// Len reports the number of live jobs.
func (t *Table) Len() int {
	return len(t.jobs)
}

// List returns the live jobs in ascending jid order.
func (t *Table) List() []*Job {
	jids := make([]int, 0, len(t.jobs))
	for jid := range t.jobs {
		jids = append(jids, jid)
	}
	sort.Ints(jids)

	out := make([]*Job, 0, len(jids))
	for _, jid := range jids {
		if j := t.jobs[jid]; j != nil {
			out = append(out, j)
		}
	}
	return out
}

// Reset drops every job. Used by the exit builtin.
func (t *Table) Reset() {
	t.jobs = make(map[int]*Job)
}

// ForegroundPgid reports the process group of the job currently being
// waited on in the foreground, or 0.
func (t *Table) ForegroundPgid() int {
	t.fgMu.Lock()
	defer t.fgMu.Unlock()
	return t.fgPgid
}

func (t *Table) setForegroundPgid(pgid int) {
	t.fgMu.Lock()
	t.fgPgid = pgid
	t.fgMu.Unlock()
}

// Poll reaps without blocking. Called at the top of every REPL
// iteration: each live job is drained with WNOHANG waits on its whole
// process group, so a pipeline retires only once every stage is gone.
func (t *Table) Poll() {
	for _, j := range t.List() {
		for {
			var ws unix.WaitStatus
			pid, err := unix.Wait4(-j.JID, &ws, unix.WNOHANG|unix.WUNTRACED|unix.WCONTINUED, nil)
			if err != nil || pid <= 0 {
				break
			}
			t.apply(j, pid, ws)
		}
		if j.Done() {
			t.retire(j, true)
		}
	}
}

// apply records one wait status against the owning stage and prints
// Stopped/Continued transitions as they happen.
func (t *Table) apply(j *Job, pid int, ws unix.WaitStatus) {
	p := j.FindProc(pid)
	if p == nil {
		return
	}

	prev := j.Status()
	switch {
	case ws.Exited():
		p.Completed = true
		p.Stopped = false
		p.ExitStatus = ws.ExitStatus()
	case ws.Signaled():
		p.Completed = true
		p.Stopped = false
		p.Signaled = true
		p.ExitStatus = int(ws.Signal())
	case ws.Stopped():
		p.Stopped = true
	case ws.Continued():
		p.Stopped = false
	}

	switch now := j.Status(); {
	case now == StatusStopped && prev != StatusStopped:
		fmt.Fprintf(t.out, "%d Stopped %s\n", j.JID, j.Raw)
	case now == StatusRunning && prev == StatusStopped:
		fmt.Fprintf(t.out, "%d Continued %s\n", j.JID, j.Raw)
	}
}

// TakeReapedExit hands over the exit status of the most recently
// polled-away job, once. The REPL consumes it after each Poll so that
// background completions update the last exit status the same way
// foreground ones do.
func (t *Table) TakeReapedExit() (int, bool) {
	if !t.reapedSeen {
		return 0, false
	}
	t.reapedSeen = false
	return t.reapedExit, true
}

// retire records the job's exit status, prints the Exited line when
// announced, and removes the job from the table. Foreground jobs that
// exit normally retire silently; everything else is reported.
func (t *Table) retire(j *Job, announce bool) int {
	last := j.last()
	j.ExitStatus = last.ExitStatus
	if announce {
		// Poll-driven reap: the foreground path reports its status
		// through the Foreground return value instead.
		t.reapedExit = j.ExitStatus
		t.reapedSeen = true
	}

	if announce || last.Signaled {
		if last.Signaled {
			fmt.Fprintf(t.out, "%d Exited (%s) %s\n", j.JID, SignalName(last.ExitStatus), j.Raw)
		} else {
			fmt.Fprintf(t.out, "%d Exited (%d) %s\n", j.JID, last.ExitStatus, j.Raw)
		}
	}

	t.Remove(j.JID)
	return j.ExitStatus
}

// Foreground hands the terminal to the job, optionally continues it,
// and blocks until it finishes or stops. The terminal is reclaimed on
// every path out. Returns the job's exit status (0 when it stopped).
func (t *Table) Foreground(j *Job, cont bool) int {
	t.setForegroundPgid(j.JID)
	defer t.setForegroundPgid(0)

	_ = t.term.GiveTo(j.JID)
	defer t.term.Reclaim()

	if cont {
		_ = unix.Kill(-j.JID, unix.SIGCONT)
		for i := range j.Procs {
			j.Procs[i].Stopped = false
		}
	}

	for !j.Done() && !j.Halted() {
		var ws unix.WaitStatus
		pid, err := unix.Wait4(-j.JID, &ws, unix.WUNTRACED, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil || pid <= 0 {
			// ECHILD: the group is gone, nothing left to account for.
			for i := range j.Procs {
				j.Procs[i].Completed = true
			}
			break
		}
		t.apply(j, pid, ws)
	}

	if j.Done() {
		return t.retire(j, false)
	}
	return 0
}

// Background optionally continues the job and returns immediately.
// The Continued transition is reported by the next Poll.
func (t *Table) Background(j *Job, cont bool) {
	if cont {
		_ = unix.Kill(-j.JID, unix.SIGCONT)
	}
}
