// Package job owns pipelines from launch through reaping: process
// groups, the controlling terminal, and the table of active jobs.
package job

// Job status labels as shown in the jobs listing and status lines.
const (
	StatusRunning = "Running"
	StatusStopped = "Stopped"
	StatusDone    = "Done"
)

// Process is one stage of a pipeline. The zero value is a stage that
// has not been forked yet.
type Process struct {
	Args []string
	// PID is assigned at launch; zero until then.
	PID int
	// HasPipe is set on every stage whose stdout feeds the next stage.
	HasPipe bool

	Stopped   bool
	Completed bool
	// ExitStatus is the exit code, or the signal number when Signaled.
	ExitStatus int
	Signaled   bool
}

// Redirect names a file standing in for one of the standard streams.
type Redirect struct {
	Path   string
	Append bool
}

// Job is one user-entered command line: an ordered list of processes
// sharing a process group. Processes are owned by value; stages refer
// to each other only through pids and the shared group id.
type Job struct {
	// JID doubles as the process-group id and equals the pid of the
	// first stage that launched.
	JID        int
	Foreground bool
	// Raw is the trimmed input line, kept verbatim for the jobs listing.
	Raw   string
	Procs []Process

	// Pipeline-wide redirections; nil means the inherited stream.
	// Stdin applies to the first stage, Stdout/Stderr to the last.
	Stdin  *Redirect
	Stdout *Redirect
	Stderr *Redirect

	// ExitStatus of the last stage, recorded when the job retires.
	ExitStatus int
}

// Done reports whether every stage has completed.
func (j *Job) Done() bool {
	for i := range j.Procs {
		if !j.Procs[i].Completed {
			return false
		}
	}
	return true
}

// Halted reports whether every stage has either stopped or completed.
func (j *Job) Halted() bool {
	for i := range j.Procs {
		if !j.Procs[i].Stopped && !j.Procs[i].Completed {
			return false
		}
	}
	return true
}

// Status derives the job's label from its process flags.
func (j *Job) Status() string {
	switch {
	case j.Done():
		return StatusDone
	case j.Halted():
		return StatusStopped
	default:
		return StatusRunning
	}
}

// FindProc returns the stage with the given pid, or nil.
func (j *Job) FindProc(pid int) *Process {
	for i := range j.Procs {
		if j.Procs[i].PID == pid {
			return &j.Procs[i]
		}
	}
	return nil
}

func (j *Job) last() *Process {
	return &j.Procs[len(j.Procs)-1]
}
