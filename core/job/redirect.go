package job

import (
	"fmt"
	"os"
)

// Stdio holds the files resolved from a job's redirection spec. A nil
// field means the inherited standard stream.
type Stdio struct {
	In  *os.File
	Out *os.File
	Err *os.File

	closed bool
}

// OpenRedirects resolves all three streams before any child exists, so
// an unopenable file abandons the job with nothing to clean up.
func OpenRedirects(j *Job) (*Stdio, error) {
	s := &Stdio{}

	if j.Stdin != nil {
		f, err := os.Open(j.Stdin.Path)
		if err != nil {
			return nil, fmt.Errorf("%s: No such file or directory", j.Stdin.Path)
		}
		s.In = f
	}

	if j.Stdout != nil {
		f, err := openSink(j.Stdout)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("'%s' cannot be opened", j.Stdout.Path)
		}
		s.Out = f
	}

	if j.Stderr != nil {
		f, err := openSink(j.Stderr)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("'%s' cannot be opened", j.Stderr.Path)
		}
		s.Err = f
	}

	return s, nil
}

func openSink(r *Redirect) (*os.File, error) {
	if r.Append {
		return os.OpenFile(r.Path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	}
	return os.OpenFile(r.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
}

// Close releases the opened files. Safe to call more than once; the
// parent closes its copies as soon as the children hold theirs.
func (s *Stdio) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var lastErr error
	for _, f := range []*os.File{s.In, s.Out, s.Err} {
		if f != nil {
			if err := f.Close(); err != nil {
				lastErr = err
			}
		}
	}
	return lastErr
}
