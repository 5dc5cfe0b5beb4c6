// Package core runs the read-eval loop.
package core

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/user"
	"strings"

	"github.com/abiosoft/readline"

	"github.com/brandoncanaday/1730sh/commands"
	"github.com/brandoncanaday/1730sh/core/job"
	"github.com/brandoncanaday/1730sh/core/parse"
)

// Shell owns the readline instance, the job table, and the last exit
// status. One Shell runs per invocation.
type Shell struct {
	rl   *readline.Instance
	jobs *job.Table
	home string

	lastExit int
	exiting  bool
	exitCode int
}

// NewShell wires the terminal, the job table, the signal policy, and
// line editing.
func NewShell() (*Shell, error) {
	term := job.CurrentTerminal()
	table := job.NewTable(os.Stdout, term)
	job.InstallSignalPolicy(table)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, err
	}

	return &Shell{
		rl:   rl,
		jobs: table,
		home: homeDir(),
	}, nil
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	if u, err := user.Current(); err == nil {
		return u.HomeDir
	}
	return "/"
}

// Close releases the readline instance.
func (s *Shell) Close() error {
	return s.rl.Close()
}

// ExitCode reports the status requested by the exit builtin; zero
// after a plain EOF.
func (s *Shell) ExitCode() int {
	return s.exitCode
}

// Prompt renders the fresh-line prompt with $HOME shown as ~.
func (s *Shell) Prompt() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "?"
	}
	return promptString(wd, s.home)
}

func promptString(wd, home string) string {
	if wd == home {
		wd = "~"
	} else if strings.HasPrefix(wd, home+"/") {
		wd = "~" + strings.TrimPrefix(wd, home)
	}
	return fmt.Sprintf("1730sh:%s$ ", wd)
}

// Run is the read-eval loop. It returns on EOF or after the exit
// builtin fires; the requested status is available from ExitCode.
func (s *Shell) Run() error {
	printBanner(os.Stdout)

	for !s.exiting {
		s.jobs.Poll()
		if code, ok := s.jobs.TakeReapedExit(); ok {
			s.lastExit = code
		}
		s.rl.SetPrompt(s.Prompt())

		line, err := s.rl.Readline()
		switch {
		case err == io.EOF:
			return nil
		case err == readline.ErrInterrupt:
			continue
		case err != nil:
			log.Printf("readline: %v", err)
			continue
		}

		line = strings.Trim(line, " \t")
		if line == "" {
			continue
		}

		line, err = s.gatherContinuations(line)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			continue
		}

		s.eval(line)
	}
	return nil
}

// gatherContinuations keeps reading with the secondary prompt while
// the line has an open quote or a hanging pipe. Continued lines join
// with a space after a pipe and with no separator inside a quote.
func (s *Shell) gatherContinuations(line string) (string, error) {
	for {
		open := parse.OpenQuote(line)
		if !open && !parse.HangingPipe(line) {
			return line, nil
		}

		s.rl.SetPrompt("> ")
		next, err := s.rl.Readline()
		if err != nil {
			return "", err
		}
		line += joiner(open) + strings.Trim(next, " \t")
	}
}

func joiner(openQuote bool) string {
	if openQuote {
		return ""
	}
	return " "
}

// eval parses and dispatches one completed line.
func (s *Shell) eval(line string) {
	j, err := parse.Build(line)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	if len(j.Procs) == 1 {
		if fn, ok := commands.AllBuiltins[j.Procs[0].Args[0]]; ok {
			s.lastExit = s.runBuiltin(fn, j)
			return
		}
	}

	status, err := s.jobs.Launch(j)
	if err != nil {
		if errors.Is(err, job.ErrSpawn) {
			// Past the first fork the pipeline can no longer be
			// abandoned cleanly; report and bail.
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if j.Foreground {
		s.lastExit = status
	}
}

// runBuiltin executes a builtin in-process. The job's redirections are
// resolved the same way as for external pipelines and routed to the
// builtin through its Console; the shell's own stdio is untouched.
func (s *Shell) runBuiltin(fn commands.BuiltinFunc, j *job.Job) int {
	stdio, err := job.OpenRedirects(j)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer stdio.Close()

	console := &builtinConsole{
		shell: s,
		in:    os.Stdin,
		out:   os.Stdout,
		errw:  os.Stderr,
	}
	if stdio.In != nil {
		console.in = stdio.In
	}
	if stdio.Out != nil {
		console.out = stdio.Out
	}
	if stdio.Err != nil {
		console.errw = stdio.Err
	}

	return fn(console, j.Procs[0].Args)
}

// builtinConsole adapts one builtin invocation onto the shell.
type builtinConsole struct {
	shell *Shell
	in    io.Reader
	out   io.Writer
	errw  io.Writer
}

var _ commands.Console = (*builtinConsole)(nil)

func (c *builtinConsole) Stdin() io.Reader  { return c.in }
func (c *builtinConsole) Stdout() io.Writer { return c.out }
func (c *builtinConsole) Stderr() io.Writer { return c.errw }

func (c *builtinConsole) Jobs() *job.Table    { return c.shell.jobs }
func (c *builtinConsole) LastExitStatus() int { return c.shell.lastExit }
func (c *builtinConsole) Home() string        { return c.shell.home }

func (c *builtinConsole) Exit(code int) {
	c.shell.exiting = true
	c.shell.exitCode = code
}
