// Package commands holds the shell's built-in commands. Each builtin
// lives in its own file and registers itself at init time.
package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	getopt "github.com/pborman/getopt/v2"

	"github.com/brandoncanaday/1730sh/core/job"
)

// Console is the slice of the shell a builtin runs against. The stdio
// streams already honor the invocation's redirections, so builtins
// never touch os.Stdout directly.
type Console interface {
	Stdin() io.Reader
	Stdout() io.Writer
	Stderr() io.Writer

	Jobs() *job.Table
	LastExitStatus() int
	Home() string
	// Exit asks the REPL to terminate with the given code once the
	// builtin returns.
	Exit(code int)
}

// BuiltinFunc runs a builtin. argv[0] is the command name. The return
// value becomes the shell's last exit status.
type BuiltinFunc func(c Console, argv []string) int

// AllBuiltins maps builtin names to implementations.
var AllBuiltins = make(map[string]BuiltinFunc)

func register(name string, fn BuiltinFunc) {
	AllBuiltins[name] = fn
}

// IsBuiltin reports whether name is handled in-process.
func IsBuiltin(name string) bool {
	_, ok := AllBuiltins[name]
	return ok
}

// Names returns the registered builtin names, sorted.
func Names() []string {
	names := make([]string, 0, len(AllBuiltins))
	for name := range AllBuiltins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ColorBoldCyan prints highlighted interactive chrome, like the
// startup banner.
var ColorBoldCyan = color.New(color.FgCyan, color.Bold)

// SimpleCommand wires getopt flag parsing and a --help flag in front
// of a builtin's body.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string

	showHelp *bool
	flags    *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}
	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
}

// Run parses argv and, if parsing succeeded and help wasn't requested,
// calls the callback. Remaining operands are available from Flags().Args().
func (s *SimpleCommand) Run(c Console, argv []string, callback func() int) int {
	opts := s.Flags()
	if s.showHelp == nil {
		s.showHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	if err := opts.Getopt(argv, nil); err != nil {
		fmt.Fprintf(c.Stderr(), "%s: %s\n", argv[0], err)
		s.PrintHelp(c.Stderr())
		return 1
	}

	if *s.showHelp {
		s.PrintHelp(c.Stdout())
		return 0
	}

	return callback()
}
