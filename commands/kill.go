package commands

import (
	"fmt"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/brandoncanaday/1730sh/core/job"
)

const killUsage = "usage: kill [-s SIG] PID"

// Kill sends a signal (default SIGTERM) to a process. The PID operand
// has kill(2) semantics, including 0 and negative process groups, so
// argv is scanned by hand: getopt would eat a negative pid as flags.
func Kill(c Console, argv []string) int {
	args := argv[1:]
	sig := unix.SIGTERM

	if len(args) > 0 && (args[0] == "--help" || args[0] == "-h") {
		fmt.Fprintln(c.Stdout(), killUsage)
		fmt.Fprintln(c.Stdout(), "Send a signal to a process.")
		return 0
	}

	if len(args) > 0 && args[0] == "-s" {
		if len(args) < 2 {
			fmt.Fprintln(c.Stderr(), killUsage)
			return 1
		}
		parsed, err := job.ParseSignal(args[1])
		if err != nil {
			fmt.Fprintf(c.Stderr(), "kill: %v\n", err)
			return 1
		}
		sig = parsed
		args = args[2:]
	}

	if len(args) != 1 {
		fmt.Fprintln(c.Stderr(), killUsage)
		return 1
	}
	pid, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(c.Stderr(), "kill: %s: arguments must be process ids\n", args[0])
		return 1
	}

	if err := unix.Kill(pid, sig); err != nil {
		fmt.Fprintf(c.Stderr(), "kill: (%d): %v\n", pid, err)
		return 1
	}
	return 0
}

func init() {
	register("kill", Kill)
}
