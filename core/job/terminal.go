package job

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is the shell's controlling terminal. When stdin is not a
// tty (tests, pipes) every ownership transfer is a no-op so the rest
// of the launch path behaves identically.
type Terminal struct {
	FD          int
	ShellPgid   int
	Interactive bool
}

// CurrentTerminal inspects stdin and records the shell's own process
// group for later reclaims.
func CurrentTerminal() *Terminal {
	fd := int(os.Stdin.Fd())
	return &Terminal{
		FD:          fd,
		ShellPgid:   unix.Getpgrp(),
		Interactive: term.IsTerminal(fd),
	}
}

// GiveTo hands the terminal to the given process group.
func (t *Terminal) GiveTo(pgid int) error {
	if !t.Interactive {
		return nil
	}
	return unix.IoctlSetPointerInt(t.FD, unix.TIOCSPGRP, pgid)
}

// Reclaim returns the terminal to the shell. Called on every exit path
// out of a foreground wait; losing the terminal means losing input.
func (t *Terminal) Reclaim() {
	_ = t.GiveTo(t.ShellPgid)
}

// OwnerPgid reports the process group currently owning the terminal.
func (t *Terminal) OwnerPgid() (int, error) {
	return unix.IoctlGetInt(t.FD, unix.TIOCGPGRP)
}
