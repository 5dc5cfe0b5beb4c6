package job

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"golang.org/x/sys/unix"
)

// InstallSignalPolicy configures the parent-side dispositions. SIGQUIT,
// SIGTTIN, SIGTTOU and SIGPIPE are ignored outright. SIGINT and SIGTSTP
// are caught and relayed to the foreground process group: a caught
// disposition reverts to default across exec, so children still die or
// stop on Ctrl-C/Ctrl-Z, while SIG_IGN would be inherited by them.
// SIGCHLD is left alone; reaping happens by polling at the top of the
// read-eval loop.
func InstallSignalPolicy(t *Table) {
	signal.Ignore(unix.SIGQUIT, unix.SIGTTIN, unix.SIGTTOU, unix.SIGPIPE)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGINT, unix.SIGTSTP)
	go func() {
		for sig := range ch {
			if pgid := t.ForegroundPgid(); pgid > 0 {
				_ = unix.Kill(-pgid, sig.(unix.Signal))
			}
		}
	}()
}

// portableSignals is the name set accepted by the kill builtin.
var portableSignals = map[string]unix.Signal{
	"SIGHUP":  unix.SIGHUP,
	"SIGINT":  unix.SIGINT,
	"SIGTERM": unix.SIGTERM,
	"SIGKILL": unix.SIGKILL,
	"SIGSTOP": unix.SIGSTOP,
	"SIGCONT": unix.SIGCONT,
	"SIGQUIT": unix.SIGQUIT,
	"SIGALRM": unix.SIGALRM,
	"SIGTSTP": unix.SIGTSTP,
}

// ParseSignal accepts a decimal signal number or a name from the
// portable set.
func ParseSignal(spec string) (unix.Signal, error) {
	if n, err := strconv.Atoi(spec); err == nil {
		if n <= 0 || n >= 65 {
			return 0, fmt.Errorf("%s: invalid signal specification", spec)
		}
		return unix.Signal(n), nil
	}
	if sig, ok := portableSignals[spec]; ok {
		return sig, nil
	}
	return 0, fmt.Errorf("%s: invalid signal specification", spec)
}

// signalNames mirrors strsignal(3) for the signals a job plausibly
// dies by; anything else falls back to the SIG* constant name.
var signalNames = map[unix.Signal]string{
	unix.SIGHUP:  "Hangup",
	unix.SIGINT:  "Interrupt",
	unix.SIGQUIT: "Quit",
	unix.SIGILL:  "Illegal instruction",
	unix.SIGABRT: "Aborted",
	unix.SIGFPE:  "Floating point exception",
	unix.SIGKILL: "Killed",
	unix.SIGSEGV: "Segmentation fault",
	unix.SIGPIPE: "Broken pipe",
	unix.SIGALRM: "Alarm clock",
	unix.SIGTERM: "Terminated",
	unix.SIGUSR1: "User defined signal 1",
	unix.SIGUSR2: "User defined signal 2",
	unix.SIGBUS:  "Bus error",
	unix.SIGTSTP: "Stopped",
	unix.SIGSTOP: "Stopped (signal)",
}

// SignalName renders a signal number the way status lines expect it.
func SignalName(signum int) string {
	sig := unix.Signal(signum)
	if name, ok := signalNames[sig]; ok {
		return name
	}
	if name := unix.SignalName(sig); name != "" {
		return name
	}
	return fmt.Sprintf("Signal %d", signum)
}
