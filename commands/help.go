package commands

import "fmt"

const helpText = `1730sh, an interactive job-control shell.
These commands are defined internally:

 bg JID               resume a stopped job in the background
 cd [PATH]            change the working directory
 exit [N]             exit the shell with status N
 export NAME[=VALUE]  set an environment variable
 fg JID               move a job to the foreground
 help                 print this list
 jobs                 list active jobs
 kill [-s SIG] PID    send a signal to a process

Anything else runs as an external pipeline. Separate stages with |,
redirect with <, >, >>, e>, e>>, and end the line with & to run it in
the background.
`

// Help prints the usage blurb.
func Help(c Console, argv []string) int {
	cmd := &SimpleCommand{
		Use:   "help",
		Short: "Print the list of built-in commands.",
	}

	return cmd.Run(c, argv, func() int {
		fmt.Fprint(c.Stdout(), helpText)
		return 0
	})
}

func init() {
	register("help", Help)
}
