package commands

import (
	"fmt"
	"strconv"
)

// Fg moves the job with the given jid to the foreground, continuing it
// if it was stopped, and waits for it.
func Fg(c Console, argv []string) int {
	cmd := &SimpleCommand{
		Use:   "fg JID",
		Short: "Move a job to the foreground.",
	}

	return cmd.Run(c, argv, func() int {
		args := cmd.Flags().Args()
		if len(args) != 1 {
			cmd.PrintHelp(c.Stderr())
			return 1
		}

		jid, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(c.Stderr(), "fg: %s: no such job\n", args[0])
			return 1
		}
		j := c.Jobs().Get(jid)
		if j == nil {
			fmt.Fprintf(c.Stderr(), "fg: %d: no such job\n", jid)
			return 1
		}

		return c.Jobs().Foreground(j, true)
	})
}

func init() {
	register("fg", Fg)
}
