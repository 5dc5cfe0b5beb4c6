package commands

import (
	"fmt"
	"strconv"
)

// Bg resumes the job with the given jid in the background.
func Bg(c Console, argv []string) int {
	cmd := &SimpleCommand{
		Use:   "bg JID",
		Short: "Resume a stopped job in the background.",
	}

	return cmd.Run(c, argv, func() int {
		args := cmd.Flags().Args()
		if len(args) != 1 {
			cmd.PrintHelp(c.Stderr())
			return 1
		}

		jid, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(c.Stderr(), "bg: %s: no such job\n", args[0])
			return 1
		}
		j := c.Jobs().Get(jid)
		if j == nil {
			fmt.Fprintf(c.Stderr(), "bg: %d: no such job\n", jid)
			return 1
		}

		c.Jobs().Background(j, true)
		return 0
	})
}

func init() {
	register("bg", Bg)
}
