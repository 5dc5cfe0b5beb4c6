package commands

import (
	"fmt"
	"strconv"
)

// Exit terminates the shell. N defaults to the last exit status. The
// job table is emptied first so nothing dangles past the REPL.
func Exit(c Console, argv []string) int {
	cmd := &SimpleCommand{
		Use:   "exit [N]",
		Short: "Exit the shell with status N.",
	}

	return cmd.Run(c, argv, func() int {
		code := c.LastExitStatus()

		args := cmd.Flags().Args()
		switch len(args) {
		case 0:
		case 1:
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintf(c.Stderr(), "exit: %s: numeric argument required\n", args[0])
				return 1
			}
			code = n
		default:
			fmt.Fprintf(c.Stderr(), "exit: too many arguments\n")
			return 1
		}

		c.Jobs().Reset()
		c.Exit(code)
		return code
	})
}

func init() {
	register("exit", Exit)
}
