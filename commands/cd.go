package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Cd changes the working directory. With no operand it goes home; a
// leading ~ in the operand expands to the home directory.
func Cd(c Console, argv []string) int {
	cmd := &SimpleCommand{
		Use:   "cd [PATH]",
		Short: "Change the working directory.",
	}

	return cmd.Run(c, argv, func() int {
		args := cmd.Flags().Args()

		var target string
		switch len(args) {
		case 0:
			target = c.Home()
		case 1:
			target = args[0]
		default:
			fmt.Fprintf(c.Stderr(), "cd: too many arguments\n")
			return 1
		}

		if strings.HasPrefix(target, "~") {
			target = filepath.Join(c.Home(), strings.TrimPrefix(target, "~"))
		}

		if err := os.Chdir(target); err != nil {
			if pathErr, ok := err.(*os.PathError); ok {
				fmt.Fprintf(c.Stderr(), "cd: %s: %v\n", target, pathErr.Err)
			} else {
				fmt.Fprintf(c.Stderr(), "cd: %v\n", err)
			}
			return 1
		}
		return 0
	})
}

func init() {
	register("cd", Cd)
}
