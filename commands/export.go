package commands

import (
	"fmt"
	"os"
	"strings"
)

// Export sets environment variables for subsequently launched jobs.
// NAME alone sets the empty string; a leading = is invalid.
func Export(c Console, argv []string) int {
	cmd := &SimpleCommand{
		Use:   "export NAME[=VALUE] ...",
		Short: "Set an environment variable.",
	}

	return cmd.Run(c, argv, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			fmt.Fprintf(c.Stderr(), "export: expected NAME[=VALUE]\n")
			return 1
		}

		for _, arg := range args {
			name, value, _ := strings.Cut(arg, "=")
			if name == "" {
				fmt.Fprintf(c.Stderr(), "export: %s: not a valid identifier\n", arg)
				return 1
			}
			if err := os.Setenv(name, value); err != nil {
				fmt.Fprintf(c.Stderr(), "export: %v\n", err)
				return 1
			}
		}
		return 0
	})
}

func init() {
	register("export", Export)
}
