package commands

import "fmt"

// Jobs lists the live jobs in three left-aligned columns.
func Jobs(c Console, argv []string) int {
	cmd := &SimpleCommand{
		Use:   "jobs",
		Short: "List active jobs.",
	}

	return cmd.Run(c, argv, func() int {
		fmt.Fprintf(c.Stdout(), "%-8s%-13s%s\n", "JID", "STATUS", "COMMAND")
		for _, j := range c.Jobs().List() {
			fmt.Fprintf(c.Stdout(), "%-8d%-13s%s\n", j.JID, j.Status(), j.Raw)
		}
		return 0
	})
}

func init() {
	register("jobs", Jobs)
}
