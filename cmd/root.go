package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brandoncanaday/1730sh/core"
)

var exitCode int

// rootCmd drops straight into the interactive shell; there are no
// subcommands or positional arguments.
var rootCmd = &cobra.Command{
	Use:   "1730sh",
	Short: "An interactive job-control shell",
	Long: `1730sh is an interactive shell that runs pipelines of processes with
I/O redirection and POSIX job control (fg, bg, jobs, Ctrl-Z).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		sh, err := core.NewShell()
		if err != nil {
			return err
		}
		defer sh.Close()

		if err := sh.Run(); err != nil {
			return err
		}
		exitCode = sh.ExitCode()
		return nil
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
	os.Exit(exitCode)
}
