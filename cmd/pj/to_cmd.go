package main

import (
	"github.com/spf13/cobra"
)

func newToCmd() *cobra.Command {
	var noAutorun bool
	var copyPath bool

	cmd := &cobra.Command{
		Use:   "to [project] [command]",
		Short: "Jump to a project directory",
		Args:  cobra.MaximumNArgs(2),
		Long: `Jump to a project directory by name or alias.

Emits a cd statement, exports the project's autoload environment and runs
its autorun commands. An optional second argument names a command (built-in
or custom) to run after navigation, resolved against the target project.

With no arguments an interactive picker opens when a terminal is available.`,
		Example: `  pj to backend            # cd + autoload env + autorun
  pj to be                 # same, via alias
  pj to backend --no-autorun
  pj to backend start      # navigate, then run the 'start' command
  pj to                    # interactive project picker`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := toOptions{
				Autorun: !noAutorun,
				Copy:    copyPath,
			}
			if len(args) > 0 {
				opts.Project = args[0]
			}
			if len(args) > 1 {
				opts.Command = args[1]
			}
			return newInvocation(cmd.Context()).runTo(opts)
		},
	}

	cmd.Flags().BoolVar(&noAutorun, "no-autorun", false, "Skip the project's autorun commands")
	cmd.Flags().BoolVar(&copyPath, "copy", false, "Copy the project root to the clipboard")

	cmd.ValidArgsFunction = completeProjects

	return cmd
}
