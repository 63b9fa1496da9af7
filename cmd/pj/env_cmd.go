package main

import (
	"github.com/spf13/cobra"
)

func newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env <environment>",
		Short: "Load an environment for the current project",
		Args:  cobra.MaximumNArgs(1),
		Long: `Export the variables of a named environment for the project the
working directory is in. The project's "default" layer is merged under the
named environment; the named layer wins on conflicts.`,
		Example: `  pj env local
  pj env prod`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			return newInvocation(cmd.Context()).runEnv(name)
		},
	}

	cmd.ValidArgsFunction = completeEnvironments

	return cmd
}
