package main

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <projects|commands|environments> [project]",
		Short: "List projects, commands or environments",
		Args:  cobra.RangeArgs(1, 2),
		Example: `  pj list projects
  pj list commands backend
  pj list environments backend`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var projectName string
			if len(args) > 1 {
				projectName = args[1]
			}
			return newInvocation(cmd.Context()).runList(args[0], projectName)
		},
	}

	cmd.ValidArgsFunction = completeListArgs

	return cmd
}
