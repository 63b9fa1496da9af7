package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/pj/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "config [edit|validate|path]",
		Short:     "Manage the configuration file",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"edit", "validate", "path"},
		Example: `  pj config           # open the config in $EDITOR
  pj config validate
  pj config path`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sub := "edit"
			if len(args) > 0 {
				sub = args[0]
			}
			return newInvocation(cmd.Context()).runConfig(sub)
		},
	}

	return cmd
}

func (inv *invocation) runConfig(sub string) error {
	switch sub {
	case "edit":
		// The editor has to run in the parent shell so it owns the
		// terminal; /dev/tty restores stdin past the eval capture.
		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vim"
		}
		inv.emit.Run(fmt.Sprintf("%s %s </dev/tty", editor, inv.cfg.Path))
		return nil
	case "validate":
		if err := config.Validate(inv.cfg); err != nil {
			return err
		}
		inv.log.Errorf("Configuration is valid: %s\n", inv.cfg.Path)
		return nil
	case "path":
		inv.log.Errorln(inv.cfg.Path)
		return nil
	default:
		return fmt.Errorf("unknown config subcommand: %s (available: edit, validate, path)", sub)
	}
}
