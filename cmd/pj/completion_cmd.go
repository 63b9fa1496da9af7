package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "completion <shell>",
		Short:     "Generate completion script",
		Long:      `Generate shell completion script.`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.ExactArgs(1),
		Example: `  # Fish
  pj completion fish > ~/.config/fish/completions/pj.fish

  # Bash
  pj completion bash > ~/.local/share/bash-completion/completions/pj

  # Zsh
  pj completion zsh > ~/.zfunc/_pj
  # Then add ~/.zfunc to fpath in .zshrc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompletion(args[0])
		},
	}

	return cmd
}

// runCompletion writes the completion script for the given shell to
// stdout. Completion output is the one case where stdout is not a pj
// script; it is meant to be sourced, not eval'd through the wrapper.
func runCompletion(shell string) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletion(os.Stdout)
	case "zsh":
		return rootCmd.GenZshCompletion(os.Stdout)
	case "fish":
		return rootCmd.GenFishCompletion(os.Stdout, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
	}
	return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish, powershell)", shell)
}
