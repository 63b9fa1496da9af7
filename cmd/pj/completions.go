package main

import (
	"os"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/raphi011/pj/internal/config"
	"github.com/raphi011/pj/internal/project"
)

// completionConfig loads the config for dynamic completion. Completion
// runs outside the normal setup path, so it loads (and silently drops
// errors) on its own.
func completionConfig(cmd *cobra.Command) *config.Config {
	override, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(override)
	if err != nil {
		return nil
	}
	return loaded
}

// fuzzyFilter narrows candidates to those fuzzy-matching toComplete,
// best matches first. An empty pattern returns all candidates.
func fuzzyFilter(candidates []string, toComplete string) []string {
	if toComplete == "" {
		return candidates
	}
	matches := fuzzy.Find(toComplete, candidates)
	filtered := make([]string, len(matches))
	for i, m := range matches {
		filtered[i] = m.Str
	}
	return filtered
}

// completeProjects provides project name and alias completion.
func completeProjects(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		// Second positional of `to` is a command name
		return completeCommandNames(cmd, toComplete)
	}
	loaded := completionConfig(cmd)
	if loaded == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return fuzzyFilter(project.AllNames(loaded), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeCommandNames completes built-in and custom command names.
func completeCommandNames(cmd *cobra.Command, toComplete string) ([]string, cobra.ShellCompDirective) {
	loaded := completionConfig(cmd)
	if loaded == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	names := append([]string(nil), builtinNames...)
	names = append(names, sortedKeys(loaded.Commands)...)
	if wd, err := os.Getwd(); err == nil {
		if p := project.Current(loaded, wd); p != nil {
			names = append(names, sortedKeys(p.Commands)...)
		}
	}
	return fuzzyFilter(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeEnvironments provides environment name completion for the
// current project.
func completeEnvironments(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	loaded := completionConfig(cmd)
	if loaded == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	p := project.Current(loaded, wd)
	if p == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return fuzzyFilter(project.Environments(p), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeListArgs completes the list kind, then a project name.
func completeListArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return fuzzyFilter(listKinds, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
	if len(args) == 1 && args[0] != "projects" {
		loaded := completionConfig(cmd)
		if loaded == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return fuzzyFilter(project.AllNames(loaded), toComplete), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
