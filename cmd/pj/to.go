package main

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/raphi011/pj/internal/project"
	"github.com/raphi011/pj/internal/ui/prompt"
)

// toOptions holds the resolved arguments of the to command.
type toOptions struct {
	Project string // name or alias; empty triggers the interactive picker
	Autorun bool   // run the project's autorun commands
	Command string // optional command to dispatch after navigation
	Copy    bool   // copy the project root to the clipboard
}

// runTo navigates to a project: cd, autoload environment, autorun
// commands and an optional chained command acting as that project.
func (inv *invocation) runTo(opts toOptions) error {
	name := opts.Project
	if name == "" {
		picked, err := inv.pickProject()
		if err != nil {
			return err
		}
		name = picked
	}

	p := project.Find(inv.cfg, name)
	if p == nil {
		return inv.unknownProjectError(name)
	}
	inv.log.Debug("navigating to project", "name", p.Name)

	if p.Root == "" {
		return fmt.Errorf("no root directory configured for project %s", p.Name)
	}
	root := project.ExpandPath(p.Root)

	if opts.Copy {
		if err := clipboard.WriteAll(root); err != nil {
			inv.log.Printf("Warning: failed to copy to clipboard: %v\n", err)
		}
	}

	inv.emit.Cd(root)

	if p.Env != nil && p.Env.Autoload != "" {
		inv.log.Debug("auto-loading environment", "name", p.Env.Autoload)
		for _, v := range project.MergeEnvironment(p, p.Env.Autoload) {
			inv.emit.Export(v.Name, v.Value)
		}
	}

	if opts.Autorun {
		for _, command := range p.Autorun {
			inv.emit.Run(command)
		}
	}

	if opts.Command != "" {
		// The chained command acts as the target project, not the one
		// derived from cwd. Statements already emitted above stand even
		// if it fails.
		return inv.withProject(p).dispatch(opts.Command, nil)
	}

	return nil
}

// pickProject runs the interactive picker, or fails with the project
// listing when no terminal is available.
func (inv *invocation) pickProject() (string, error) {
	if len(inv.cfg.Projects) == 0 {
		return "", fmt.Errorf("no projects configured")
	}
	if !prompt.CanPrompt() {
		inv.printProjectListing()
		return "", fmt.Errorf("no project provided")
	}

	items := make([]prompt.Item, len(inv.cfg.Projects))
	for i, p := range inv.cfg.Projects {
		items[i] = prompt.Item{Label: p.Name, Description: p.Root}
	}
	result, err := prompt.Select("Project", items)
	if err != nil {
		return "", err
	}
	if result.Cancelled {
		return "", fmt.Errorf("no project selected")
	}
	return inv.cfg.Projects[result.Index].Name, nil
}
