package main

import (
	"fmt"
	"strings"

	"github.com/raphi011/pj/internal/config"
	"github.com/raphi011/pj/internal/project"
)

// listKinds are the things the list command can enumerate.
var listKinds = []string{"projects", "commands", "environments"}

func (inv *invocation) runList(kind, projectName string) error {
	switch kind {
	case "projects":
		return inv.listProjects()
	case "commands":
		return inv.listCommands(projectName)
	case "environments":
		return inv.listEnvironments(projectName)
	case "":
		return fmt.Errorf("specify what to list: %s", strings.Join(listKinds, ", "))
	default:
		return fmt.Errorf("unknown list type: %s (available: %s)", kind, strings.Join(listKinds, ", "))
	}
}

// listProjects echoes every project with root, aliases, command count and
// environments, sorted by name.
func (inv *invocation) listProjects() error {
	if len(inv.cfg.Projects) == 0 {
		inv.emit.EchoColor("No projects configured.", "warn")
		return nil
	}

	projects := append([]config.Project(nil), inv.cfg.Projects...)
	sortProjectsByName(projects)

	inv.emit.EchoColor("Available projects:", "cyan")
	inv.emit.Echo("")
	for i := range projects {
		p := &projects[i]
		inv.emit.EchoColor("  "+p.Name, "green")
		inv.emit.Echof("    Root: %s", p.Root)
		if len(p.Aliases) > 0 {
			inv.emit.Echof("    Aliases: %s", strings.Join(sortedStrings(p.Aliases), ", "))
		}
		if len(p.Commands) > 0 {
			inv.emit.Echof("    Commands: %d custom command(s)", len(p.Commands))
		}
		if envs := project.Environments(p); len(envs) > 0 {
			inv.emit.Echof("    Environments: %s", strings.Join(envs, ", "))
		}
		inv.emit.Echo("")
	}
	return nil
}

// listCommands echoes built-in, global and project-scoped command names.
// With a project name it lists that project; otherwise the current
// context.
func (inv *invocation) listCommands(projectName string) error {
	target := inv.project
	if projectName != "" {
		target = project.Find(inv.cfg, projectName)
		if target == nil {
			return inv.unknownProjectError(projectName)
		}
		inv.emit.EchoColor(fmt.Sprintf("Commands for project '%s':", target.Name), "cyan")
	} else {
		inv.emit.EchoColor("Available commands:", "cyan")
	}
	inv.emit.Echo("")

	inv.emit.EchoColor("Built-in commands:", "yellow")
	for _, name := range builtinNames {
		inv.emit.EchoColor("  "+name, "green")
	}
	inv.emit.Echo("")

	if len(inv.cfg.Commands) > 0 {
		inv.emit.EchoColor("Global commands:", "yellow")
		for _, name := range sortedKeys(inv.cfg.Commands) {
			inv.emit.EchoColor("  "+name, "green")
		}
		inv.emit.Echo("")
	}

	if target != nil {
		if len(target.Commands) > 0 {
			inv.emit.EchoColor(fmt.Sprintf("Commands for project (%s):", target.Name), "yellow")
			for _, name := range sortedKeys(target.Commands) {
				inv.emit.EchoColor("  "+name, "green")
			}
			inv.emit.Echo("")
		} else if projectName != "" {
			inv.emit.EchoColor("No project-specific commands.", "warn")
		}
	}
	return nil
}

// listEnvironments echoes the sorted environment names of a project,
// marking the autoload target.
func (inv *invocation) listEnvironments(projectName string) error {
	target := inv.project
	if projectName != "" {
		target = project.Find(inv.cfg, projectName)
		if target == nil {
			return inv.unknownProjectError(projectName)
		}
	} else if target == nil {
		return fmt.Errorf("not in a project: specify a project name (pj list environments <project>)")
	}

	envs := project.Environments(target)
	if len(envs) == 0 {
		inv.emit.EchoColor(fmt.Sprintf("No environments configured for project %s.", target.Name), "warn")
		return nil
	}

	inv.emit.EchoColor(fmt.Sprintf("Environments for project '%s':", target.Name), "cyan")
	inv.emit.Echo("")
	for _, env := range envs {
		inv.emit.EchoColor("  "+env, "green")
		if target.Env != nil && target.Env.Autoload == env {
			inv.emit.Echo("    (autoload)")
		}
	}
	inv.emit.Echo("")
	return nil
}
