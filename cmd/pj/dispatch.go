package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/pj/internal/config"
	"github.com/raphi011/pj/internal/emit"
	"github.com/raphi011/pj/internal/log"
	"github.com/raphi011/pj/internal/project"
	"github.com/raphi011/pj/internal/suggest"
)

// builtinNames are the fixed built-in command names. They resolve before
// any custom command, so core navigation works regardless of
// configuration.
var builtinNames = []string{"to", "env", "config", "list", "completion"}

// invocation carries the state of one command execution: the loaded
// configuration, the acting project and the output sinks. A chained
// command runs with a child invocation whose acting project is the
// navigation target; nothing is mutated or restored.
type invocation struct {
	cfg     *config.Config
	project *config.Project // acting project, nil outside any project
	emit    *emit.Emitter
	log     *log.Logger
}

func newInvocation(ctx context.Context) *invocation {
	return &invocation{
		cfg:     cfg,
		project: current,
		emit:    emit.FromContext(ctx),
		log:     log.FromContext(ctx),
	}
}

// withProject returns a child invocation acting as p.
func (inv *invocation) withProject(p *config.Project) *invocation {
	child := *inv
	child.project = p
	return &child
}

// dispatch resolves name in precedence order: built-in, then the acting
// project's commands, then global commands. Unresolved names fail with
// fuzzy suggestions.
func (inv *invocation) dispatch(name string, args []string) error {
	switch name {
	case "to":
		opts := toOptions{Autorun: true}
		if len(args) > 0 {
			opts.Project = args[0]
		}
		if len(args) > 1 {
			opts.Command = args[1]
		}
		return inv.runTo(opts)
	case "env":
		var environment string
		if len(args) > 0 {
			environment = args[0]
		}
		return inv.runEnv(environment)
	case "list":
		var kind, projectName string
		if len(args) > 0 {
			kind = args[0]
		}
		if len(args) > 1 {
			projectName = args[1]
		}
		return inv.runList(kind, projectName)
	case "config":
		sub := "edit"
		if len(args) > 0 {
			sub = args[0]
		}
		return inv.runConfig(sub)
	case "completion":
		var shell string
		if len(args) > 0 {
			shell = args[0]
		}
		return runCompletion(shell)
	}

	if body, ok := inv.lookupCustom(name); ok {
		inv.log.Debug("running custom command", "name", name)
		inv.emit.Run(body)
		return nil
	}

	if s := suggest.Similar(name, inv.allCommandNames()); len(s) > 0 {
		return fmt.Errorf("command not found: %s (did you mean: %s?)", name, strings.Join(s, ", "))
	}
	return fmt.Errorf("command not found: %s", name)
}

// lookupCustom returns the shell body for a custom command name.
// Project-scoped commands override global commands of the same name.
func (inv *invocation) lookupCustom(name string) (string, bool) {
	if inv.project != nil {
		if body, ok := inv.project.Commands[name]; ok {
			return body, true
		}
	}
	if body, ok := inv.cfg.Commands[name]; ok {
		return body, true
	}
	return "", false
}

// allCommandNames returns the built-ins plus every custom command
// reachable from the acting project, for suggestion purposes.
func (inv *invocation) allCommandNames() []string {
	names := append([]string(nil), builtinNames...)
	for name := range inv.cfg.Commands {
		names = append(names, name)
	}
	if inv.project != nil {
		for name := range inv.project.Commands {
			names = append(names, name)
		}
	}
	return names
}

// printProjectListing writes the sorted project listing to stderr,
// used on project resolution failures.
func (inv *invocation) printProjectListing() {
	if len(inv.cfg.Projects) == 0 {
		return
	}
	inv.log.Errorln()
	inv.log.Errorln("Available projects:")
	for _, name := range sortedProjectLines(inv.cfg) {
		inv.log.Errorln("  " + name)
	}
}

// sortedProjectLines renders "name (aliases: ...)" lines sorted by name.
func sortedProjectLines(cfg *config.Config) []string {
	projects := append([]config.Project(nil), cfg.Projects...)
	sortProjectsByName(projects)

	lines := make([]string, 0, len(projects))
	for _, p := range projects {
		line := p.Name
		if len(p.Aliases) > 0 {
			line += fmt.Sprintf(" (aliases: %s)", strings.Join(sortedStrings(p.Aliases), ", "))
		}
		lines = append(lines, line)
	}
	return lines
}

// unknownProjectError reports a failed project lookup with suggestions.
func (inv *invocation) unknownProjectError(name string) error {
	inv.printProjectListing()
	if s := suggest.Similar(name, project.AllNames(inv.cfg)); len(s) > 0 {
		return fmt.Errorf("there is no project %q configured (did you mean: %s?)", name, strings.Join(s, ", "))
	}
	return fmt.Errorf("there is no project %q configured", name)
}
