package main

import (
	"fmt"

	"github.com/raphi011/pj/internal/project"
)

// runEnv exports the merged variables of the named environment for the
// current project. Failure diagnostics are emitted as echo statements so
// they show up where the user invoked the shell wrapper.
func (inv *invocation) runEnv(name string) error {
	if inv.project == nil {
		inv.emit.EchoColor("Not inside a project.", "danger")
		return fmt.Errorf("not inside a project")
	}

	if inv.project.Env == nil {
		inv.emit.EchoColor(fmt.Sprintf("No environments configured for project %s.", inv.project.Name), "danger")
		return fmt.Errorf("no environments configured for project %s", inv.project.Name)
	}

	if name == "" {
		inv.emit.EchoColor("No environment given.", "danger")
		inv.echoAvailableEnvironments()
		return fmt.Errorf("no environment given")
	}

	if _, ok := inv.project.Env.Layers[name]; !ok {
		inv.emit.EchoColor(fmt.Sprintf("Environment '%s' not found.", name), "danger")
		inv.echoAvailableEnvironments()
		return fmt.Errorf("environment %q not found", name)
	}

	inv.log.Debug("loading environment", "name", name, "project", inv.project.Name)
	for _, v := range project.MergeEnvironment(inv.project, name) {
		inv.emit.Export(v.Name, v.Value)
	}
	return nil
}

// echoAvailableEnvironments emits the sorted environment names of the
// current project.
func (inv *invocation) echoAvailableEnvironments() {
	envs := project.Environments(inv.project)
	if len(envs) == 0 {
		inv.emit.EchoColor("No environments available.", "warn")
		return
	}
	inv.emit.Echo("")
	inv.emit.Echo("Available environments:")
	for _, env := range envs {
		inv.emit.EchoColor("  "+env, "green")
	}
}
