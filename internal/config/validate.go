package config

import (
	"fmt"
	"strings"
)

// Error reports one or more structural problems in a configuration file.
type Error struct {
	Path     string
	Problems []string
}

func (e *Error) Error() string {
	msg := "configuration validation failed"
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	return msg + ":\n  - " + strings.Join(e.Problems, "\n  - ")
}

// Validate re-checks the structural invariants of a loaded configuration.
// Load already runs these checks; this is the public face used by
// `pj config validate`.
func Validate(cfg *Config) error {
	if problems := check(cfg); len(problems) > 0 {
		return &Error{Path: cfg.Path, Problems: problems}
	}
	return nil
}

// check collects invariant violations on the typed configuration.
func check(cfg *Config) []string {
	var problems []string
	for i, p := range cfg.Projects {
		prefix := projectLabel(p.Name, i)
		if p.Name == "" {
			problems = append(problems, fmt.Sprintf("%s must have a 'name' field", prefix))
		}
		if p.Root == "" {
			problems = append(problems, fmt.Sprintf("%s must have a 'root' field", prefix))
		}
		if p.Env != nil && p.Env.Autoload != "" {
			if _, ok := p.Env.Layers[p.Env.Autoload]; !ok {
				problems = append(problems, fmt.Sprintf(
					"%s 'env.autoload' references undefined environment %q", prefix, p.Env.Autoload))
			}
		}
	}
	return problems
}
