// Package project resolves projects by name, alias and working directory.
package project

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/raphi011/pj/internal/config"
)

// EnvVar is a single resolved environment variable.
type EnvVar struct {
	Name  string
	Value string
}

// ExpandPath expands ~ and $VAR references and returns a cleaned
// absolute path.
func ExpandPath(path string) string {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// Find returns the project whose name equals query, else the first
// project listing query as an alias, else nil. Name matches win over
// alias matches across the whole list, so an alias can never shadow
// another project's name.
func Find(cfg *config.Config, query string) *config.Project {
	for i := range cfg.Projects {
		if cfg.Projects[i].Name == query {
			return &cfg.Projects[i]
		}
	}
	for i := range cfg.Projects {
		for _, alias := range cfg.Projects[i].Aliases {
			if alias == query {
				return &cfg.Projects[i]
			}
		}
	}
	return nil
}

// Current returns the first project, in configuration order, whose
// expanded root contains cwd. Containment is by path components, not
// string prefix: /tmp/test-project2 is not inside /tmp/test-project.
func Current(cfg *config.Config, cwd string) *config.Project {
	cwd = ExpandPath(cwd)
	for i := range cfg.Projects {
		p := &cfg.Projects[i]
		if p.Root == "" {
			continue
		}
		if contains(ExpandPath(p.Root), cwd) {
			return p
		}
	}
	return nil
}

// contains reports whether path is root or a descendant of root.
func contains(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// AllNames returns every project name followed by its aliases, in
// configuration order. Used for suggestions and completion.
func AllNames(cfg *config.Config) []string {
	var names []string
	for _, p := range cfg.Projects {
		if p.Name != "" {
			names = append(names, p.Name)
		}
		names = append(names, p.Aliases...)
	}
	return names
}

// Environments returns the sorted environment names of a project,
// excluding the reserved "default" layer.
func Environments(p *config.Project) []string {
	if p.Env == nil {
		return nil
	}
	var names []string
	for name := range p.Env.Layers {
		if name != "default" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// MergeEnvironment merges the project's "default" layer under the named
// environment (the named layer wins on conflicts) and returns the result
// sorted by variable name, so export emission is deterministic.
func MergeEnvironment(p *config.Project, name string) []EnvVar {
	if p.Env == nil {
		return nil
	}
	merged := make(map[string]string)
	for k, v := range p.Env.Layers["default"] {
		merged[k] = v
	}
	for k, v := range p.Env.Layers[name] {
		merged[k] = v
	}

	vars := make([]EnvVar, 0, len(merged))
	for k, v := range merged {
		vars = append(vars, EnvVar{Name: k, Value: v})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
