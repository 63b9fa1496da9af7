// Package config loads and validates the pj configuration.
// The configuration is a static TOML document; it is read once per
// invocation and immutable afterwards.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvPathVar names the environment variable that can point at an
// alternative config file.
const EnvPathVar = "PJ_CONFIG"

// EnvSet holds a project's named environment variable layers.
// The "default" layer is merged under every named environment; Autoload
// names the environment applied automatically on navigation.
type EnvSet struct {
	Autoload string
	Layers   map[string]map[string]string
}

// Project is a single configured project.
type Project struct {
	Name     string
	Root     string
	Aliases  []string
	Commands map[string]string
	Autorun  []string
	Env      *EnvSet
}

// Config is the loaded pj configuration.
type Config struct {
	Projects []Project
	Commands map[string]string
	Path     string // source file the config was loaded from
}

// rawProject mirrors the TOML shape before env processing. The env table
// mixes a string (autoload) with sub-tables, so it needs custom parsing.
type rawProject struct {
	Name     string            `toml:"name"`
	Root     string            `toml:"root"`
	Aliases  []string          `toml:"aliases"`
	Commands map[string]string `toml:"commands"`
	Autorun  []string          `toml:"autorun"`
	Env      map[string]any    `toml:"env"`
}

type rawConfig struct {
	Projects []rawProject      `toml:"projects"`
	Commands map[string]string `toml:"commands"`
}

// defaultPath returns the fallback config file location.
func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pj", "config.toml"), nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// ResolvePath determines which config file to load.
// Priority: explicit override flag > PJ_CONFIG environment variable >
// ~/.config/pj/config.toml. An override or PJ_CONFIG path that does not
// exist is an error; a missing default path means "no configuration".
func ResolvePath(override string) (string, error) {
	if override != "" {
		path, err := expandPath(override)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file not found: %s", path)
		}
		return path, nil
	}

	if env := os.Getenv(EnvPathVar); env != "" {
		path, err := expandPath(env)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file from %s not found: %s", EnvPathVar, path)
		}
		return path, nil
	}

	path, err := defaultPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("no configuration file found: create %s, set %s, or pass --config", path, EnvPathVar)
		}
		return "", err
	}
	return path, nil
}

// Load resolves, reads, parses and validates the configuration.
func Load(override string) (*Config, error) {
	path, err := ResolvePath(override)
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads and validates the configuration at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	var problems []string
	if !md.IsDefined("projects") {
		problems = append(problems, "config must contain a 'projects' list")
	}

	cfg := &Config{
		Commands: raw.Commands,
		Path:     path,
	}
	for i, rp := range raw.Projects {
		cfg.Projects = append(cfg.Projects, buildProject(rp, i, &problems))
	}

	problems = append(problems, check(cfg)...)
	if len(problems) > 0 {
		return nil, &Error{Path: path, Problems: problems}
	}
	return cfg, nil
}

// buildProject converts a raw project, collecting env shape problems.
func buildProject(rp rawProject, index int, problems *[]string) Project {
	p := Project{
		Name:     rp.Name,
		Root:     rp.Root,
		Aliases:  rp.Aliases,
		Commands: rp.Commands,
		Autorun:  rp.Autorun,
	}
	if rp.Env == nil {
		return p
	}

	prefix := projectLabel(rp.Name, index)
	env := &EnvSet{Layers: make(map[string]map[string]string)}
	for key, value := range rp.Env {
		if key == "autoload" {
			s, ok := value.(string)
			if !ok {
				*problems = append(*problems, fmt.Sprintf("%s 'env.autoload' must be a string", prefix))
				continue
			}
			env.Autoload = s
			continue
		}
		layer, ok := value.(map[string]any)
		if !ok {
			*problems = append(*problems, fmt.Sprintf("%s 'env.%s' must be a table of variables", prefix, key))
			continue
		}
		vars := make(map[string]string, len(layer))
		for name, v := range layer {
			s, err := scalarString(v)
			if err != nil {
				*problems = append(*problems, fmt.Sprintf("%s 'env.%s.%s' must be a scalar value", prefix, key, name))
				continue
			}
			vars[name] = s
		}
		env.Layers[key] = vars
	}
	p.Env = env
	return p
}

// scalarString renders a TOML scalar as an environment variable value.
func scalarString(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return fmt.Sprintf("%t", val), nil
	case int64:
		return fmt.Sprintf("%d", val), nil
	case float64:
		return fmt.Sprintf("%g", val), nil
	default:
		return "", fmt.Errorf("not a scalar: %T", v)
	}
}

func projectLabel(name string, index int) string {
	if name != "" {
		return fmt.Sprintf("project %q", name)
	}
	return fmt.Sprintf("project %d", index)
}
