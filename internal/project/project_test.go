package project

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/raphi011/pj/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Projects: []config.Project{
			{
				Name:    "frontend",
				Root:    "/tmp/frontend",
				Aliases: []string{"fe", "backend"},
			},
			{
				Name:    "backend",
				Root:    "/tmp/backend",
				Aliases: []string{"be"},
			},
			{
				Name: "test-project",
				Root: "/tmp/test-project",
				Env: &config.EnvSet{
					Autoload: "local",
					Layers: map[string]map[string]string{
						"default": {"DEBUG": "true"},
						"local":   {"PORT": "3000", "HOST": "localhost"},
						"prod":    {"PORT": "80", "HOST": "0.0.0.0"},
					},
				},
			},
		},
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  string // project name, "" = not found
	}{
		{name: "by name", query: "frontend", want: "frontend"},
		{name: "by alias", query: "fe", want: "frontend"},
		{name: "by later alias", query: "be", want: "backend"},
		// "backend" is an alias of frontend (listed first) AND the name
		// of the second project: the name match must win.
		{name: "name beats earlier alias", query: "backend", want: "backend"},
		{name: "unknown", query: "nope", want: ""},
	}

	cfg := testConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Find(cfg, tt.query)
			if tt.want == "" {
				if got != nil {
					t.Errorf("Find(%q) = %q, want nil", tt.query, got.Name)
				}
				return
			}
			if got == nil {
				t.Fatalf("Find(%q) = nil, want %q", tt.query, tt.want)
			}
			if got.Name != tt.want {
				t.Errorf("Find(%q) = %q, want %q", tt.query, got.Name, tt.want)
			}
		})
	}
}

func TestCurrent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cwd  string
		want string // project name, "" = none
	}{
		{name: "project root itself", cwd: "/tmp/test-project", want: "test-project"},
		{name: "subdirectory", cwd: "/tmp/test-project/src", want: "test-project"},
		{name: "deep subdirectory", cwd: "/tmp/test-project/src/a/b", want: "test-project"},
		// The classic string-prefix trap: a sibling directory sharing
		// the root as a name prefix is not inside the project.
		{name: "prefix sibling does not match", cwd: "/tmp/test-project2", want: ""},
		{name: "parent does not match", cwd: "/tmp", want: ""},
		{name: "unrelated path", cwd: "/var/log", want: ""},
	}

	cfg := testConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Current(cfg, tt.cwd)
			if tt.want == "" {
				if got != nil {
					t.Errorf("Current(%q) = %q, want nil", tt.cwd, got.Name)
				}
				return
			}
			if got == nil {
				t.Fatalf("Current(%q) = nil, want %q", tt.cwd, tt.want)
			}
			if got.Name != tt.want {
				t.Errorf("Current(%q) = %q, want %q", tt.cwd, got.Name, tt.want)
			}
		})
	}
}

func TestCurrentFirstMatchWins(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Projects: []config.Project{
			{Name: "outer", Root: "/tmp/nest"},
			{Name: "inner", Root: "/tmp/nest/inner"},
		},
	}
	got := Current(cfg, "/tmp/nest/inner/src")
	if got == nil || got.Name != "outer" {
		t.Errorf("Current = %v, want outer (configuration order is significant)", got)
	}
}

func TestAllNames(t *testing.T) {
	t.Parallel()

	got := AllNames(testConfig())
	want := []string{"frontend", "fe", "backend", "backend", "be", "test-project"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllNames = %v, want %v", got, want)
	}
}

func TestEnvironments(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	p := Find(cfg, "test-project")

	got := Environments(p)
	want := []string{"local", "prod"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Environments = %v, want %v (sorted, without default/autoload)", got, want)
	}

	if envs := Environments(&config.Project{Name: "bare"}); envs != nil {
		t.Errorf("Environments without env section = %v, want nil", envs)
	}
}

func TestMergeEnvironment(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	p := Find(cfg, "test-project")

	t.Run("default merged under named layer, sorted by name", func(t *testing.T) {
		t.Parallel()
		got := MergeEnvironment(p, "prod")
		want := []EnvVar{
			{Name: "DEBUG", Value: "true"},
			{Name: "HOST", Value: "0.0.0.0"},
			{Name: "PORT", Value: "80"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("MergeEnvironment = %v, want %v", got, want)
		}
	})

	t.Run("named layer wins on conflict", func(t *testing.T) {
		t.Parallel()
		conflicting := &config.Project{
			Name: "c",
			Env: &config.EnvSet{
				Layers: map[string]map[string]string{
					"default": {"PORT": "1", "DEBUG": "true"},
					"prod":    {"PORT": "80"},
				},
			},
		}
		got := MergeEnvironment(conflicting, "prod")
		want := []EnvVar{
			{Name: "DEBUG", Value: "true"},
			{Name: "PORT", Value: "80"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("MergeEnvironment = %v, want %v", got, want)
		}
	})

	t.Run("deterministic across repeated merges", func(t *testing.T) {
		t.Parallel()
		first := MergeEnvironment(p, "local")
		for range 10 {
			if got := MergeEnvironment(p, "local"); !reflect.DeepEqual(got, first) {
				t.Fatalf("MergeEnvironment not deterministic: %v vs %v", got, first)
			}
		}
	})
}

func TestContains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		root string
		path string
		want bool
	}{
		{"/a/b", "/a/b", true},
		{"/a/b", "/a/b/c", true},
		{"/a/b", "/a/bc", false},
		{"/a/b", "/a", false},
		{"/a/b", "/a/b/../c", false},
	}
	for _, tt := range tests {
		path := filepath.Clean(tt.path)
		if got := contains(tt.root, path); got != tt.want {
			t.Errorf("contains(%q, %q) = %v, want %v", tt.root, path, got, tt.want)
		}
	}
}
