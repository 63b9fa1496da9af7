package main

import (
	"sort"

	"github.com/raphi011/pj/internal/config"
)

// sortedStrings returns a sorted copy of ss.
func sortedStrings(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}

// sortedKeys returns the sorted keys of a command map.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortProjectsByName(projects []config.Project) {
	sort.Slice(projects, func(i, j int) bool { return projects[i].Name < projects[j].Name })
}
