// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandGlobs expands any globs among path arguments. Matches of one glob
// are sorted; literal paths keep their position. Duplicates are dropped.
func ExpandGlobs(args []string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, a := range args {
		if !hasGlobMeta(a) {
			add(a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %v", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		sort.Strings(m)
		for _, p := range m {
			add(p)
		}
	}
	return out, nil
}
