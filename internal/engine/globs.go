package engine

import (
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// allowedByGlobs applies the CLI-level include/exclude filter. Include
// globs, when present, act as a positive filter; exclude globs are
// subtracted last. This layer uses segment-aware doublestar semantics and
// sits on top of the core exclusion engine, which deliberately does not.
func allowedByGlobs(path, includeGlobs, excludeGlobs string) bool {
	p := strings.ReplaceAll(path, "\\", "/")
	includes := parseGlobsList(includeGlobs)
	excludes := parseGlobsList(excludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(p, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(p, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
