// Package exclude implements the path-exclusion engine: an ordered,
// deduplicated list of glob patterns matched case-insensitively against
// whole paths.
package exclude

import (
	"os"
	"path/filepath"
	"strings"
)

// Engine answers "is this path excluded". Patterns are built once before
// traversal and consulted read-only for the rest of the run. Matching is
// case-insensitive and `*` matches any run of characters, path separators
// included: patterns apply to the full path as a single string, not per
// segment. This deliberately diverges from shell-glob semantics; changing
// it would change which files are skipped.
type Engine struct {
	patterns  []string
	seen      map[string]struct{}
	protected map[string]struct{}
}

func New() *Engine {
	return &Engine{
		seen:      make(map[string]struct{}),
		protected: make(map[string]struct{}),
	}
}

// Add inserts a pattern. Blank or whitespace-only input is ignored, as
// are exact (case-sensitive) duplicates. Insertion order is preserved.
func (e *Engine) Add(pattern string) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return
	}
	if _, dup := e.seen[pattern]; dup {
		return
	}
	e.seen[pattern] = struct{}{}
	e.patterns = append(e.patterns, pattern)
}

// AddFromEnv resolves an environment-derived pattern: the value of envVar
// joined with a relative wildcard template. Unset or empty variables are
// skipped silently. Reports whether a pattern was added.
func (e *Engine) AddFromEnv(envVar, template string) bool {
	base := strings.TrimSpace(os.Getenv(envVar))
	if base == "" {
		return false
	}
	e.Add(filepath.Join(base, template))
	return true
}

// Protect marks a path as always excluded regardless of patterns. Used
// for the scanner's own output and log files so a run never scans or
// reports its own findings.
func (e *Engine) Protect(path string) {
	if path == "" {
		return
	}
	e.protected[strings.ToLower(path)] = struct{}{}
}

// IsExcluded tests path against the protected set and then every stored
// pattern, short-circuiting on the first match.
func (e *Engine) IsExcluded(path string) bool {
	lower := strings.ToLower(path)
	if _, ok := e.protected[lower]; ok {
		return true
	}
	for _, p := range e.patterns {
		if globMatch(strings.ToLower(p), lower) {
			return true
		}
	}
	return false
}

// Patterns returns the stored patterns in insertion order.
func (e *Engine) Patterns() []string {
	return append([]string(nil), e.patterns...)
}

// globMatch matches s against pattern where `*` matches any run of
// characters, including path separators. Two-pointer scan with
// backtracking to the last star.
func globMatch(pattern, s string) bool {
	pi, si := 0, 0
	star, mark := -1, 0
	for si < len(s) {
		switch {
		case pi < len(pattern) && pattern[pi] == '*':
			star, mark = pi, si
			pi++
		case pi < len(pattern) && pattern[pi] == s[si]:
			pi++
			si++
		case star >= 0:
			pi = star + 1
			mark++
			si = mark
		default:
			return false
		}
	}
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}
