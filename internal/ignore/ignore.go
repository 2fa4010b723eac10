// Package ignore loads per-root ignore files. A scan root may carry a
// .seedsweepignore file listing one pattern per line; matching paths are
// skipped during the walk. Blank lines and lines starting with # are
// ignored.
//
// Three pattern forms are supported:
//
//	dir/        matches any path containing a "dir" segment
//	*.ext       matches on the base name, path.Match syntax
//	name        matches the base name or the whole root-relative path
package ignore

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileName is the per-root ignore file looked up by LoadRoot.
const FileName = ".seedsweepignore"

// Matcher answers whether a root-relative path is ignored.
type Matcher struct {
	dirs  []string
	globs []string
	names []string
}

// Load parses an ignore file. Unreadable files are an error; an empty
// file yields a matcher that matches nothing.
func Load(p string) (*Matcher, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	m := &Matcher{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch {
		case strings.HasSuffix(line, "/"):
			m.dirs = append(m.dirs, strings.TrimSuffix(line, "/"))
		case strings.ContainsAny(line, "*?["):
			m.globs = append(m.globs, line)
		default:
			m.names = append(m.names, line)
		}
	}
	return m, nil
}

// LoadRoot loads root/.seedsweepignore if present. A missing or
// unreadable file yields nil, which Match treats as "ignore nothing".
func LoadRoot(root string) *Matcher {
	m, err := Load(filepath.Join(root, FileName))
	if err != nil {
		return nil
	}
	return m
}

// Match reports whether the root-relative path rel is ignored. Safe on
// a nil receiver.
func (m *Matcher) Match(rel string) bool {
	if m == nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	base := path.Base(rel)
	for _, d := range m.dirs {
		for _, seg := range strings.Split(path.Dir(rel), "/") {
			if seg == d {
				return true
			}
		}
	}
	for _, g := range m.globs {
		if ok, _ := path.Match(g, base); ok {
			return true
		}
	}
	for _, n := range m.names {
		if base == n || rel == n {
			return true
		}
	}
	return false
}
