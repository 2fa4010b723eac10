// Package config loads the on-disk YAML configuration and defines the
// built-in exclusion baseline.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvExclude derives one exclusion pattern from an environment variable
// joined with a relative wildcard template. Unset variables resolve to
// nothing and are skipped silently.
type EnvExclude struct {
	Var     string `yaml:"var"`
	Pattern string `yaml:"pattern"`
}

// FileConfig is the on-disk YAML configuration shape for seedsweep.
// Pointer fields distinguish "unset" from zero so CLI > local > global
// precedence works.
type FileConfig struct {
	Roots         []string     `yaml:"roots"`
	PriorityDirs  []string     `yaml:"priority_dirs"`
	Include       *string      `yaml:"include"`
	Exclude       *string      `yaml:"exclude"`
	Excludes      []string     `yaml:"exclude_patterns"`
	EnvExcludes   []EnvExclude `yaml:"env_excludes"`
	MaxTextBytes  *int64       `yaml:"max_text_bytes"`
	MaxImageBytes *int64       `yaml:"max_image_bytes"`
	OCRLang       *string      `yaml:"ocr_lang"`
	Timeout       *string      `yaml:"timeout"`
	FindingsLog   *string      `yaml:"findings_log"`
	NoColor       *bool        `yaml:"no_color"`
	NoCache       *bool        `yaml:"no_cache"`
}

// DefaultExcludePatterns is the fixed base exclusion list applied before
// traversal. Whole-string glob semantics: `*` crosses path separators.
func DefaultExcludePatterns() []string {
	return []string{
		"/proc/*",
		"/sys/*",
		"/dev/*",
		"/run/*",
		"*/node_modules/*",
		"*/.git/*",
		"*/.cache/*",
		"*/__pycache__/*",
		"C:\\Windows\\*",
		"C:\\Program Files*",
	}
}

// DefaultEnvExcludes lists the environment-derived exclusions folded in
// at startup. Variables that are unset on this platform resolve to
// nothing.
func DefaultEnvExcludes() []EnvExclude {
	return []EnvExclude{
		{Var: "TMPDIR", Pattern: "*"},
		{Var: "TEMP", Pattern: "*"},
		{Var: "ProgramData", Pattern: "*"},
		{Var: "GOPATH", Pattern: "pkg/*"},
		{Var: "CARGO_HOME", Pattern: "registry/*"},
	}
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the working directory. It
// supports .seedsweep.yml/.yaml and seedsweep.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".seedsweep.yml", ".seedsweep.yaml", "seedsweep.yml", "seedsweep.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "seedsweep", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
