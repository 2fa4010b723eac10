// Package cache persists per-path file signatures between runs so
// unchanged files can be skipped without re-extracting them.
package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

type DB struct {
	// Absolute path -> size+mtime signature (xxhash hex).
	Entries map[string]string `json:"entries"`
}

const cacheFile = "scancache.json"

// DefaultStateDir returns the per-user state directory for seedsweep.
func DefaultStateDir() string {
	if base := os.Getenv("XDG_STATE_HOME"); base != "" {
		return filepath.Join(base, "seedsweep")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".seedsweep"
	}
	return filepath.Join(home, ".local", "state", "seedsweep")
}

func cachePath(stateDir string) string {
	if stateDir == "" {
		stateDir = DefaultStateDir()
	}
	return filepath.Join(stateDir, cacheFile)
}

func Load(stateDir string) (DB, error) {
	var db DB
	b, err := os.ReadFile(cachePath(stateDir))
	if err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if err := json.Unmarshal(b, &db); err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]string{}
	}
	return db, nil
}

func Save(stateDir string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	p := cachePath(stateDir)
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return err
	}
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(p, b, 0o600)
}
