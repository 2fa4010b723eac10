package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadLocal(t *testing.T) {
	dir := t.TempDir()
	body := `
roots:
  - /home/alice
exclude_patterns:
  - "*/node_modules/*"
env_excludes:
  - var: TMPDIR
    pattern: "*"
max_text_bytes: 2097152
ocr_lang: eng
no_cache: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".seedsweep.yml"), []byte(body), 0o600))

	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"/home/alice"}, cfg.Roots)
	require.Equal(t, []string{"*/node_modules/*"}, cfg.Excludes)
	require.Len(t, cfg.EnvExcludes, 1)
	require.Equal(t, "TMPDIR", cfg.EnvExcludes[0].Var)
	require.NotNil(t, cfg.MaxTextBytes)
	require.EqualValues(t, 2097152, *cfg.MaxTextBytes)
	require.NotNil(t, cfg.NoCache)
	require.True(t, *cfg.NoCache)
	require.Nil(t, cfg.NoColor)
}

func TestLoadLocalMissing(t *testing.T) {
	_, err := LoadLocal(t.TempDir())
	require.Error(t, err)
}

func TestDefaults(t *testing.T) {
	require.NotEmpty(t, DefaultExcludePatterns())
	require.NotEmpty(t, DefaultEnvExcludes())
}
