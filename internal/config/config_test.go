package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "km", cfg.Defaults.Unit)
	assert.Equal(t, "ddm", cfg.Defaults.Format)
	assert.Equal(t, 0, cfg.Geometry.MaxPoints)
	assert.Empty(t, cfg.Anagram.Wordlist)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
defaults:
  unit: mi
geometry:
  max_points: 500
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mi", cfg.Defaults.Unit)
	assert.Equal(t, 500, cfg.Geometry.MaxPoints)
	// Untouched keys keep their defaults
	assert.Equal(t, "ddm", cfg.Defaults.Format)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("GCKIT__DEFAULTS__UNIT", "nm")
	t.Setenv("GCKIT__ANAGRAM__WORDLIST", "/opt/words.txt")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "nm", cfg.Defaults.Unit)
	assert.Equal(t, "/opt/words.txt", cfg.Anagram.Wordlist)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  format: dms\n"), 0o644))
	t.Setenv("GCKIT__DEFAULTS__FORMAT", "decimal")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "decimal", cfg.Defaults.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/no/such/config.yaml")
	assert.Error(t, err)
}
