package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ColorAuto, cfg.Color)
	assert.False(t, cfg.LineNumbers)
	assert.False(t, cfg.FilenamesOnly)
	assert.False(t, cfg.CaseInsensitive)
	assert.False(t, cfg.InvertMatch)
	assert.False(t, cfg.MatchEntireLine)
	assert.False(t, cfg.Debug)
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file returns defaults without error", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lgrep.yaml")
		content := `
color: never
ignore_case: true
line_numbers: true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, ColorNever, cfg.Color)
		assert.True(t, cfg.CaseInsensitive)
		assert.True(t, cfg.LineNumbers)
		assert.False(t, cfg.InvertMatch, "unset fields keep their defaults")
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lgrep.yaml")
		require.NoError(t, os.WriteFile(path, []byte("color: [unclosed"), 0o644))

		cfg, err := LoadConfig(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to parse config file")
		assert.Nil(t, cfg)
	})

	t.Run("environment overrides file values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lgrep.yaml")
		require.NoError(t, os.WriteFile(path, []byte("color: never\n"), 0o644))
		t.Setenv("LGREP_COLOR", "always")
		t.Setenv("LGREP_INVERT_MATCH", "true")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, ColorAlways, cfg.Color)
		assert.True(t, cfg.InvertMatch)
	})

	t.Run("invalid color mode is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lgrep.yaml")
		require.NoError(t, os.WriteFile(path, []byte("color: rainbow\n"), 0o644))

		cfg, err := LoadConfig(path)
		require.Error(t, err)
		assert.ErrorContains(t, err, `invalid color mode "rainbow"`)
		assert.Nil(t, cfg)
	})
}
