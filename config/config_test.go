package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iamNilotpal/zlib/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "balanced", cfg.Codec.CompressionLevel)
	assert.Equal(t, uint32(64*1024), cfg.Codec.BufferSize)
	assert.Equal(t, domain.LevelBalanced, cfg.Level())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
codec:
  compression_level: best
  buffer_size: 4096
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, domain.LevelBest, cfg.Level())
	assert.Equal(t, uint32(4096), cfg.Codec.BufferSize)
}

func TestLoadConfigKeepsDefaultsForOmittedFields(t *testing.T) {
	path := writeConfig(t, `
codec:
  compression_level: fast
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, domain.LevelFast, cfg.Level())
	assert.Equal(t, uint32(64*1024), cfg.Codec.BufferSize)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"unknown level", "codec:\n  compression_level: maximum\n"},
		{"zero buffer size", "codec:\n  compression_level: fast\n  buffer_size: 0\n"},
		{"malformed yaml", "codec: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.contents))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
