package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, 4096, cfg.MaxTokens)
	assert.True(t, cfg.ApproveTools)
	assert.False(t, cfg.AllowShell)
	assert.Empty(t, cfg.AllowedDomains)
	assert.Equal(t, ".", cfg.Workspace)
	assert.Equal(t, 10, cfg.MaxSteps)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agentloop.yaml")
	yaml := `
provider: openai
model: gpt-4o
approve_tools: false
allow_shell: true
allowed_domains:
  - example.com
max_steps: 25
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.False(t, cfg.ApproveTools)
	assert.True(t, cfg.AllowShell)
	assert.Equal(t, []string{"example.com"}, cfg.AllowedDomains)
	assert.Equal(t, 25, cfg.MaxSteps)
	// Unset keys keep their defaults.
	assert.Equal(t, 4096, cfg.MaxTokens)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("AGENTLOOP_PROVIDER", "echo")
	t.Setenv("AGENTLOOP_MAX_STEPS", "3")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "echo", cfg.Provider)
	assert.Equal(t, 3, cfg.MaxSteps)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
