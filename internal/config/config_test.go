package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PORT", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("ANALYSIS_CONCURRENCY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "llama3-8b-8192", cfg.LLM.Model)
	assert.Equal(t, 4, cfg.Analysis.Concurrency)
	assert.InDelta(t, 1.5, cfg.Scoring.RecencySpan, 1e-9)
	assert.NotEmpty(t, cfg.Scoring.CSATRatings)
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
port: "9000"
llm:
  model: file-model
  timeout_sec: 10
scoring:
  recency_span: 2.0
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LLM_MODEL", "env-model")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	// environment wins over the file, the file wins over defaults
	assert.Equal(t, "env-model", cfg.LLM.Model)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 10, cfg.LLM.TimeoutSec)
	assert.InDelta(t, 2.0, cfg.Scoring.RecencySpan, 1e-9)
	// rating tables not present in the file are backfilled
	assert.NotEmpty(t, cfg.Scoring.CSATRatings)
}

func TestLoadConcurrencyFloor(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("ANALYSIS_CONCURRENCY", "0")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Analysis.Concurrency)
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	assert.Error(t, err)
}
