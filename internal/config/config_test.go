package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsZeroConfig(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoad_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	content := `severity: medium
fail_on: high
format: json
disabled_rules:
  - PERF004
log_pattern: '^\[(.*?)\] (\w+): (.*)$'
website_timeout_seconds: 15
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".eureka.yml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "medium", cfg.Severity)
	assert.Equal(t, "high", cfg.FailOn)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, []string{"PERF004"}, cfg.DisabledRules)
	assert.Equal(t, 15, cfg.WebsiteTimeoutSeconds)
}

func TestLoad_FilePathUsesParentDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".eureka.yaml"), []byte("format: sarif\n"), 0o644))
	target := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(target, []byte("package main\n"), 0o644))

	cfg, err := Load(target)
	require.NoError(t, err)
	assert.Equal(t, "sarif", cfg.Format)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".eureka.yml"), []byte("severity: [\n"), 0o644))
	_, err := Load(dir)
	assert.Error(t, err)
}
