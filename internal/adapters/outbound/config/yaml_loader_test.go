package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kclwrap/kclwrap/internal/adapters/outbound/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".kclwrap.yaml"), []byte(content), 0o644))
	return dir
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "kcl", cfg.Tool)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestYAMLLoader_LoadsValues(t *testing.T) {
	dir := writeConfig(t, `
tool: /opt/kcl/bin/kcl
format: json
exclude_paths:
  - generated
  - third_party
`)

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/opt/kcl/bin/kcl", cfg.Tool)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, []string{"generated", "third_party"}, cfg.ExcludePaths)
}

func TestYAMLLoader_PartialConfigGetsDefaults(t *testing.T) {
	dir := writeConfig(t, "exclude_paths: [generated]\n")

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "kcl", cfg.Tool)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, []string{"generated"}, cfg.ExcludePaths)
}

func TestYAMLLoader_RejectsUnknownFormat(t *testing.T) {
	dir := writeConfig(t, "format: xml\n")

	_, err := config.New().Load(dir)
	assert.ErrorContains(t, err, "invalid .kclwrap.yaml")
	assert.ErrorContains(t, err, `unknown format "xml"`)
}

func TestYAMLLoader_RejectsMalformedYAML(t *testing.T) {
	dir := writeConfig(t, "tool: [unclosed\n")

	_, err := config.New().Load(dir)
	assert.ErrorContains(t, err, "parsing .kclwrap.yaml")
}
