package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
prompt = ">> "
max_visible = 7

[[commands]]
text = "kubectl get pods"
description = "List pods in the current namespace"
tags = ["k8s", "pods"]

[[commands]]
text = "journalctl -f"
tags = ["logs"]
`

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromPath(t *testing.T) {
	path := writeCatalogFile(t, sampleCatalog)

	cfg, err := NewService().LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, ">> ", cfg.Prompt)
	assert.Equal(t, 7, cfg.MaxVisible)
	require.Len(t, cfg.Commands, 2)
	assert.Equal(t, "kubectl get pods", cfg.Commands[0].Text)
	assert.Equal(t, []string{"k8s", "pods"}, cfg.Commands[0].Tags)
	assert.Empty(t, cfg.Commands[1].Description)
}

func TestLoadFromPathAppliesDefaults(t *testing.T) {
	path := writeCatalogFile(t, `
[[commands]]
text = "ls -la"
`)

	cfg, err := NewService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, 0, cfg.MaxVisible)
}

func TestLoadFromPathParseError(t *testing.T) {
	path := writeCatalogFile(t, "this is not toml [[[")

	_, err := NewService().LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse catalog file")
}

func TestLoadFromPathMissingFile(t *testing.T) {
	_, err := NewService().LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadFallsBackToBuiltinCatalog(t *testing.T) {
	svc := &service{filePath: filepath.Join(t.TempDir(), "catalog.toml")}

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NotEmpty(t, cfg.Commands)
}

func TestLoadReadsExistingFile(t *testing.T) {
	svc := &service{filePath: writeCatalogFile(t, sampleCatalog)}

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, ">> ", cfg.Prompt)
}

func TestConfigCatalogConversion(t *testing.T) {
	cfg := &Config{Commands: []CommandSpec{
		{Text: "make test", Description: "Run the tests", Tags: []string{"build"}},
	}}

	catalog := cfg.Catalog()
	require.Len(t, catalog, 1)
	assert.Equal(t, "make test", catalog[0].Text)
	assert.Equal(t, "Run the tests", catalog[0].Description)
	assert.Equal(t, []string{"build"}, catalog[0].Tags)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "> ", cfg.Prompt)
	require.NotEmpty(t, cfg.Commands)
	for _, cmd := range cfg.Commands {
		assert.NotEmpty(t, cmd.Text)
		assert.NotEmpty(t, cmd.Description)
	}
}

func TestServicePathPointsIntoUserConfig(t *testing.T) {
	path := NewService().Path()
	assert.Equal(t, "catalog.toml", filepath.Base(path))
	assert.Equal(t, "cmdpick", filepath.Base(filepath.Dir(path)))
}
