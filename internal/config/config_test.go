package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
dir: /work
packages: [./store, ./warehouse]
scan:
  - ./store
manifest: .merge-manifest.yaml
merger:
  suffix: Updater
  fileSuffix: _updater.go
registry:
  package: example.com/app/registry
  dir: registry
log:
  level: debug
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "merge-generator.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_File(t *testing.T) {
	cfg, err := Load(NewViper(), writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "/work", cfg.Dir)
	assert.Equal(t, []string{"./store", "./warehouse"}, cfg.Packages)
	assert.Equal(t, []string{"./store"}, cfg.Scan)
	assert.Equal(t, "Updater", cfg.Merger.Suffix)
	assert.Equal(t, "_updater.go", cfg.Merger.FileSuffix)
	assert.Equal(t, "debug", cfg.Log.Level)

	// defaults
	assert.Equal(t, "merge-generator/merge", cfg.Runtime)
	assert.Equal(t, "merge_registry.go", cfg.Registry.File)
	assert.Equal(t, "Registry", cfg.Registry.Func)
	assert.True(t, cfg.Merger.Comments)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MERGEGEN_PACKAGES", "./a, ./b")
	t.Setenv("MERGEGEN_REGISTRY_FUNC", "Mergers")
	t.Setenv("MERGEGEN_LOG_DEVELOPMENT", "true")

	cfg, err := Load(NewViper(), writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"./a", "./b"}, cfg.Packages)
	assert.Equal(t, "Mergers", cfg.Registry.Func)
	assert.True(t, cfg.Log.Development)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, "Merger", cfg.Merger.Suffix)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Packages)
}

func TestConfig_PathsAndPipeline(t *testing.T) {
	cfg, err := Load(NewViper(), writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/work", ".merge-manifest.yaml"), cfg.Path(cfg.Manifest))
	assert.Equal(t, "/abs/x.yaml", cfg.Path("/abs/x.yaml"))
	assert.Empty(t, cfg.Path(""))
	assert.Equal(t, []string{filepath.Join("/work", "s.yaml")}, cfg.Paths([]string{"s.yaml"}))

	p := cfg.Pipeline()
	assert.Equal(t, "Updater", p.Planner.MergerSuffix)
	assert.Equal(t, "_updater.go", p.Generator.FileSuffix)
	assert.Equal(t, "example.com/app/registry", p.Generator.RegistryPackage)
	assert.Equal(t, "registry", p.Generator.RegistryDir)
	assert.Empty(t, p.Generator.DebugDir)
}
