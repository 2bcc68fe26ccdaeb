package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typecheck.yaml")
	contents := "search_path:\n  - vendor/stubs\nstrict: true\nwarn_unused: true\ntype_check: false\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Strict)
	require.True(t, cfg.WarnUnused)
	require.False(t, cfg.TypeCheck)
	require.Equal(t, []string{"vendor/stubs"}, cfg.SearchPath)
}

func TestResolvedSearchPathJoinsConfigDir(t *testing.T) {
	cfg := &Config{SearchPath: []string{"stubs", "/abs/other"}}
	got := cfg.ResolvedSearchPath("/project")
	require.Equal(t, []string{"/project/stubs", "/abs/other"}, got)
}
