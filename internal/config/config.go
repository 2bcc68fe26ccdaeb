// Package config loads the checker's search-path and flag configuration
// from an optional YAML file (spec.md §6 "Module search path",
// "Environment"), grounded on the teacher's eval-harness YAML config
// loading pattern — a plain struct tagged for gopkg.in/yaml.v3, loaded
// with sane zero-value defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of typecheck.yaml.
type Config struct {
	// SearchPath lists extra module search directories, checked before
	// the program directory and MYPYPATH (spec.md §6).
	SearchPath []string `yaml:"search_path"`

	// StubsDir overrides the bundled-stub directory.
	StubsDir string `yaml:"stubs_dir"`

	// Strict records the strict-mode setting (from the file or the
	// --strict flag). No checking phase reads it; checking is the same
	// whether it is set or not.
	Strict bool `yaml:"strict"`

	// WarnUnused records the unused-imports/variables warning setting.
	// It is loaded but not read by cmd/typecheck or any checking phase;
	// no unused-name warnings are produced.
	WarnUnused bool `yaml:"warn_unused"`

	// TypeCheck disables the final type-check phase when false, leaving
	// files at semantically-analyzed (spec.md §4.6 "if enabled").
	TypeCheck bool `yaml:"type_check"`
}

// Default returns the zero-config defaults: no extra search path, no
// bundled stub override, strict mode off, unused-warnings off, and the
// type-checking phase enabled.
func Default() *Config {
	return &Config{TypeCheck: true}
}

// Load reads path as YAML into a Config, starting from Default() so an
// absent or partial file still yields sane values. A missing file is not
// an error — it's the "no typecheck.yaml" case, which returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: reading %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %q: %w", path, err)
	}
	return cfg, nil
}

// ResolvedSearchPath returns the configured extra search directories,
// joining each relative entry onto configDir so relative entries in
// typecheck.yaml resolve against the file's own directory rather than the
// process's current working directory. Absolute entries are kept as they
// are; a relative configDir yields relative results.
func (c *Config) ResolvedSearchPath(configDir string) []string {
	out := make([]string, 0, len(c.SearchPath))
	for _, dir := range c.SearchPath {
		if filepath.IsAbs(dir) {
			out = append(out, dir)
			continue
		}
		out = append(out, filepath.Join(configDir, dir))
	}
	return out
}
