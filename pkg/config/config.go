// Package config loads the host-side project settings that steer the
// command-line front end: which on-disk extension an extensionless import
// path maps to, and which diagnostic severities the check command should
// treat as fatal. None of
// this configures the parser itself — the parser core has no persisted
// state of its own — it only configures how the CLI drives it.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Project is the decoded shape of a tsfront.toml file.
type Project struct {
	Check     CheckConfig     `toml:"check"`
	Discovery DiscoveryConfig `toml:"discovery"`
}

// CheckConfig controls how `tsfront check` treats accumulated diagnostics.
type CheckConfig struct {
	// FailOn lists the severities ("error", "warning") that should cause
	// the command to exit non-zero. Defaults to just "error".
	FailOn []string `toml:"fail_on"`
}

// DiscoveryConfig controls how bare import paths are resolved on disk.
type DiscoveryConfig struct {
	// Extension is appended to a normalized module path (which has no
	// extension) when the CLI reads it from disk. Defaults to ".ts".
	Extension string `toml:"extension"`
}

// Default returns the configuration used when no tsfront.toml is present.
func Default() *Project {
	return &Project{
		Check:     CheckConfig{FailOn: []string{"error"}},
		Discovery: DiscoveryConfig{Extension: ".ts"},
	}
}

// Load reads and decodes path. A missing file is an error (the unwrapped
// os.Stat error); callers that want on-disk config to be optional should
// check os.IsNotExist and fall back to Default themselves.
func Load(path string) (*Project, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Discovery.Extension == "" {
		cfg.Discovery.Extension = ".ts"
	}
	if len(cfg.Check.FailOn) == 0 {
		cfg.Check.FailOn = []string{"error"}
	}
	return cfg, nil
}

// FailsOn reports whether a diagnostic of the given severity name should
// be treated as fatal by the check command.
func (p *Project) FailsOn(severity string) bool {
	for _, s := range p.Check.FailOn {
		if s == severity {
			return true
		}
	}
	return false
}
