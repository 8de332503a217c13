// Package config loads the optional gitree configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the gitree configuration
type Config struct {
	// MatchStrategy selects exception matching: "basename" (exact match
	// of the final path component) or "prefix" (full-path prefix match,
	// legacy behavior).
	MatchStrategy string `toml:"match_strategy"`

	// Exceptions overrides the built-in exception list. Basenames for
	// the basename strategy, full path prefixes for the prefix strategy.
	Exceptions []string `toml:"exceptions"`

	// ExtraKnownNames extends the set of legitimate git tree members.
	ExtraKnownNames []string `toml:"extra_known_names"`

	// MaxEntries caps subdirectories+files processed per directory.
	// 0 means unbounded; exceeding a set cap aborts the walk.
	MaxEntries int `toml:"max_entries"`

	// Color controls styled output: "auto", "always" or "never".
	Color string `toml:"color"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		MatchStrategy: "basename",
		Color:         "auto",
	}
}

// configPath returns the path to the config file
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitree", "config.toml"), nil
}

// Load reads config from ~/.config/gitree/config.toml
// Returns Default() if the file doesn't exist (no error)
// Returns an error only if the file exists but is invalid
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path. Split out for tests.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.MatchStrategy {
	case "", "basename", "prefix":
	default:
		return fmt.Errorf("invalid match_strategy %q: must be \"basename\" or \"prefix\"", c.MatchStrategy)
	}
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q: must be \"auto\", \"always\" or \"never\"", c.Color)
	}
	if c.MaxEntries < 0 {
		return fmt.Errorf("invalid max_entries %d: must be >= 0", c.MaxEntries)
	}
	return nil
}

const defaultConfig = `# gitree configuration

# Exception matching strategy
#   "basename" - directory basename must exactly match an exception entry
#   "prefix"   - directory path must start with an exception entry (legacy)
# match_strategy = "basename"

# Directories exempt from non-bare and stray-file reporting.
# Basenames for the basename strategy, full path prefixes for prefix.
# Defaults to ["manifests", "repo", ".repo"] when unset.
# exceptions = ["manifests", "repo", ".repo"]

# Additional names accepted inside a bare git tree, on top of the
# built-in git/repo/gitweb member names.
# extra_known_names = ["my-mirror-marker"]

# Per-directory entry cap. The walk aborts (instead of truncating)
# when a directory holds more entries. 0 disables the cap.
# max_entries = 0

# Styled output: "auto" (color when stdout is a terminal), "always", "never"
# color = "auto"
`

// Init creates a default config file at ~/.config/gitree/config.toml
// If force is true, overwrites an existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
