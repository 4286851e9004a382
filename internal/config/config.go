package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// BootstrapConfig holds the setup commands run after worktree creation.
// Each command is an argument vector; nothing goes through a shell.
type BootstrapConfig struct {
	Commands [][]string `toml:"commands"`
}

// Config holds the grove configuration.
type Config struct {
	// DefaultBase overrides the detected base branch for merge checks.
	DefaultBase string `toml:"default_base"`
	// Remote is the remote name used for fetch and sync. Defaults to origin.
	Remote    string          `toml:"remote"`
	Bootstrap BootstrapConfig `toml:"bootstrap"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Remote: "origin",
	}
}

// configPath returns the path to the config file
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "grove", "config.toml"), nil
}

// Load reads config from ~/.config/grove/config.toml
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return loadFrom(path)
}

func loadFrom(path string) (Config, error) {
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

	if cfg.Remote == "" {
		cfg.Remote = "origin"
	}

	for i, command := range cfg.Bootstrap.Commands {
		if len(command) == 0 {
			return Default(), fmt.Errorf("bootstrap.commands[%d] is empty", i)
		}
	}

	return cfg, nil
}

// BootstrapCommands returns the configured setup commands.
func (c *Config) BootstrapCommands() [][]string {
	return c.Bootstrap.Commands
}

const defaultConfig = `# grove configuration

# Base branch for merge detection during "grove prune".
# If unset, grove asks the remote for its default branch (origin/HEAD)
# and falls back to main/master.
# default_base = "main"

# Remote used for fetching and syncing branches.
# remote = "origin"

# Bootstrap commands - run inside every new worktree after creation.
# Each command is an argument list, not a shell line. Commands run
# sequentially; a failure doesn't stop the rest.
#
# [bootstrap]
# commands = [
#   ["npm", "install"],
#   ["cp", "../main/.env", ".env"],
# ]
`

// Init creates a default config file at ~/.config/grove/config.toml
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	// Check if file already exists (skip if force)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	// Create directory
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	// Write default config
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
