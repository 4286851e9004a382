package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Prefs holds small bits of persisted state, separate from the
// user-edited TOML config so grove can rewrite it freely.
type Prefs struct {
	ShellTipShown bool `json:"shellTipShown"`
}

func prefsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "grove", "prefs.json"), nil
}

// LoadPrefs reads the preference file, returning zero prefs when it
// doesn't exist or is unreadable. Preferences are advisory; a broken
// file must never block a command.
func LoadPrefs() Prefs {
	path, err := prefsPath()
	if err != nil {
		return Prefs{}
	}
	return loadPrefsFrom(path)
}

func loadPrefsFrom(path string) Prefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return Prefs{}
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Prefs{}
	}
	return p
}

// SavePrefs writes the preference file, creating its directory if needed.
func SavePrefs(p Prefs) error {
	path, err := prefsPath()
	if err != nil {
		return err
	}
	return savePrefsTo(path, p)
}

func savePrefsTo(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
