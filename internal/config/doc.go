// Package config handles loading and validation of grove configuration.
//
// Configuration is read from ~/.config/grove/config.toml. A missing
// file is not an error; defaults apply.
//
// # Key Settings
//
//   - default_base: Base branch for merge detection (default: detected
//     from origin/HEAD, falling back to main/master)
//   - remote: Remote name for fetch and sync (default: "origin")
//
// # Bootstrap Configuration
//
// The [bootstrap] section lists setup commands run inside every new
// worktree, each as an argument vector:
//
//	[bootstrap]
//	commands = [
//	  ["npm", "install"],
//	]
//
// Commands run sequentially and a failure doesn't stop the rest.
//
// # Preferences
//
// Alongside the TOML config, grove keeps a small machine-written
// prefs.json for one-time state like the shell integration tip.
package config
