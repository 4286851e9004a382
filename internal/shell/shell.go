// Package shell generates shell integration snippets.
//
// `grove go` can only change directories for the subshell it spawns.
// The generated wrapper function lets the user's own shell cd instead,
// using `grove go --path-only` under the hood.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind names a supported shell.
type Kind string

const (
	Bash       Kind = "bash"
	Zsh        Kind = "zsh"
	Fish       Kind = "fish"
	PowerShell Kind = "powershell"
)

const bashZshFunction = `# grove shell integration (bash/zsh)
# Add to your shell rc file: eval "$(grove shell-init bash)"
gcd() {
    local target
    target="$(grove go --path-only "$@")" || return $?
    if [ -n "$target" ]; then
        cd "$target" || return $?
    fi
}
`

const fishFunction = `# grove shell integration (fish)
# Add to config.fish: grove shell-init fish | source
function gcd
    set -l target (grove go --path-only $argv)
    or return $status
    if test -n "$target"
        cd $target
    end
end
`

const powerShellFunction = `# grove shell integration (PowerShell)
# Add to your profile: Invoke-Expression (grove shell-init powershell | Out-String)
function gcd {
    $target = grove go --path-only @args
    if ($LASTEXITCODE -ne 0) { return }
    if ($target) { Set-Location $target }
}
`

// Script returns the integration snippet for the given shell.
func Script(kind Kind) (string, error) {
	switch kind {
	case Bash, Zsh:
		return bashZshFunction, nil
	case Fish:
		return fishFunction, nil
	case PowerShell:
		return powerShellFunction, nil
	default:
		return "", fmt.Errorf("unsupported shell %q (supported: bash, zsh, fish, powershell)", kind)
	}
}

// Detect guesses the user's shell from the environment.
// Returns Bash when nothing better is known.
func Detect() Kind {
	if os.Getenv("PSModulePath") != "" && os.Getenv("SHELL") == "" {
		return PowerShell
	}
	switch filepath.Base(os.Getenv("SHELL")) {
	case "zsh":
		return Zsh
	case "fish":
		return Fish
	case "pwsh", "powershell":
		return PowerShell
	default:
		return Bash
	}
}

// ParseKind converts a user-supplied shell name.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "fish":
		return Fish, nil
	case "powershell", "pwsh":
		return PowerShell, nil
	default:
		return "", fmt.Errorf("unsupported shell %q (supported: bash, zsh, fish, powershell)", name)
	}
}

// Tip is the one-time hint shown after `grove go` spawns a subshell.
func Tip(kind Kind) string {
	switch kind {
	case Fish:
		return "Tip: add 'grove shell-init fish | source' to your config.fish to cd directly with gcd."
	case PowerShell:
		return "Tip: add 'Invoke-Expression (grove shell-init powershell | Out-String)' to your profile to cd directly with gcd."
	default:
		return `Tip: add 'eval "$(grove shell-init ` + string(kind) + `)"' to your shell rc to cd directly with gcd.`
	}
}
