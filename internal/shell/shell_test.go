package shell

import (
	"strings"
	"testing"
)

func TestScriptPerShell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{Bash, "gcd()"},
		{Zsh, "gcd()"},
		{Fish, "function gcd"},
		{PowerShell, "function gcd"},
	}

	for _, tt := range tests {
		script, err := Script(tt.kind)
		if err != nil {
			t.Errorf("Script(%s) = %v", tt.kind, err)
			continue
		}
		if !strings.Contains(script, tt.want) {
			t.Errorf("Script(%s) missing %q", tt.kind, tt.want)
		}
		if !strings.Contains(script, "--path-only") {
			t.Errorf("Script(%s) should use grove go --path-only", tt.kind)
		}
	}
}

func TestScriptUnsupported(t *testing.T) {
	t.Parallel()

	if _, err := Script(Kind("tcsh")); err == nil {
		t.Error("Script(tcsh) should fail")
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Kind
	}{
		{"bash", Bash},
		{"ZSH", Zsh},
		{"fish", Fish},
		{"pwsh", PowerShell},
		{"powershell", PowerShell},
		{" bash ", Bash},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseKind("cmd"); err == nil {
		t.Error("ParseKind(cmd) should fail")
	}
}

func TestDetectFromShellEnv(t *testing.T) {
	t.Setenv("PSModulePath", "")
	t.Setenv("SHELL", "/usr/bin/zsh")
	if got := Detect(); got != Zsh {
		t.Errorf("Detect() = %v, want zsh", got)
	}

	t.Setenv("SHELL", "/bin/fish")
	if got := Detect(); got != Fish {
		t.Errorf("Detect() = %v, want fish", got)
	}

	t.Setenv("SHELL", "")
	if got := Detect(); got != Bash {
		t.Errorf("Detect() with empty SHELL = %v, want bash", got)
	}
}
