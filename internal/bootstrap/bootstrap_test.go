package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunAllSucceed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	summary := Run(context.Background(), dir, []Command{
		{"true"},
		{"touch", "marker"},
	})

	if summary.Total != 2 || summary.Succeeded != 2 || !summary.Ok() {
		t.Errorf("summary = %+v, want 2/2 succeeded", summary)
	}
	if _, err := os.Stat(filepath.Join(dir, "marker")); err != nil {
		t.Error("command did not run in the worktree directory")
	}
}

func TestRunContinuesPastFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	summary := Run(context.Background(), dir, []Command{
		{"true"},
		{"false"},
		{"touch", "after-failure"},
	})

	if summary.Total != 3 {
		t.Errorf("Total = %d, want 3", summary.Total)
	}
	if summary.Succeeded != 2 {
		t.Errorf("Succeeded = %d, want 2", summary.Succeeded)
	}
	if len(summary.Failed) != 1 {
		t.Fatalf("Failed = %+v, want one entry", summary.Failed)
	}
	if summary.Failed[0].Display != "false" {
		t.Errorf("Failed[0].Display = %q", summary.Failed[0].Display)
	}
	if !strings.Contains(summary.Failed[0].Reason, "exited with code 1") {
		t.Errorf("Failed[0].Reason = %q", summary.Failed[0].Reason)
	}
	// The command after the failure still ran.
	if _, err := os.Stat(filepath.Join(dir, "after-failure")); err != nil {
		t.Error("run stopped early after a failure")
	}
}

func TestRunEmptyCommand(t *testing.T) {
	t.Parallel()

	summary := Run(context.Background(), t.TempDir(), []Command{
		{},
		{"  "},
	})

	if summary.Succeeded != 0 || len(summary.Failed) != 2 {
		t.Fatalf("summary = %+v, want two failures", summary)
	}
	for _, f := range summary.Failed {
		if f.Reason != "empty command" {
			t.Errorf("Reason = %q, want \"empty command\"", f.Reason)
		}
	}
}

func TestRunCommandNotFound(t *testing.T) {
	t.Parallel()

	summary := Run(context.Background(), t.TempDir(), []Command{
		{"definitely-not-a-real-command-xyz"},
	})

	if len(summary.Failed) != 1 {
		t.Fatalf("summary = %+v, want one failure", summary)
	}
	if strings.Contains(summary.Failed[0].Reason, "exited with code") {
		t.Errorf("spawn failure misreported as exit: %q", summary.Failed[0].Reason)
	}
}

func TestRunNoCommands(t *testing.T) {
	t.Parallel()

	summary := Run(context.Background(), t.TempDir(), nil)
	if summary.Total != 0 || !summary.Ok() {
		t.Errorf("summary = %+v, want empty success", summary)
	}
}

func TestCommandDisplay(t *testing.T) {
	t.Parallel()

	c := Command{"npm", "install", "--silent"}
	if got := c.Display(); got != "npm install --silent" {
		t.Errorf("Display() = %q", got)
	}
}
