// Package bootstrap runs configured setup commands inside a freshly
// created worktree.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/grovekit/grove/internal/log"
)

// Command is a single setup command as an argument vector.
// Commands are never passed through a shell.
type Command []string

// Display returns the command as a printable line.
func (c Command) Display() string {
	return strings.Join(c, " ")
}

// Failure records one command that didn't succeed.
type Failure struct {
	Display string
	Reason  string
}

// Summary tallies a bootstrap run.
type Summary struct {
	Total     int
	Succeeded int
	Failed    []Failure
}

// Ok reports whether every command succeeded.
func (s Summary) Ok() bool {
	return len(s.Failed) == 0
}

// Run executes commands sequentially in dir, inheriting stdout and
// stderr so tools like package managers can show their own progress.
// A failing command never stops the run; the summary carries what
// failed and why, in input order.
func Run(ctx context.Context, dir string, commands []Command) Summary {
	l := log.FromContext(ctx)
	summary := Summary{Total: len(commands)}

	for _, command := range commands {
		if len(command) == 0 || strings.TrimSpace(command[0]) == "" {
			summary.Failed = append(summary.Failed, Failure{
				Display: command.Display(),
				Reason:  "empty command",
			})
			continue
		}

		l.Command(command[0], command[1:]...)
		cmd := exec.CommandContext(ctx, command[0], command[1:]...)
		cmd.Dir = dir
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		if err := cmd.Run(); err != nil {
			summary.Failed = append(summary.Failed, Failure{
				Display: command.Display(),
				Reason:  failureReason(err),
			})
			continue
		}
		summary.Succeeded++
	}

	return summary
}

// failureReason distinguishes a nonzero exit from a signal death or a
// spawn failure (command not found, permission denied).
func failureReason(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return fmt.Sprintf("exited with code %d", code)
		}
		return fmt.Sprintf("terminated by signal (%s)", exitErr.ProcessState.String())
	}
	return err.Error()
}
