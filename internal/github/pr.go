// Package github talks to GitHub through the gh CLI.
//
// Shelling out to gh reuses the user's existing authentication and
// host configuration instead of reimplementing it.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/grovekit/grove/internal/cmd"
)

// ErrGHNotFound indicates the gh CLI is not installed or not in PATH
var ErrGHNotFound = fmt.Errorf("gh not found: install the GitHub CLI (https://cli.github.com) to use pull request commands")

// CheckGH verifies that gh is available in PATH
func CheckGH() error {
	if _, err := exec.LookPath("gh"); err != nil {
		return ErrGHNotFound
	}
	return nil
}

// PRInfo describes the head of a pull request.
type PRInfo struct {
	Number      int
	HeadRefName string
	RepoName    string
}

// ghPRView mirrors the fields requested from gh.
type ghPRView struct {
	HeadRefName    string `json:"headRefName"`
	HeadRepository struct {
		Name string `json:"name"`
	} `json:"headRepository"`
}

// ViewPR fetches the head branch of a pull request via the gh CLI.
// gh resolves the repository from the working directory, so dir must
// be inside the clone.
func ViewPR(ctx context.Context, dir string, number int) (*PRInfo, error) {
	output, err := cmd.OutputContext(ctx, dir, "gh", "pr", "view", fmt.Sprintf("%d", number),
		"--json", "headRefName,headRepository")
	if err != nil {
		return nil, fmt.Errorf("failed to look up pull request #%d: %v", number, err)
	}

	var view ghPRView
	if err := json.Unmarshal(output, &view); err != nil {
		return nil, fmt.Errorf("failed to parse gh output: %w", err)
	}
	if view.HeadRefName == "" {
		return nil, fmt.Errorf("pull request #%d has no head branch", number)
	}

	return &PRInfo{
		Number:      number,
		HeadRefName: view.HeadRefName,
		RepoName:    view.HeadRepository.Name,
	}, nil
}

var branchSlugRe = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// WorktreeName builds the directory name for a PR checkout, like
// "pr-42-fix-crash". Branch characters that don't belong in a
// directory name collapse to hyphens.
func (pr *PRInfo) WorktreeName() string {
	slug := branchSlugRe.ReplaceAllString(pr.HeadRefName, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return fmt.Sprintf("pr-%d", pr.Number)
	}
	return fmt.Sprintf("pr-%d-%s", pr.Number, slug)
}

// LocalBranch is the branch name the PR head is fetched into.
func (pr *PRInfo) LocalBranch() string {
	return fmt.Sprintf("pr-%d", pr.Number)
}
