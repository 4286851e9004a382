package git

import (
	"fmt"
	"regexp"
	"strings"
)

var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://.+/.+$`),
	regexp.MustCompile(`^git@[^:]+:.+$`),
	regexp.MustCompile(`^ssh://.+/.+$`),
	regexp.MustCompile(`^file:///.+$`),
}

// IsValidURL reports whether url looks like a cloneable git URL
// (https, ssh, file, or scp-like git@host:path form).
func IsValidURL(url string) bool {
	url = strings.TrimSpace(url)
	for _, p := range urlPatterns {
		if p.MatchString(url) {
			return true
		}
	}
	return false
}

// ExtractRepoName derives the repository name from a git URL:
// the last path segment with any .git suffix removed.
func ExtractRepoName(url string) (string, error) {
	name := strings.TrimSpace(url)
	name = strings.TrimSuffix(name, "/")

	// scp-like syntax: git@host:org/repo.git
	if at := strings.Index(name, "@"); at != -1 && !strings.Contains(name, "://") {
		if colon := strings.Index(name, ":"); colon != -1 {
			name = name[colon+1:]
		}
	}

	name = strings.TrimSuffix(name, ".git")
	if idx := strings.LastIndex(name, "/"); idx != -1 {
		name = name[idx+1:]
	}

	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("could not extract repository name from %q", url)
	}
	return name, nil
}
