package git

import (
	"context"
	"fmt"
)

// CloneBare clones url as a bare repository into gitDir and configures
// it so remote branches behave like a regular clone's. A fresh bare
// clone has no fetch refspec, which would break tracking refs and
// merge detection later.
func CloneBare(ctx context.Context, url, gitDir string) error {
	if err := runGit(ctx, "", "clone", "--bare", url, gitDir); err != nil {
		return fmt.Errorf("failed to clone %s: %v", url, err)
	}

	if err := runGit(ctx, gitDir, "config", "remote.origin.fetch", "+refs/heads/*:refs/remotes/origin/*"); err != nil {
		return fmt.Errorf("failed to configure fetch refspec: %v", err)
	}

	if err := runGit(ctx, gitDir, "fetch", "origin"); err != nil {
		return fmt.Errorf("failed to fetch origin: %v", err)
	}
	return nil
}
