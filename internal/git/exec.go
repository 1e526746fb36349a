package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/raphi011/gitlink/internal/cmd"
)

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// outputGit executes a git command with context support and verbose logging,
// returning trimmed stdout.
func outputGit(ctx context.Context, dir string, args ...string) (string, error) {
	out, err := cmd.OutputContext(ctx, "", "git", gitArgs(dir, args)...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// revParseHead asks git for the commit HEAD points at.
func revParseHead(ctx context.Context, workTree string) (string, error) {
	if err := CheckGit(); err != nil {
		return "", err
	}
	hash, err := outputGit(ctx, workTree, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return hash, nil
}
