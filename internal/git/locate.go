package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Repository describes where a checkout and its git metadata live.
type Repository struct {
	WorkTree  string // directory containing the .git entry
	GitDir    string // per-checkout git directory, HEAD lives here
	CommonDir string // shared git directory holding config and refs
}

// ConfigPath returns the path of the authoritative config file.
func (r *Repository) ConfigPath() string {
	return filepath.Join(r.CommonDir, "config")
}

// RelPath returns path relative to the work tree using forward slashes.
// Returns "" for the work tree itself.
func (r *Repository) RelPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(resolveLinks(r.WorkTree), resolveLinks(abs))
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside of repository %s", path, r.WorkTree)
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}

// resolveLinks evaluates symlinks in path. A path that does not exist is
// resolved through its parent directory.
func resolveLinks(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	if resolved, err := filepath.EvalSymlinks(filepath.Dir(path)); err == nil {
		return filepath.Join(resolved, filepath.Base(path))
	}
	return path
}

// Locate walks parent directories from startPath until a .git entry exists
// and resolves submodule and worktree pointer files to the real git
// directories. startPath may be a file or a directory; it does not need to
// exist (a deleted file still belongs to its repository).
func Locate(startPath string) (*Repository, error) {
	abs, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", startPath, err)
	}

	dir := abs
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		gitPath := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitPath); err == nil {
			// .git can be a directory (regular repo) or file (worktree, submodule)
			if info.IsDir() {
				return &Repository{WorkTree: dir, GitDir: gitPath, CommonDir: gitPath}, nil
			}
			if info.Mode().IsRegular() {
				return resolvePointer(dir, gitPath)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("%w: %s", ErrNotAGitRepository, abs)
		}
		dir = parent
	}
}

// resolvePointer follows a "gitdir: <path>" file.
func resolvePointer(workTree, gitFile string) (*Repository, error) {
	gitDir, err := readGitdirPointer(gitFile)
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(workTree, gitDir)
	}
	gitDir = filepath.Clean(gitDir)

	return &Repository{
		WorkTree:  workTree,
		GitDir:    gitDir,
		CommonDir: resolveCommonDir(gitDir),
	}, nil
}

// readGitdirPointer parses the first line of a .git file.
func readGitdirPointer(gitFile string) (string, error) {
	content, err := os.ReadFile(gitFile)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfigUnreadable, err)
	}

	line, _, _ := strings.Cut(string(content), "\n")
	line = strings.TrimSpace(line)
	gitDir, ok := strings.CutPrefix(line, "gitdir:")
	if !ok {
		return "", fmt.Errorf("%w: invalid .git file %s: expected 'gitdir: <path>'", ErrConfigUnreadable, gitFile)
	}
	gitDir = strings.TrimSpace(gitDir)
	if gitDir == "" {
		return "", fmt.Errorf("%w: invalid .git file %s: empty gitdir path", ErrConfigUnreadable, gitFile)
	}
	return gitDir, nil
}

// resolveCommonDir finds the directory holding the shared config and refs
// for a git directory reached through a pointer file.
//
// Linked worktrees live in <common>/worktrees/<name> and have no remotes of
// their own. Git records the common directory in a "commondir" file; without
// it, the most deeply nested "worktrees" parent that looks like a git
// directory wins, falling back to the first one.
func resolveCommonDir(gitDir string) string {
	if data, err := os.ReadFile(filepath.Join(gitDir, "commondir")); err == nil {
		if common := strings.TrimSpace(string(data)); common != "" {
			if !filepath.IsAbs(common) {
				common = filepath.Join(gitDir, common)
			}
			return filepath.Clean(common)
		}
	}

	candidates := worktreeParents(gitDir)
	if len(candidates) == 0 {
		// Submodule or plain separate git dir
		return gitDir
	}

	for i := len(candidates) - 1; i >= 0; i-- {
		if isFile(filepath.Join(candidates[i], "HEAD")) && isFile(filepath.Join(candidates[i], "config")) {
			return candidates[i]
		}
	}
	return candidates[0]
}

// worktreeParents returns the prefixes of gitDir that precede a "worktrees"
// segment followed by a worktree name, shallowest first.
func worktreeParents(gitDir string) []string {
	segments := strings.Split(filepath.ToSlash(gitDir), "/")

	var parents []string
	for i := 1; i < len(segments)-1; i++ {
		if segments[i] != "worktrees" {
			continue
		}
		prefix := strings.Join(segments[:i], "/")
		if prefix == "" {
			prefix = "/"
		}
		parents = append(parents, filepath.FromSlash(prefix))
	}
	return parents
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
