package git

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	testCommit  = "a9b854f5131a863ad47d3b6c6bbca8cd17a8aff3"
	otherCommit = "f9f2dcbf56e88ee3612c9890a6df1cfd4dde8c5e"
)

const sampleConfig = `[core]
	repositoryformatversion = 0
	bare = false
[remote "origin"]
	url = https://github.com/testUser/testRepo.git
	fetch = +refs/heads/*:refs/remotes/origin/*
[branch "master"]
	remote = origin
	merge = refs/heads/master
`

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// writeFile creates path with content, including parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// setupFakeRepo creates <tmp>/repo with a .git directory holding config,
// HEAD on master and a loose master ref. Returns the repo path.
func setupFakeRepo(t *testing.T, config string) string {
	t.Helper()
	repo := filepath.Join(resolveTempDir(t), "repo")
	gitDir := filepath.Join(repo, ".git")
	writeFile(t, filepath.Join(gitDir, "config"), config)
	writeFile(t, filepath.Join(gitDir, "HEAD"), "ref: refs/heads/master\n")
	writeFile(t, filepath.Join(gitDir, "refs", "heads", "master"), testCommit+"\n")
	writeFile(t, filepath.Join(repo, "sampleDirectory", "sampleTestFile.txt"), "line 1\nline 2\n")
	return repo
}
