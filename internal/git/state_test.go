package git

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestResolveRemote(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte(`[remote "upstream"]
	url = git@github.com:upstream/testRepo.git
[remote "origin"]
	url = https://github.com/testUser/testRepo.git
[remote "nourl"]
	fetch = +refs/heads/*:refs/remotes/nourl/*
[branch "master"]
	remote = origin
	merge = refs/heads/master
[branch "local-only"]
	remote = .
	merge = refs/heads/master
`))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	tests := []struct {
		name     string
		branch   string
		explicit string
		wantName string
		wantURL  string
		wantErr  bool
	}{
		{"tracked remote", "master", "", "origin", "https://github.com/testUser/testRepo.git", false},
		{"untracked branch uses first declared remote", "feature", "", "upstream", "git@github.com:upstream/testRepo.git", false},
		{"branch tracking local branch", "local-only", "", "upstream", "git@github.com:upstream/testRepo.git", false},
		{"explicit remote wins", "master", "upstream", "upstream", "git@github.com:upstream/testRepo.git", false},
		{"explicit remote without url", "master", "nourl", "", "", true},
		{"explicit unknown remote", "master", "missing", "", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			name, url, err := ResolveRemote(cfg, tt.branch, tt.explicit)
			if tt.wantErr {
				if !errors.Is(err, ErrNoRemoteConfigured) {
					t.Errorf("ResolveRemote() error = %v, want ErrNoRemoteConfigured", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveRemote() error = %v", err)
			}
			if name != tt.wantName || url != tt.wantURL {
				t.Errorf("ResolveRemote() = (%q, %q), want (%q, %q)", name, url, tt.wantName, tt.wantURL)
			}
		})
	}
}

func TestResolveRemote_NoRemotes(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig([]byte("[core]\n\tbare = false\n[branch \"master\"]\n\tremote = origin\n"))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if _, _, err := ResolveRemote(cfg, "master", ""); !errors.Is(err, ErrNoRemoteConfigured) {
		t.Errorf("ResolveRemote() error = %v, want ErrNoRemoteConfigured", err)
	}
}

func TestResolveState(t *testing.T) {
	t.Parallel()

	t.Run("tracked branch", func(t *testing.T) {
		t.Parallel()
		repoPath := setupFakeRepo(t, sampleConfig)
		gitDir := filepath.Join(repoPath, ".git")
		writeFile(t, filepath.Join(gitDir, "refs", "remotes", "origin", "HEAD"), "ref: refs/remotes/origin/main\n")

		repo := &Repository{WorkTree: repoPath, GitDir: gitDir, CommonDir: gitDir}
		cfg, err := LoadConfig(repo.ConfigPath())
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		got, err := ResolveState(context.Background(), repo, cfg, StateOptions{})
		if err != nil {
			t.Fatalf("ResolveState() error = %v", err)
		}
		want := RepoState{
			Branch:        "master",
			LocalBranch:   "master",
			RemoteName:    "origin",
			RemoteURL:     "https://github.com/testUser/testRepo.git",
			Commit:        testCommit,
			DefaultBranch: "main",
		}
		if *got != want {
			t.Errorf("ResolveState() = %+v, want %+v", *got, want)
		}
	})

	t.Run("upstream with a different name", func(t *testing.T) {
		t.Parallel()
		repoPath := setupFakeRepo(t, sampleConfig+"[branch \"wip\"]\n\tremote = origin\n\tmerge = refs/heads/feature/wip\n")
		gitDir := filepath.Join(repoPath, ".git")
		writeFile(t, filepath.Join(gitDir, "HEAD"), "ref: refs/heads/wip\n")
		writeFile(t, filepath.Join(gitDir, "refs", "heads", "wip"), otherCommit+"\n")

		repo := &Repository{WorkTree: repoPath, GitDir: gitDir, CommonDir: gitDir}
		cfg, err := LoadConfig(repo.ConfigPath())
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		got, err := ResolveState(context.Background(), repo, cfg, StateOptions{})
		if err != nil {
			t.Fatalf("ResolveState() error = %v", err)
		}
		if got.Branch != "feature/wip" || got.LocalBranch != "wip" {
			t.Errorf("Branch = %q, LocalBranch = %q, want feature/wip and wip", got.Branch, got.LocalBranch)
		}
		if got.Commit != otherCommit {
			t.Errorf("Commit = %q, want %q", got.Commit, otherCommit)
		}
		if got.DefaultBranch != "feature/wip" {
			t.Errorf("DefaultBranch = %q, want fallback to branch", got.DefaultBranch)
		}
	})

	t.Run("missing HEAD defaults to master", func(t *testing.T) {
		t.Parallel()
		repoPath := setupFakeRepo(t, sampleConfig)
		gitDir := filepath.Join(repoPath, ".git")
		// HEAD points into a worktree dir that does not exist
		repo := &Repository{WorkTree: repoPath, GitDir: filepath.Join(gitDir, "worktrees", "gone"), CommonDir: gitDir}
		cfg, err := LoadConfig(repo.ConfigPath())
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		got, err := ResolveState(context.Background(), repo, cfg, StateOptions{})
		if err != nil {
			t.Fatalf("ResolveState() error = %v", err)
		}
		if got.Branch != DefaultBranch {
			t.Errorf("Branch = %q, want %q", got.Branch, DefaultBranch)
		}
	})

	t.Run("no remote", func(t *testing.T) {
		t.Parallel()
		repoPath := setupFakeRepo(t, "[core]\n\tbare = false\n")
		gitDir := filepath.Join(repoPath, ".git")
		repo := &Repository{WorkTree: repoPath, GitDir: gitDir, CommonDir: gitDir}
		cfg, err := LoadConfig(repo.ConfigPath())
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		if _, err := ResolveState(context.Background(), repo, cfg, StateOptions{}); !errors.Is(err, ErrNoRemoteConfigured) {
			t.Errorf("ResolveState() error = %v, want ErrNoRemoteConfigured", err)
		}
	})
}
