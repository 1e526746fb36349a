package doctor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/gitlink/internal/output"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// setupFakeRepo creates a checkout on master tracking origin at remoteURL.
func setupFakeRepo(t *testing.T, remoteURL string) string {
	t.Helper()

	tmp, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	repo := filepath.Join(tmp, "repo")
	writeFile(t, filepath.Join(repo, ".git", "config"), "[remote \"origin\"]\n\turl = "+remoteURL+"\n[branch \"master\"]\n\tremote = origin\n")
	writeFile(t, filepath.Join(repo, ".git", "HEAD"), "ref: refs/heads/master\n")
	writeFile(t, filepath.Join(repo, ".git", "refs", "heads", "master"), "a9b854f5131a863ad47d3b6c6bbca8cd17a8aff3\n")
	return repo
}

func TestDiagnose_Healthy(t *testing.T) {
	t.Parallel()

	repo := setupFakeRepo(t, "git@github.com:testUser/testRepo.git")
	r := Diagnose(context.Background(), Options{
		Dir:        repo,
		ConfigPath: filepath.Join(t.TempDir(), "config.toml"),
	})

	for _, name := range []string{"config", "repository", "remote", "commit", "provider"} {
		c, ok := r.Find(name)
		if !ok {
			t.Fatalf("missing check %q", name)
		}
		if c.Status != StatusOK {
			t.Errorf("check %q status = %v (%s), want OK", name, c.Status, c.Detail)
		}
	}

	provider, _ := r.Find("provider")
	if want := "github https://github.com/testUser/testRepo/tree/master"; provider.Detail != want {
		t.Errorf("provider detail = %q, want %q", provider.Detail, want)
	}
	if n := r.Count(StatusFail); n != 0 {
		t.Errorf("failures = %d, want 0", n)
	}
}

func TestDiagnose_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setup     func(t *testing.T) Options
		wantCheck string
	}{
		{
			name: "invalid global config",
			setup: func(t *testing.T) Options {
				path := filepath.Join(t.TempDir(), "config.toml")
				writeFile(t, path, `provider_protocol = "gopher"`)
				return Options{Dir: setupFakeRepo(t, "https://github.com/o/r.git"), ConfigPath: path}
			},
			wantCheck: "config",
		},
		{
			name: "not a repository",
			setup: func(t *testing.T) Options {
				return Options{Dir: t.TempDir(), ConfigPath: filepath.Join(t.TempDir(), "none.toml")}
			},
			wantCheck: "repository",
		},
		{
			name: "invalid local config",
			setup: func(t *testing.T) Options {
				repo := setupFakeRepo(t, "https://github.com/o/r.git")
				writeFile(t, filepath.Join(repo, ".gitlink.toml"), `provider_type = "svn"`)
				return Options{Dir: repo, ConfigPath: filepath.Join(t.TempDir(), "none.toml")}
			},
			wantCheck: "local config",
		},
		{
			name: "unknown provider",
			setup: func(t *testing.T) Options {
				repo := setupFakeRepo(t, "https://example.org/o/r.git")
				return Options{Dir: repo, ConfigPath: filepath.Join(t.TempDir(), "none.toml")}
			},
			wantCheck: "provider",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := Diagnose(context.Background(), tt.setup(t))
			c, ok := r.Find(tt.wantCheck)
			if !ok {
				t.Fatalf("missing check %q", tt.wantCheck)
			}
			if c.Status != StatusFail {
				t.Errorf("check %q status = %v (%s), want fail", tt.wantCheck, c.Status, c.Detail)
			}
		})
	}
}

func TestRun_PrintsReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := output.WithPrinter(context.Background(), &buf)

	err := Run(ctx, Options{Dir: t.TempDir(), ConfigPath: filepath.Join(t.TempDir(), "none.toml")})
	if err == nil {
		t.Fatal("expected error outside a repository")
	}

	got := buf.String()
	for _, want := range []string{"Configuration:", "Repository:", "Environment:", "❌ repository:", "Found 1 issue(s)"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
