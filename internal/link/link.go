package link

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/gitlink/internal/config"
	"github.com/raphi011/gitlink/internal/forge"
	"github.com/raphi011/gitlink/internal/git"
	"github.com/raphi011/gitlink/internal/log"
)

// Request describes what to link to.
type Request struct {
	Path      string // file or directory, empty means the working directory
	LineStart int    // 0 means no line
	LineEnd   int    // 0 means single line
	Selection bool   // lines come from a selection rather than a cursor

	Remote        string // remote to use instead of the tracked one
	UseCommitSHA  bool   // link to the commit regardless of config
	DefaultBranch bool   // link to the remote default branch regardless of config
	PullRequest   bool   // build a pull request URL instead of a file link
}

// Link is a rendered provider URL and what it was built from.
type Link struct {
	URL       string `json:"url"`
	Provider  string `json:"provider"`
	Branch    string `json:"branch"`
	Ref       string `json:"ref"`
	Commit    string `json:"commit,omitempty"`
	Remote    string `json:"remote"`
	RemoteURL string `json:"remote_url"`
	File      string `json:"file,omitempty"`
	LineStart int    `json:"line_start,omitempty"`
	LineEnd   int    `json:"line_end,omitempty"`
	WorkTree  string `json:"worktree"`
}

// Build resolves req into a Link. The effective config comes from the
// resolver stored in ctx, merged with the repository's .gitlink.toml.
func Build(ctx context.Context, req Request) (*Link, error) {
	l := log.FromContext(ctx)

	path, err := targetPath(req.Path)
	if err != nil {
		return nil, err
	}

	repo, err := git.Locate(path)
	if err != nil {
		return nil, err
	}
	l.Debug("located repository", "worktree", repo.WorkTree, "gitdir", repo.GitDir, "commondir", repo.CommonDir)

	cfg, err := config.ResolverFromContext(ctx).ConfigForRepo(repo.WorkTree)
	if err != nil {
		return nil, err
	}
	settings := *cfg
	settings.UseCommitSHA = settings.UseCommitSHA || req.UseCommitSHA
	settings.AlwaysOpenInDefaultBranch = settings.AlwaysOpenInDefaultBranch || req.DefaultBranch

	repoCfg, err := git.LoadConfig(repo.ConfigPath())
	if err != nil {
		return nil, err
	}

	state, err := git.ResolveState(ctx, repo, repoCfg, git.StateOptions{Remote: req.Remote})
	if err != nil {
		return nil, err
	}

	f, err := forge.Resolve(state.RemoteURL, state.Commit, settings.ForgeOptions())
	if err != nil {
		return nil, err
	}
	l.Debug("resolved provider", "provider", f.Name(), "base", f.BaseURL())

	link := &Link{
		Provider:  f.Name(),
		Branch:    state.Branch,
		Commit:    state.Commit,
		Remote:    state.RemoteName,
		RemoteURL: state.RemoteURL,
		WorkTree:  repo.WorkTree,
	}

	if req.PullRequest {
		link.Ref = state.Branch
		link.URL, err = f.PullRequestURL(state.Branch)
		if err != nil {
			return nil, err
		}
		return link, nil
	}

	if settings.AlwaysOpenInDefaultBranch {
		link.Branch = state.DefaultBranch
	}

	rel, err := repo.RelPath(path)
	if err != nil {
		return nil, err
	}
	link.File = EncodePath(rel)
	link.LineStart, link.LineEnd = lineAnchor(link.File, req, settings.RequireSelectionForLines)
	link.Ref = f.Ref(link.Branch)

	link.URL, err = f.WebURL(link.Branch, link.File, link.LineStart, link.LineEnd)
	if err != nil {
		return nil, err
	}
	return link, nil
}

// targetPath returns the absolute target, defaulting to the working directory.
func targetPath(path string) (string, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	return filepath.Abs(path)
}

// lineAnchor returns the normalized line range to link, or zeros when no
// anchor applies. A cursor without selection is dropped when
// requireSelection is set.
func lineAnchor(file string, req Request, requireSelection bool) (start, end int) {
	if file == "" || req.LineStart <= 0 {
		return 0, 0
	}
	if requireSelection && !req.Selection {
		return 0, 0
	}

	start, end = req.LineStart, req.LineEnd
	if end <= 0 {
		return start, 0
	}
	if end < start {
		start, end = end, start
	}
	if end == start {
		return start, 0
	}
	return start, end
}
