package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphi011/gitlink/internal/log"
)

// RepoState is everything about the checkout a link is built from.
type RepoState struct {
	Branch        string // branch name used in links
	LocalBranch   string // branch checked out locally
	RemoteName    string
	RemoteURL     string
	Commit        string // full hash, empty if unknown
	DefaultBranch string // remote default branch, falls back to Branch
}

// StateOptions adjusts state resolution.
type StateOptions struct {
	Remote string // use this remote instead of the tracked one
}

// ResolveState determines branch, remote and commit for repo in this order:
// HEAD, branch tracking section, remote sections, refs.
func ResolveState(ctx context.Context, repo *Repository, cfg *RepoConfig, opts StateOptions) (*RepoState, error) {
	l := log.FromContext(ctx)

	head, err := ReadHead(repo)
	if err != nil {
		l.Debug("HEAD unavailable, using default branch", "err", err, "branch", DefaultBranch)
	}

	local := head.Branch
	if local == "" {
		local = DefaultBranch
	}

	remoteName, remoteURL, err := ResolveRemote(cfg, local, opts.Remote)
	if err != nil {
		return nil, err
	}

	state := &RepoState{
		Branch:      upstreamBranch(cfg, local, remoteName),
		LocalBranch: local,
		RemoteName:  remoteName,
		RemoteURL:   remoteURL,
		Commit:      head.Commit,
	}

	if state.Commit == "" {
		commit, err := revParseHead(ctx, repo.WorkTree)
		if err != nil {
			l.Debug("commit unavailable", "err", err)
		}
		state.Commit = commit
	}

	state.DefaultBranch = RemoteDefaultBranch(repo, remoteName)
	if state.DefaultBranch == "" {
		state.DefaultBranch = state.Branch
	}

	l.Debug("resolved repository state",
		"branch", state.Branch, "remote", state.RemoteName, "commit", state.Commit, "default", state.DefaultBranch)
	return state, nil
}

// ResolveRemote returns the remote name and URL for branch.
//
// An explicit remote wins. Otherwise the remote configured in
// `branch "<name>".remote` is used, and when the branch tracks nothing, the
// first declared remote with a URL.
func ResolveRemote(cfg *RepoConfig, branch, explicit string) (name, url string, err error) {
	if explicit != "" {
		if url, ok := cfg.Get("remote", explicit, "url"); ok && url != "" {
			return explicit, url, nil
		}
		return "", "", fmt.Errorf("%w: remote %q has no url", ErrNoRemoteConfigured, explicit)
	}

	// "." means the branch tracks another local branch
	if tracked, ok := cfg.Get("branch", branch, "remote"); ok && tracked != "" && tracked != "." {
		if url, ok := cfg.Get("remote", tracked, "url"); ok && url != "" {
			return tracked, url, nil
		}
	}

	for _, remote := range cfg.Subsections("remote") {
		if url, ok := cfg.Get("remote", remote, "url"); ok && url != "" {
			return remote, url, nil
		}
	}

	return "", "", ErrNoRemoteConfigured
}

// upstreamBranch returns the remote branch name local tracks on remote,
// which may differ from the local name. Returns local when there is none.
func upstreamBranch(cfg *RepoConfig, local, remote string) string {
	tracked, _ := cfg.Get("branch", local, "remote")
	merge, _ := cfg.Get("branch", local, "merge")
	if tracked != remote || merge == "" {
		return local
	}
	return strings.TrimPrefix(merge, "refs/heads/")
}
