package git

import "errors"

var (
	// ErrNotAGitRepository indicates no .git entry exists between a path and the filesystem root.
	ErrNotAGitRepository = errors.New("not a git repository")

	// ErrConfigUnreadable indicates the git config (or the .git pointer file) could not be read or parsed.
	ErrConfigUnreadable = errors.New("git config unreadable")

	// ErrNoRemoteConfigured indicates neither the branch nor the repository declares a remote URL.
	ErrNoRemoteConfigured = errors.New("no remote configured")

	// ErrGitNotFound indicates git is not installed or not in PATH
	ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")
)
