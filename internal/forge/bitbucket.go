package forge

import "fmt"

// Bitbucket file views always point at a commit.
func (f *Forge) bitbucketURL(filePath string, lines lineRange) (string, error) {
	if f.Commit == "" {
		return "", fmt.Errorf("%w: bitbucket links point at a commit and HEAD could not be resolved", ErrCommitRequired)
	}

	values := map[string]any{
		"base": f.BaseURL(),
		"sha":  f.Commit,
		"path": filePath,
		"file": baseName(filePath),
		"line": lines.first(),
	}

	switch {
	case filePath == "":
		return render("{base}/src/{sha}", values), nil
	case lines.none():
		return render("{base}/src/{sha}{path}", values), nil
	default:
		return render("{base}/src/{sha}{path}#{file}-{line}", values), nil
	}
}

func (f *Forge) bitbucketPullRequestURL(branch string) string {
	return render("{base}/pull-requests/new?source={repo}::{branch}&dest={repo}::{dest}", map[string]any{
		"base":   f.BaseURL(),
		"repo":   f.Remote.Path(),
		"branch": branch,
		"dest":   f.Options.DefaultPullRequestBranch,
	})
}
