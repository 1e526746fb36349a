package forge

import (
	"fmt"
	"strings"

	giturls "github.com/whilp/git-urls"
)

// RemoteDescriptor is the structured form of a git remote URL.
type RemoteDescriptor struct {
	Raw      string
	Protocol string // transport of the remote: https, http, ssh, git
	Host     string // lower-cased, without port
	Port     string // kept for http(s) remotes only
	Owner    string // every path segment but the last, e.g. "group/subgroup"
	Repo     string // last path segment without .git
}

// ParseRemote parses HTTPS, SSH and SCP-like ("git@host:owner/repo.git")
// remote URLs.
func ParseRemote(raw string) (RemoteDescriptor, error) {
	raw = strings.TrimSpace(raw)
	u, err := giturls.Parse(raw)
	if err != nil {
		return RemoteDescriptor{}, fmt.Errorf("invalid remote URL %q: %w", raw, err)
	}
	if u.Hostname() == "" {
		return RemoteDescriptor{}, fmt.Errorf("invalid remote URL %q: no host", raw)
	}

	path := strings.Trim(u.Path, "/")
	path = strings.TrimSuffix(path, ".git")
	if path == "" {
		return RemoteDescriptor{}, fmt.Errorf("invalid remote URL %q: no repository path", raw)
	}

	r := RemoteDescriptor{
		Raw:      raw,
		Protocol: u.Scheme,
		Host:     strings.ToLower(u.Hostname()),
	}
	if u.Scheme == "http" || u.Scheme == "https" {
		r.Port = u.Port()
	}
	if i := strings.LastIndex(path, "/"); i >= 0 {
		r.Owner, r.Repo = path[:i], path[i+1:]
	} else {
		r.Repo = path
	}
	return r, nil
}

// Path returns "owner/repo".
func (r RemoteDescriptor) Path() string {
	if r.Owner == "" {
		return r.Repo
	}
	return r.Owner + "/" + r.Repo
}

// Authority returns host[:port].
func (r RemoteDescriptor) Authority() string {
	if r.Port == "" {
		return r.Host
	}
	return r.Host + ":" + r.Port
}

// BaseURL returns the web URL of the repository for the given protocol.
// SSH and HTTPS remotes of the same repository yield the same base URL.
func (r RemoteDescriptor) BaseURL(protocol string) string {
	return protocol + "://" + r.Authority() + "/" + r.Path()
}
