package forge

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"
)

// Kind identifies a hosting provider.
type Kind string

const (
	GitHub       Kind = "github"
	GitLab       Kind = "gitlab"
	Bitbucket    Kind = "bitbucket"
	Gitea        Kind = "gitea"
	VisualStudio Kind = "visualstudio"
	Custom       Kind = "custom"
)

// Kinds returns all provider kinds in table order.
func Kinds() []Kind {
	return []Kind{GitHub, Bitbucket, GitLab, VisualStudio, Gitea, Custom}
}

// ParseKind returns the kind with the given name (case-insensitive).
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Options controls provider detection and URL rendering.
type Options struct {
	GitHubDomain string
	GiteaDomain  string
	ProviderType string // alias override, "unknown" disables it
	Protocol     string // scheme of generated URLs

	UseCommitSHA             bool
	DefaultPullRequestBranch string

	// Hosts maps extra domains to provider kinds (self-hosted instances).
	Hosts map[string]string

	CustomBaseURL      string
	CustomProviderPath string
	CustomBlobPath     string
	CustomLinePrefix   string
}

// DefaultOptions returns the built-in defaults.
func DefaultOptions() Options {
	return Options{
		GitHubDomain:             "github.com",
		GiteaDomain:              "gitea.io",
		ProviderType:             "unknown",
		Protocol:                 "https",
		DefaultPullRequestBranch: "integration",
		CustomBlobPath:           "+",
		CustomLinePrefix:         "#",
	}
}

// Forge is a provider bound to one remote and an optional commit.
type Forge struct {
	Kind    Kind
	Remote  RemoteDescriptor
	Commit  string
	Options Options
}

// New binds a provider kind to a remote.
func New(kind Kind, remote RemoteDescriptor, commit string, opts Options) *Forge {
	if opts.Protocol == "" {
		opts.Protocol = "https"
	}
	return &Forge{Kind: kind, Remote: remote, Commit: commit, Options: opts}
}

// Name returns the provider name.
func (f *Forge) Name() string {
	return string(f.Kind)
}

// BaseURL returns the web URL of the repository root without any ref.
func (f *Forge) BaseURL() string {
	switch f.Kind {
	case VisualStudio:
		return visualStudioBase(f.Remote, f.Options.Protocol)
	case Custom:
		return customBase(f.Remote, f.Options)
	default:
		return f.Remote.BaseURL(f.Options.Protocol)
	}
}

// WebURL returns the URL of filePath at branch, or of the repository root
// when filePath is empty. filePath starts with "/" and is already escaped.
// Line numbers <= 0 mean no line; lineEnd <= 0 or lineEnd == lineStart
// selects a single line.
func (f *Forge) WebURL(branch, filePath string, lineStart, lineEnd int) (string, error) {
	lines := newLineRange(lineStart, lineEnd)
	if filePath == "" {
		lines = lineRange{}
	}

	switch f.Kind {
	case GitHub:
		return f.githubURL(branch, filePath, lines), nil
	case GitLab:
		return f.gitlabURL(branch, filePath, lines), nil
	case Bitbucket:
		return f.bitbucketURL(filePath, lines)
	case Gitea:
		return f.giteaURL(branch, filePath, lines), nil
	case VisualStudio:
		return f.visualStudioURL(branch, filePath, lines), nil
	case Custom:
		return f.customURL(branch, filePath, lines), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownProvider, f.Kind)
	}
}

// PullRequestURL returns the URL that starts a pull request from branch.
func (f *Forge) PullRequestURL(branch string) (string, error) {
	switch f.Kind {
	case GitHub:
		return f.githubPullRequestURL(branch), nil
	case Bitbucket:
		return f.bitbucketPullRequestURL(branch), nil
	default:
		return "", fmt.Errorf("%w: pull requests on %s", ErrUnsupportedOperation, f.Kind)
	}
}

// Ref returns the ref WebURL puts into file links for branch.
func (f *Forge) Ref(branch string) string {
	switch f.Kind {
	case Bitbucket:
		if f.Commit != "" {
			return f.Commit
		}
	case GitHub, Gitea:
		ref, _ := f.ref(branch)
		return ref
	}
	return branch
}

// ref returns the commit when commit links are enabled and a commit is known.
func (f *Forge) ref(branch string) (string, bool) {
	if f.Options.UseCommitSHA && f.Commit != "" {
		return f.Commit, true
	}
	return branch, false
}

type lineRange struct {
	start, end int
}

func newLineRange(start, end int) lineRange {
	if start <= 0 {
		return lineRange{}
	}
	if end <= 0 {
		end = start
	}
	if end < start {
		start, end = end, start
	}
	return lineRange{start: start, end: end}
}

func (l lineRange) none() bool    { return l.start == 0 }
func (l lineRange) isRange() bool { return l.end > l.start }
func (l lineRange) first() string { return strconv.Itoa(l.start) }
func (l lineRange) last() string  { return strconv.Itoa(l.end) }

// render substitutes {name} placeholders in tpl.
func render(tpl string, values map[string]any) string {
	return fasttemplate.ExecuteStringStd(tpl, "{", "}", values)
}

// baseName returns the last element of an escaped file path.
func baseName(filePath string) string {
	return path.Base(filePath)
}
