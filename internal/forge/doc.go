// Package forge turns a git remote into web URLs on its hosting service.
//
// Supported providers are GitHub, GitLab, Bitbucket, Gitea, Visual Studio /
// Azure DevOps and a custom provider driven entirely by configuration.
//
// # Provider Detection
//
// Use [Resolve] to pick the provider for a remote URL. The host is matched
// against an ordered table, first match wins:
//
//  1. GitHub domain (configurable, default github.com)
//  2. bitbucket.org
//  3. gitlab.com
//  4. visualstudio.com, dev.azure.com
//  5. Gitea domain (configurable, default gitea.io)
//  6. custom host mappings from config (for self-hosted instances)
//  7. custom
//
// Hosts match exactly or as a sub-domain. A configured provider_type alias
// is checked against each entry's name in the same pass, so "gitlab" routes
// a self-hosted code.company.com to the GitLab templates.
//
// # Usage
//
//	f, err := forge.Resolve(remoteURL, commit, opts)
//	url, err := f.WebURL(branch, "/cmd/main.go", 12, 20)
//	pr, err := f.PullRequestURL(branch)
//
// # Platform Differences
//
//   - Only GitHub renders line ranges; the others anchor the first line
//   - Bitbucket file views always use the commit, never the branch
//   - Pull request URLs exist for GitHub and Bitbucket only
package forge
