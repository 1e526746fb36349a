// Package config handles loading and validation of gitlink configuration.
//
// Configuration is read from ~/.config/gitlink/config.toml, or from the file
// named by GITLINK_CONFIG. A missing file is not an error; defaults apply.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (--sha, --default-branch, --remote)
//   - .gitlink.toml at the root of the repository work tree
//   - Global config file
//   - Default values
//
// # Key Settings
//
//   - github_domain: Host served by GitHub (default: "github.com")
//   - gitea_domain: Host served by Gitea (default: "gitea.io")
//   - provider_type: Provider alias for self-hosted instances (default: "unknown")
//   - provider_protocol: "http" or "https" for generated links (default: "https")
//   - use_commit_sha: Link to the commit instead of the branch
//   - require_selection_for_lines: Only anchor lines when text is selected
//   - default_pull_request_branch: Bitbucket pull request target (default: "integration")
//   - always_open_in_default_branch: Link to the remote default branch
//   - open_command: Command that opens a URL, {url} is replaced
//
// # Custom Provider
//
// The custom provider is selected with provider_type = "custom" and is
// driven by configuration only:
//
//	provider_type = "custom"
//	custom_base_url = "https://review.example.org"
//	custom_provider_path = "plugins/gitiles"
//	custom_blob_path = "+"
//	custom_line_prefix = "#"
//
// # Host Mappings
//
// The [hosts] section maps domains to providers for self-hosted instances:
//
//	[hosts]
//	"code.company.com" = "gitlab"
package config
