package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/gitlink/internal/forge"
)

// EnvConfigPath overrides the location of the global config file.
const EnvConfigPath = "GITLINK_CONFIG"

// Defaults for string settings.
const (
	DefaultGitHubDomain      = "github.com"
	DefaultGiteaDomain       = "gitea.io"
	DefaultProviderType      = "unknown"
	DefaultProviderProtocol  = "https"
	DefaultPullRequestBranch = "integration"
	DefaultCustomBlobPath    = "+"
	DefaultCustomLinePrefix  = "#"
)

// Config holds the gitlink configuration
type Config struct {
	GitHubDomain              string            `toml:"github_domain" json:"github_domain" yaml:"github_domain"`
	GiteaDomain               string            `toml:"gitea_domain" json:"gitea_domain" yaml:"gitea_domain"`
	ProviderType              string            `toml:"provider_type" json:"provider_type" yaml:"provider_type"`
	ProviderProtocol          string            `toml:"provider_protocol" json:"provider_protocol" yaml:"provider_protocol"`
	UseCommitSHA              bool              `toml:"use_commit_sha" json:"use_commit_sha" yaml:"use_commit_sha"`
	RequireSelectionForLines  bool              `toml:"require_selection_for_lines" json:"require_selection_for_lines" yaml:"require_selection_for_lines"`
	DefaultPullRequestBranch  string            `toml:"default_pull_request_branch" json:"default_pull_request_branch" yaml:"default_pull_request_branch"`
	AlwaysOpenInDefaultBranch bool              `toml:"always_open_in_default_branch" json:"always_open_in_default_branch" yaml:"always_open_in_default_branch"`
	CustomBaseURL             string            `toml:"custom_base_url" json:"custom_base_url" yaml:"custom_base_url"`
	CustomProviderPath        string            `toml:"custom_provider_path" json:"custom_provider_path" yaml:"custom_provider_path"`
	CustomBlobPath            string            `toml:"custom_blob_path" json:"custom_blob_path" yaml:"custom_blob_path"`
	CustomLinePrefix          string            `toml:"custom_line_prefix" json:"custom_line_prefix" yaml:"custom_line_prefix"`
	OpenCommand               string            `toml:"open_command" json:"open_command" yaml:"open_command"`
	Hosts                     map[string]string `toml:"hosts" json:"hosts,omitempty" yaml:"hosts,omitempty"` // domain -> provider
}

// Default returns the default configuration
func Default() Config {
	return Config{
		GitHubDomain:             DefaultGitHubDomain,
		GiteaDomain:              DefaultGiteaDomain,
		ProviderType:             DefaultProviderType,
		ProviderProtocol:         DefaultProviderProtocol,
		DefaultPullRequestBranch: DefaultPullRequestBranch,
		CustomBlobPath:           DefaultCustomBlobPath,
		CustomLinePrefix:         DefaultCustomLinePrefix,
	}
}

// ForgeOptions returns the provider options derived from c.
func (c *Config) ForgeOptions() forge.Options {
	return forge.Options{
		GitHubDomain:             c.GitHubDomain,
		GiteaDomain:              c.GiteaDomain,
		ProviderType:             c.ProviderType,
		Protocol:                 c.ProviderProtocol,
		UseCommitSHA:             c.UseCommitSHA,
		DefaultPullRequestBranch: c.DefaultPullRequestBranch,
		Hosts:                    c.Hosts,
		CustomBaseURL:            c.CustomBaseURL,
		CustomProviderPath:       c.CustomProviderPath,
		CustomBlobPath:           c.CustomBlobPath,
		CustomLinePrefix:         c.CustomLinePrefix,
	}
}

// Validate checks enum-like settings.
func (c *Config) Validate() error {
	if err := validateEnum(c.ProviderProtocol, "provider_protocol", ValidProtocols); err != nil {
		return err
	}
	if err := validateProviderType(c.ProviderType); err != nil {
		return err
	}
	return validateHosts(c.Hosts)
}

// applyDefaults fills settings that were set to the empty string.
func (c *Config) applyDefaults() {
	d := Default()
	if c.GitHubDomain == "" {
		c.GitHubDomain = d.GitHubDomain
	}
	if c.GiteaDomain == "" {
		c.GiteaDomain = d.GiteaDomain
	}
	if c.ProviderType == "" {
		c.ProviderType = d.ProviderType
	}
	if c.ProviderProtocol == "" {
		c.ProviderProtocol = d.ProviderProtocol
	}
	if c.DefaultPullRequestBranch == "" {
		c.DefaultPullRequestBranch = d.DefaultPullRequestBranch
	}
	if c.CustomBlobPath == "" {
		c.CustomBlobPath = d.CustomBlobPath
	}
	if c.CustomLinePrefix == "" {
		c.CustomLinePrefix = d.CustomLinePrefix
	}
}

// Path returns the path to the global config file
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitlink", "config.toml"), nil
}

// Load reads the global config file.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from path, see Load.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

const defaultConfig = `# gitlink configuration
# Location: ~/.config/gitlink/config.toml (override with GITLINK_CONFIG)

# Host served by GitHub (set for GitHub Enterprise)
# github_domain = "github.com"

# Host served by Gitea
# gitea_domain = "gitea.io"

# Provider for hosts that are not detected by domain:
# "github", "gitlab", "bitbucket", "gitea", "visualstudio", "custom" or "unknown"
# provider_type = "unknown"

# Protocol of generated links: "https" or "http"
# provider_protocol = "https"

# Link to the current commit instead of the branch
# use_commit_sha = false

# Only add line anchors when text is selected (not for a plain cursor)
# require_selection_for_lines = false

# Target branch of Bitbucket pull requests
# default_pull_request_branch = "integration"

# Link to the remote default branch instead of the current branch
# always_open_in_default_branch = false

# Command used to open links, {url} is replaced with the quoted URL
# open_command = "firefox --new-tab {url}"

# Custom provider (provider_type = "custom")
# custom_base_url = "https://review.example.org"
# custom_provider_path = "plugins/gitiles"
# custom_blob_path = "+"
# custom_line_prefix = "#"

# Host mappings - for self-hosted instances
# Maps custom domains to provider type for automatic detection
#
# [hosts]
# "github.mycompany.com" = "github"   # GitHub Enterprise
# "gitlab.internal.corp" = "gitlab"   # Self-hosted GitLab
# "git.company.com" = "gitea"         # Self-hosted Gitea
`

// DefaultConfig returns the default configuration template content.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at Path().
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	return path, writeTemplate(path, defaultConfig, force)
}

func writeTemplate(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
