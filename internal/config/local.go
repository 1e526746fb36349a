package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-repo config file at the work tree root.
const LocalConfigFileName = ".gitlink.toml"

// LocalConfig holds per-repo configuration overrides from .gitlink.toml.
// Pointer fields and zero-value strings indicate "not set" (inherit from global).
type LocalConfig struct {
	GitHubDomain              string            `toml:"github_domain"`
	GiteaDomain               string            `toml:"gitea_domain"`
	ProviderType              string            `toml:"provider_type"`
	ProviderProtocol          string            `toml:"provider_protocol"`
	UseCommitSHA              *bool             `toml:"use_commit_sha"`
	RequireSelectionForLines  *bool             `toml:"require_selection_for_lines"`
	DefaultPullRequestBranch  string            `toml:"default_pull_request_branch"`
	AlwaysOpenInDefaultBranch *bool             `toml:"always_open_in_default_branch"`
	CustomBaseURL             string            `toml:"custom_base_url"`
	CustomProviderPath        string            `toml:"custom_provider_path"`
	CustomBlobPath            string            `toml:"custom_blob_path"`
	CustomLinePrefix          string            `toml:"custom_line_prefix"`
	OpenCommand               string            `toml:"open_command"`
	Hosts                     map[string]string `toml:"hosts"` // merged by domain into global
}

// LoadLocal reads a per-repo .gitlink.toml config from the given work tree.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(repoPath string) (*LocalConfig, error) {
	configFile := filepath.Join(repoPath, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	if err := validateEnum(local.ProviderProtocol, "provider_protocol", ValidProtocols); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}
	if err := validateProviderType(local.ProviderType); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}
	if err := validateHosts(local.Hosts); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}

	return &local, nil
}

// defaultLocalConfig is the template for gitlink config init --local
const defaultLocalConfig = `# gitlink local config (per-repo overrides)
# Place this file at the root of the work tree.
# Settings here override the global ~/.config/gitlink/config.toml for this repo only.

# provider_type = "gitlab"
# use_commit_sha = true
# default_pull_request_branch = "main"
# always_open_in_default_branch = false

# Host mappings are merged with the global ones
# [hosts]
# "code.company.com" = "gitlab"
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}

// InitLocal creates a .gitlink.toml template in the given work tree.
// Returns the path to the created file
func InitLocal(repoPath string, force bool) (string, error) {
	path := filepath.Join(repoPath, LocalConfigFileName)
	return path, writeTemplate(path, defaultLocalConfig, force)
}
