package config

import "maps"

// MergeLocal merges a local per-repo config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global

	mergeString(&merged.GitHubDomain, local.GitHubDomain)
	mergeString(&merged.GiteaDomain, local.GiteaDomain)
	mergeString(&merged.ProviderType, local.ProviderType)
	mergeString(&merged.ProviderProtocol, local.ProviderProtocol)
	mergeString(&merged.DefaultPullRequestBranch, local.DefaultPullRequestBranch)
	mergeString(&merged.CustomBaseURL, local.CustomBaseURL)
	mergeString(&merged.CustomProviderPath, local.CustomProviderPath)
	mergeString(&merged.CustomBlobPath, local.CustomBlobPath)
	mergeString(&merged.CustomLinePrefix, local.CustomLinePrefix)
	mergeString(&merged.OpenCommand, local.OpenCommand)

	mergeBool(&merged.UseCommitSHA, local.UseCommitSHA)
	mergeBool(&merged.RequireSelectionForLines, local.RequireSelectionForLines)
	mergeBool(&merged.AlwaysOpenInDefaultBranch, local.AlwaysOpenInDefaultBranch)

	// Merge hosts by domain: local overrides/adds
	if len(local.Hosts) > 0 {
		merged.Hosts = make(map[string]string, len(global.Hosts)+len(local.Hosts))
		maps.Copy(merged.Hosts, global.Hosts)
		maps.Copy(merged.Hosts, local.Hosts)
	}

	return &merged
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func mergeBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
