package forge

import (
	"fmt"
	"sort"
	"strings"
)

type binding struct {
	kind    Kind
	domains []string
}

// providerTable returns the ordered domain bindings for opts.
func providerTable(opts Options) []binding {
	table := []binding{
		{GitHub, []string{opts.GitHubDomain}},
		{Bitbucket, []string{"bitbucket.org"}},
		{GitLab, []string{"gitlab.com"}},
		{VisualStudio, []string{"visualstudio.com", "dev.azure.com", "ssh.dev.azure.com"}},
		{Gitea, []string{opts.GiteaDomain}},
	}

	domains := make([]string, 0, len(opts.Hosts))
	for domain := range opts.Hosts {
		domains = append(domains, domain)
	}
	sort.Strings(domains)
	for _, domain := range domains {
		if kind, ok := ParseKind(opts.Hosts[domain]); ok {
			table = append(table, binding{kind, []string{domain}})
		}
	}

	return append(table, binding{kind: Custom})
}

// Detect returns the provider kind for host. The provider_type alias is
// checked against each entry in the same pass as the host match.
func Detect(host string, opts Options) (Kind, bool) {
	host = strings.ToLower(host)
	alias := strings.ToLower(strings.TrimSpace(opts.ProviderType))
	if alias == "unknown" {
		alias = ""
	}

	for _, b := range providerTable(opts) {
		for _, domain := range b.domains {
			if hostMatches(host, domain) {
				return b.kind, true
			}
		}
		if alias != "" && strings.Contains(string(b.kind), alias) {
			return b.kind, true
		}
	}
	return "", false
}

// Resolve parses remoteURL and binds it to the matching provider.
func Resolve(remoteURL, commit string, opts Options) (*Forge, error) {
	remote, err := ParseRemote(remoteURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownProvider, err)
	}

	kind, ok := Detect(remote.Host, opts)
	if !ok {
		return nil, fmt.Errorf("%w: %s (set provider_type or add the host to [hosts])", ErrUnknownProvider, remote.Host)
	}
	return New(kind, remote, commit, opts), nil
}

// hostMatches reports whether host equals domain or is a sub-domain of it.
func hostMatches(host, domain string) bool {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return false
	}
	return host == domain || strings.HasSuffix(host, "."+domain)
}
