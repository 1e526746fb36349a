package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/gitlink/internal/forge"
)

// Valid enum values for configuration fields.
var (
	ValidProtocols = []string{"http", "https"}
	ValidFormats   = []string{"toml", "json", "yaml"}
)

// ProviderNames returns the names accepted by provider_type and [hosts].
func ProviderNames() []string {
	kinds := forge.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// ValidateFormat validates an output format value against ValidFormats.
// Exported for use in CLI flag validation.
func ValidateFormat(format string) error {
	return validateEnum(format, "format", ValidFormats)
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s%s", field, value, formatOptions(allowed), suggest(value, allowed))
	}
	return nil
}

// validateProviderType accepts "unknown" or any substring of a provider name.
func validateProviderType(value string) error {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" || v == DefaultProviderType {
		return nil
	}
	names := ProviderNames()
	for _, name := range names {
		if strings.Contains(name, v) {
			return nil
		}
	}
	return fmt.Errorf("invalid provider_type %q: must be %q or %s%s",
		value, DefaultProviderType, formatOptions(names), suggest(v, names))
}

// validateHosts checks that every [hosts] value names a provider.
func validateHosts(hosts map[string]string) error {
	names := ProviderNames()
	domains := make([]string, 0, len(hosts))
	for domain := range hosts {
		domains = append(domains, domain)
	}
	slices.Sort(domains)

	for _, domain := range domains {
		kind := hosts[domain]
		if _, ok := forge.ParseKind(kind); !ok {
			return fmt.Errorf("invalid provider %q for host %q: must be %s%s",
				kind, domain, formatOptions(names), suggest(strings.ToLower(kind), names))
		}
	}
	return nil
}

// suggest returns a " (did you mean ...?)" hint for the closest option.
func suggest(value string, options []string) string {
	matches := fuzzy.Find(value, options)
	if len(matches) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", matches[0].Str)
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
