package git

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// Section is one [name "subsection"] block of a git config file.
type Section struct {
	Name       string            // lower-cased section name, e.g. "remote"
	Subsection string            // case-sensitive subsection, e.g. "origin"; empty for plain sections
	Values     map[string]string // lower-cased key -> value
}

// ID returns the section identifier as written in the file, e.g. `remote "origin"`.
func (s Section) ID() string {
	if s.Subsection == "" {
		return s.Name
	}
	return s.Name + " " + strconv.Quote(s.Subsection)
}

// RepoConfig is a parsed git config file. Sections keep declaration order.
// It is read-only after load.
type RepoConfig struct {
	sections []Section
}

// LoadConfig reads and parses the git config file at path.
func LoadConfig(path string) (*RepoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigUnreadable, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses git config content.
func ParseConfig(data []byte) (*RepoConfig, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		AllowBooleanKeys:          true, // "bare" style keys without a value
		UnescapeValueDoubleQuotes: true,
		KeyValueDelimiters:        "=",
	}, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigUnreadable, err)
	}

	cfg := &RepoConfig{}
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		name, sub := splitSectionID(sec.Name())

		target := cfg.find(name, sub)
		if target == nil {
			cfg.sections = append(cfg.sections, Section{Name: name, Subsection: sub, Values: map[string]string{}})
			target = &cfg.sections[len(cfg.sections)-1]
		}
		for _, key := range sec.Keys() {
			target.Values[strings.ToLower(key.Name())] = key.Value()
		}
	}
	return cfg, nil
}

// splitSectionID splits `remote "origin"` into ("remote", "origin").
// The deprecated [branch.main] form is accepted as well.
func splitSectionID(id string) (name, sub string) {
	id = strings.TrimSpace(id)
	if i := strings.IndexAny(id, " \t"); i >= 0 {
		sub = strings.TrimSpace(id[i:])
		if unquoted, err := strconv.Unquote(sub); err == nil {
			sub = unquoted
		} else {
			sub = strings.Trim(sub, `"`)
		}
		return strings.ToLower(id[:i]), sub
	}
	if name, sub, ok := strings.Cut(id, "."); ok {
		return strings.ToLower(name), strings.ToLower(sub)
	}
	return strings.ToLower(id), ""
}

func (c *RepoConfig) find(name, sub string) *Section {
	for i := range c.sections {
		if c.sections[i].Name == name && c.sections[i].Subsection == sub {
			return &c.sections[i]
		}
	}
	return nil
}

// Sections returns all sections in declaration order.
func (c *RepoConfig) Sections() []Section {
	out := make([]Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// Section returns the key/value mapping for a section identifier such as
// `remote "origin"` or `core`.
func (c *RepoConfig) Section(id string) (map[string]string, bool) {
	name, sub := splitSectionID(id)
	s := c.find(name, sub)
	if s == nil {
		return nil, false
	}
	return s.Values, true
}

// Get returns the value of key in [section "subsection"].
func (c *RepoConfig) Get(section, subsection, key string) (string, bool) {
	s := c.find(strings.ToLower(section), subsection)
	if s == nil {
		return "", false
	}
	v, ok := s.Values[strings.ToLower(key)]
	return v, ok
}

// Subsections returns the subsection names of section in declaration order,
// e.g. all remote names for "remote".
func (c *RepoConfig) Subsections(section string) []string {
	section = strings.ToLower(section)
	var names []string
	for _, s := range c.sections {
		if s.Name == section && s.Subsection != "" {
			names = append(names, s.Subsection)
		}
	}
	return names
}
