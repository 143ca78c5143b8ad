package config

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Filter selects tests by name, mirroring the runner-side GREP filter. An
// empty pattern matches everything. A pattern without glob metacharacters is
// treated as a substring match, which is what people reaching for GREP
// usually mean.
type Filter struct {
	pattern string
	matcher glob.Glob
}

// NewFilter compiles a GREP pattern into a Filter.
func NewFilter(pattern string) (*Filter, error) {
	f := &Filter{pattern: pattern}
	if pattern == "" {
		return f, nil
	}

	if !hasGlobMeta(pattern) {
		pattern = "*" + pattern + "*"
	}
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid GREP pattern %q: %w", f.pattern, err)
	}
	f.matcher = matcher
	return f, nil
}

// Filter built from the config's Grep field.
func (c *Config) Filter() (*Filter, error) {
	return NewFilter(c.Grep)
}

// Matches reports whether a test name passes the filter.
func (f *Filter) Matches(name string) bool {
	if f.matcher == nil {
		return true
	}
	return f.matcher.Match(name)
}

// Pattern returns the original pattern the filter was built from.
func (f *Filter) Pattern() string { return f.pattern }

func hasGlobMeta(p string) bool {
	for _, r := range p {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
