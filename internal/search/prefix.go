package search

import "strings"

// PrefixProvider matches when the candidate starts with the query.
type PrefixProvider struct {
	opts Options
}

// NewPrefixProvider creates a new prefix search provider.
func NewPrefixProvider(opts ...Option) Provider {
	return &PrefixProvider{opts: applyOptions(opts)}
}

// Match returns true if candidate starts with query.
func (p *PrefixProvider) Match(candidate, query string) bool {
	if query == "" {
		return true
	}
	if p.opts.CaseInsensitive {
		candidate = strings.ToLower(candidate)
		query = strings.ToLower(query)
	}
	return strings.HasPrefix(candidate, query)
}

// Name returns the provider name.
func (p *PrefixProvider) Name() string {
	return "prefix"
}
