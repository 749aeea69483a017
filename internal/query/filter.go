package query

import "github.com/cristianoliveira/alfred-hue/internal/search"

var autocompleteMatcher = search.NewSubstringProvider(search.WithCaseInsensitive(true))

// Filter keeps the items whose autocomplete key contains partial, ignoring case.
// Relative order is preserved; an empty partial keeps everything.
func Filter(items []Item, partial string) []Item {
	if partial == "" {
		return items
	}
	kept := make([]Item, 0, len(items))
	for _, it := range items {
		if autocompleteMatcher.Match(it.Autocomplete, partial) {
			kept = append(kept, it)
		}
	}
	return kept
}
