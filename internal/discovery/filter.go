package discovery

import "strings"

// Filter admits test-case identifiers by selector
type Filter struct {
	selector string
}

// NewFilter creates a new Filter for the given selector
func NewFilter(selector string) *Filter {
	return &Filter{selector: selector}
}

// Accept reports whether id contains the selector. An empty selector admits
// nothing: a run only executes types when a selector is configured.
func (f *Filter) Accept(id string) bool {
	return f.selector != "" && strings.Contains(id, f.selector)
}
