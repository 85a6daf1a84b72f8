package filter

import (
	"path"
	"strings"

	"fpt/internal/domain"
)

// Filter narrows the registered groups down to the ones a learner asked for
type Filter struct {
	pattern string
}

// New creates a Filter for pattern. Matching ignores case.
func New(pattern string) *Filter {
	return &Filter{pattern: strings.ToLower(strings.TrimSpace(pattern))}
}

// Select is a shorthand for New(pattern).Apply(groups).
func Select(groups []domain.Group, pattern string) []domain.Group {
	return New(pattern).Apply(groups)
}

// Apply keeps every group whose name matches together with all of its
// cases. In other groups only matching cases are kept, and groups left
// without cases are dropped. Order is preserved.
func (f *Filter) Apply(groups []domain.Group) []domain.Group {
	if f.pattern == "" {
		return groups
	}

	var selected []domain.Group
	for _, g := range groups {
		if f.Match(g.Name) {
			selected = append(selected, g)
			continue
		}

		var cases []domain.TestCase
		for _, tc := range g.Cases {
			if f.Match(tc.Name) {
				cases = append(cases, tc)
			}
		}
		if len(cases) > 0 {
			selected = append(selected, domain.Group{Name: g.Name, Cases: cases})
		}
	}
	return selected
}

// Match reports whether name matches the pattern using wildcard matching.
// Supports patterns like "*array*" or "get?ing started", and plain substrings.
func (f *Filter) Match(name string) bool {
	if f.pattern == "" {
		return true
	}
	name = strings.ToLower(name)

	// Try to match using path.Match (supports * and ? wildcards)
	if matched, err := path.Match(f.pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(f.pattern, "*?") {
		return strings.Contains(name, f.pattern)
	}

	// "*Partial*" style patterns: every literal part must appear, in order
	parts := strings.Split(f.pattern, "*")
	rest := name
	found := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		if strings.Contains(part, "?") {
			return false
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
		found = true
	}
	return found
}
