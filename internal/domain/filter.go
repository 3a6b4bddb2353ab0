package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// FilterKind identifies the variant of a Filter
type FilterKind string

const (
	FilterIncludeClassName FilterKind = "include-classname"
	FilterIncludeTags      FilterKind = "include-tags"
	FilterExcludeTags      FilterKind = "exclude-tags"
	FilterIncludeEngines   FilterKind = "include-engines"
	FilterExcludeEngines   FilterKind = "exclude-engines"
)

// Filter narrows what a test engine reports for the selected tests.
// A request carries at most one filter per kind.
type Filter interface {
	Kind() FilterKind
	String() string
	filter()
}

// FilterMode tells whether a filter keeps or drops what it matches
type FilterMode int

const (
	Include FilterMode = iota
	Exclude
)

func (m FilterMode) String() string {
	if m == Exclude {
		return "exclude"
	}
	return "include"
}

// NamePatternFilter keeps tests whose type name matches a regular expression
type NamePatternFilter struct {
	pattern *regexp.Regexp
}

// NewNamePatternFilter compiles pattern into a NamePatternFilter
func NewNamePatternFilter(pattern string) (NamePatternFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return NamePatternFilter{}, fmt.Errorf("invalid class name pattern %q: %w", pattern, err)
	}
	return NamePatternFilter{pattern: re}, nil
}

// Pattern returns the source text of the regular expression
func (f NamePatternFilter) Pattern() string {
	if f.pattern == nil {
		return ""
	}
	return f.pattern.String()
}

// Matches reports whether a fully qualified type name passes the filter
func (f NamePatternFilter) Matches(typeName string) bool {
	return f.pattern != nil && f.pattern.MatchString(typeName)
}

func (f NamePatternFilter) Kind() FilterKind { return FilterIncludeClassName }
func (f NamePatternFilter) String() string {
	return fmt.Sprintf("%s(%s)", FilterIncludeClassName, f.Pattern())
}
func (NamePatternFilter) filter() {}

// TagFilter keeps or drops tests carrying any of the given tags
type TagFilter struct {
	Mode FilterMode
	tags []string
}

// IncludeTags creates a filter keeping tests tagged with any of tags
func IncludeTags(tags []string) TagFilter {
	return TagFilter{Mode: Include, tags: normalizeSet(tags)}
}

// ExcludeTags creates a filter dropping tests tagged with any of tags
func ExcludeTags(tags []string) TagFilter {
	return TagFilter{Mode: Exclude, tags: normalizeSet(tags)}
}

// Tags returns a copy of the filter's tags, sorted
func (f TagFilter) Tags() []string {
	return append([]string(nil), f.tags...)
}

func (f TagFilter) Kind() FilterKind {
	if f.Mode == Exclude {
		return FilterExcludeTags
	}
	return FilterIncludeTags
}
func (f TagFilter) String() string {
	return fmt.Sprintf("%s(%s)", f.Kind(), strings.Join(f.tags, ","))
}
func (TagFilter) filter() {}

// EngineFilter keeps or drops whole test engines by identifier
type EngineFilter struct {
	Mode    FilterMode
	engines []string
}

// IncludeEngines creates a filter keeping only the given engines
func IncludeEngines(engines []string) EngineFilter {
	return EngineFilter{Mode: Include, engines: normalizeSet(engines)}
}

// ExcludeEngines creates a filter dropping the given engines
func ExcludeEngines(engines []string) EngineFilter {
	return EngineFilter{Mode: Exclude, engines: normalizeSet(engines)}
}

// Engines returns a copy of the filter's engine identifiers, sorted
func (f EngineFilter) Engines() []string {
	return append([]string(nil), f.engines...)
}

func (f EngineFilter) Kind() FilterKind {
	if f.Mode == Exclude {
		return FilterExcludeEngines
	}
	return FilterIncludeEngines
}
func (f EngineFilter) String() string {
	return fmt.Sprintf("%s(%s)", f.Kind(), strings.Join(f.engines, ","))
}
func (EngineFilter) filter() {}

// normalizeSet removes duplicates and sorts, so equal sets compare equal
func normalizeSet(values []string) []string {
	seen := make(map[string]bool, len(values))
	set := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		set = append(set, v)
	}
	sort.Strings(set)
	return set
}
