package domain

// Options is the parsed, already validated command line input of a discovery run
type Options struct {
	Arguments                  []string // Names to select, or root paths when RunAllTests is set
	RunAllTests                bool     // Select everything reachable from the classpath roots
	AdditionalClasspathEntries []string // Extra root directories, path-list separated
	IncludeClassNamePattern    string   // Regular expression on type names; empty means absent
	IncludedTags               []string
	ExcludedTags               []string
	IncludedEngines            []string
	ExcludedEngines            []string
}

// HasArguments reports whether explicit names were supplied
func (o Options) HasArguments() bool {
	return len(o.Arguments) > 0
}
