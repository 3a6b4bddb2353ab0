package domain

import "path/filepath"

// RootSet is an insertion ordered set of filesystem roots.
// Paths are compared after filepath.Clean.
type RootSet struct {
	paths []string
	seen  map[string]bool
}

// NewRootSet creates a RootSet holding paths
func NewRootSet(paths ...string) *RootSet {
	s := &RootSet{seen: make(map[string]bool)}
	s.Add(paths...)
	return s
}

// Add appends the paths not already present
func (s *RootSet) Add(paths ...string) {
	for _, p := range paths {
		p = filepath.Clean(p)
		if s.seen[p] {
			continue
		}
		s.seen[p] = true
		s.paths = append(s.paths, p)
	}
}

// Paths returns the roots in insertion order
func (s *RootSet) Paths() []string {
	return append([]string(nil), s.paths...)
}

// Len returns the number of roots
func (s *RootSet) Len() int {
	return len(s.paths)
}
