package classpath

import (
	"path/filepath"

	"gtl/internal/domain"
)

// EntriesParser turns additional classpath entries into root directories
type EntriesParser struct{}

// NewEntriesParser creates a new EntriesParser
func NewEntriesParser() *EntriesParser {
	return &EntriesParser{}
}

// ToDirectories splits each entry on the OS path list separator and keeps
// the existing directories, in order and without duplicates
func (p *EntriesParser) ToDirectories(entries []string) []string {
	set := domain.NewRootSet()
	for _, entry := range entries {
		for _, path := range filepath.SplitList(entry) {
			if path == "" || !isDir(path) {
				continue
			}
			set.Add(path)
		}
	}
	return set.Paths()
}
