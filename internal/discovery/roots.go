package discovery

import (
	"fmt"

	"gtl/internal/domain"
)

// RootLister lists the classpath root directories known to the runtime
type RootLister interface {
	ListRootDirectories() ([]string, error)
}

// EntriesParser turns additional classpath entries into root directories
type EntriesParser interface {
	ToDirectories(entries []string) []string
}

// determineRootDirectories picks the roots scanned when all tests are selected.
// Explicit arguments are taken as literal root paths and replace the runtime
// classpath; otherwise the runtime roots are extended with the additional entries.
func determineRootDirectories(opts domain.Options, roots RootLister, entries EntriesParser) (*domain.RootSet, error) {
	if opts.HasArguments() {
		return domain.NewRootSet(opts.Arguments...), nil
	}

	dirs, err := roots.ListRootDirectories()
	if err != nil {
		return nil, fmt.Errorf("list classpath roots: %w", err)
	}
	set := domain.NewRootSet(dirs...)
	if len(opts.AdditionalClasspathEntries) > 0 {
		set.Add(entries.ToDirectories(opts.AdditionalClasspathEntries)...)
	}
	return set, nil
}
