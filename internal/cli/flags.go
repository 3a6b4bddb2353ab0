package cli

import "gtl/internal/config"

// Flags holds command-line flags
type Flags struct {
	ScanClasspath    bool
	ClasspathEntries []string
	IncludeClassname string
	IncludeTags      []string
	ExcludeTags      []string
	IncludeEngines   []string
	ExcludeEngines   []string
	Processors       int
	WorkDir          string
	Format           string
	Save             bool
	Interactive      bool
	Verbose          bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ScanClasspath:    f.ScanClasspath,
		ClasspathEntries: f.ClasspathEntries,
		IncludeClassname: f.IncludeClassname,
		IncludeTags:      f.IncludeTags,
		ExcludeTags:      f.ExcludeTags,
		IncludeEngines:   f.IncludeEngines,
		ExcludeEngines:   f.ExcludeEngines,
		Processors:       f.Processors,
		WorkDir:          f.WorkDir,
		Format:           f.Format,
		Save:             f.Save,
		Interactive:      f.Interactive,
		Verbose:          f.Verbose,
	}
}
