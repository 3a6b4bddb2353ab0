package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"gtl/internal/classpath"
	"gtl/internal/cli"
	"gtl/internal/config"
	"gtl/internal/discovery"
	"gtl/internal/execution"
	"gtl/internal/logging"
	"gtl/internal/storage"
	"gtl/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Discover *DiscoverCommand
	Roots    *RootsCommand
	Show     *ShowCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	formatter := ui.NewFormatter(cfg)
	jsonStorage := storage.NewJSONStorage(cfg)
	viewer := ui.NewRequestViewer(cfg)
	factory := &builderFactory{config: cfg}

	return &Commands{
		Discover: NewDiscoverCommand(cfg, factory, formatter, jsonStorage, viewer),
		Roots:    NewRootsCommand(cfg, factory, formatter),
		Show:     NewShowCommand(cfg, formatter, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Config is loaded from the working directory once flags are known
	loadConfig := func(cmd *cobra.Command, args []string) error {
		dir := flags.WorkDir
		if dir == "" {
			dir = config.DefaultWorkDir
		}
		loaded, err := config.Load(dir)
		if err != nil {
			return err
		}
		*cfg = *loaded
		cfg.ApplyFlags(flags.ToConfigFlags())
		return cfg.Validate()
	}

	rootCmd.PersistentFlags().StringVarP(&flags.WorkDir, "dir", "C", "", "Directory to resolve packages and modules from")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log resolution details to stderr")

	// Discover command
	discoverCmd := &cobra.Command{
		Use:   "discover [names...]",
		Short: "Build a discovery request from names",
		Long: `Resolve each name to a selector and print the resulting discovery request.

A name is tried, in order, as a named type ("example.com/acme/widget.Widget"),
a method of a named type ("example.com/acme/widget.Widget#Parse") and a package
("example.com/acme/widget"). With --scan-classpath the names are taken as root
directories instead; without names every module root is scanned.`,
		RunE:    c.Discover.Execute,
		PreRunE: loadConfig,
	}
	discoverCmd.Flags().BoolVarP(&flags.ScanClasspath, "scan-classpath", "a", false, "Select all tests reachable from the classpath roots")
	discoverCmd.Flags().StringArrayVar(&flags.ClasspathEntries, "classpath", nil, "Additional classpath roots, path-list separated (repeatable)")
	discoverCmd.Flags().StringVarP(&flags.IncludeClassname, "include-classname", "n", "", "Only include types whose fully qualified name matches this regular expression")
	discoverCmd.Flags().StringSliceVarP(&flags.IncludeTags, "include-tag", "t", nil, "Only include tests carrying one of these tags")
	discoverCmd.Flags().StringSliceVarP(&flags.ExcludeTags, "exclude-tag", "T", nil, "Exclude tests carrying one of these tags")
	discoverCmd.Flags().StringSliceVarP(&flags.IncludeEngines, "include-engine", "e", nil, "Only run these test engines")
	discoverCmd.Flags().StringSliceVarP(&flags.ExcludeEngines, "exclude-engine", "E", nil, "Do not run these test engines")
	discoverCmd.Flags().IntVarP(&flags.Processors, "processors", "p", 0, "Number of workers resolving names")
	discoverCmd.Flags().StringVarP(&flags.Format, "format", "f", "", "Output format: text, json or yaml")
	discoverCmd.Flags().BoolVar(&flags.Save, "save", false, "Save the request for the show command")
	discoverCmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Browse the request in an interactive viewer")
	rootCmd.AddCommand(discoverCmd)

	// Roots command
	rootsCmd := &cobra.Command{
		Use:     "roots",
		Short:   "List classpath root directories",
		Long:    "List the module roots that --scan-classpath would scan, with their test file counts",
		Args:    cobra.NoArgs,
		RunE:    c.Roots.Execute,
		PreRunE: loadConfig,
	}
	rootsCmd.Flags().StringArrayVar(&flags.ClasspathEntries, "classpath", nil, "Additional classpath roots, path-list separated (repeatable)")
	rootCmd.AddCommand(rootsCmd)

	// Show command
	showCmd := &cobra.Command{
		Use:     "show",
		Short:   "Show the last saved discovery request",
		Long:    "Print or interactively browse the request saved by 'discover --save'",
		Args:    cobra.NoArgs,
		RunE:    c.Show.Execute,
		PreRunE: loadConfig,
	}
	showCmd.Flags().StringVarP(&flags.Format, "format", "f", "", "Output format: text, json or yaml")
	showCmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Browse the request in an interactive viewer")
	rootCmd.AddCommand(showCmd)
}

// BuilderFactory creates request builders for the current configuration
type BuilderFactory interface {
	NewBuilder(logger *log.Logger, progress execution.Progress) *discovery.RequestBuilder
}

// builderFactory wires the go tool backed classpath into a RequestBuilder
type builderFactory struct {
	config *config.Config
}

// NewBuilder creates a RequestBuilder loading packages from the configured working directory
func (f *builderFactory) NewBuilder(logger *log.Logger, progress execution.Progress) *discovery.RequestBuilder {
	dir := f.config.GetWorkDir()
	loader := classpath.NewLoader(dir, nil, logger)

	pool := execution.NewWorkerPool(f.config.Processors, execution.NewRoundRobinScheduler())
	if progress != nil {
		pool.SetProgress(progress)
	}

	return discovery.NewRequestBuilder(
		func() discovery.Classpath { return loader.Snapshot() },
		classpath.NewModuleRoots(dir, logger),
		classpath.NewEntriesParser(),
		discovery.WithPool(pool),
		discovery.WithLogger(logger),
	)
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *log.Logger {
	return logging.New(cmd.ErrOrStderr(), cfg.Verbose)
}

func wrapBuildError(err error) error {
	return fmt.Errorf("build discovery request: %w", err)
}
