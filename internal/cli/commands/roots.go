package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gtl/internal/config"
	"gtl/internal/domain"
	"gtl/internal/ui"
)

// RootsCommand handles the roots command
type RootsCommand struct {
	config    *config.Config
	factory   BuilderFactory
	formatter *ui.Formatter
}

// NewRootsCommand creates a new RootsCommand
func NewRootsCommand(cfg *config.Config, factory BuilderFactory, formatter *ui.Formatter) *RootsCommand {
	return &RootsCommand{
		config:    cfg,
		factory:   factory,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RootsCommand) Execute(cmd *cobra.Command, args []string) error {
	opts := rc.config.Options(nil)
	opts.RunAllTests = true

	request, err := rc.factory.NewBuilder(newLogger(cmd, rc.config), nil).Build(opts)
	if err != nil {
		return wrapBuildError(err)
	}

	var roots []string
	for _, selector := range request.Selectors() {
		if root, ok := selector.(domain.ClasspathRootSelector); ok {
			roots = append(roots, root.Root)
		}
	}

	if len(roots) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No classpath roots found")
		return nil
	}

	rc.formatter.PrintRoots(cmd.OutOrStdout(), roots)
	return nil
}
