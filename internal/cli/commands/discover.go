package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gtl/internal/config"
	"gtl/internal/domain"
	"gtl/internal/execution"
	"gtl/internal/storage"
	"gtl/internal/ui"
)

// progressThreshold is the number of names from which resolution progress is shown
const progressThreshold = 5

// DiscoverCommand handles the discover command
type DiscoverCommand struct {
	config    *config.Config
	factory   BuilderFactory
	formatter *ui.Formatter
	storage   storage.Storage
	viewer    ui.Viewer
}

// NewDiscoverCommand creates a new DiscoverCommand
func NewDiscoverCommand(
	cfg *config.Config,
	factory BuilderFactory,
	formatter *ui.Formatter,
	st storage.Storage,
	viewer ui.Viewer,
) *DiscoverCommand {
	return &DiscoverCommand{
		config:    cfg,
		factory:   factory,
		formatter: formatter,
		storage:   st,
		viewer:    viewer,
	}
}

// Execute runs the command
func (dc *DiscoverCommand) Execute(cmd *cobra.Command, args []string) error {
	opts := dc.config.Options(args)

	var progress execution.Progress
	if !opts.RunAllTests && len(args) >= progressThreshold && dc.config.GetFormat() == config.FormatText {
		progress = ui.NewProgressBar(len(args), cmd.ErrOrStderr())
	}

	builder := dc.factory.NewBuilder(newLogger(cmd, dc.config), progress)
	request, err := builder.Build(opts)
	if err != nil {
		return wrapBuildError(err)
	}

	var saved *domain.SavedRequest
	if dc.config.Flags.Save || dc.config.Flags.Interactive {
		saved, err = dc.storage.Save(request)
		if err != nil {
			return err
		}
	}

	if dc.config.Flags.Interactive {
		return dc.viewer.View(saved)
	}

	if err := dc.formatter.PrintRequest(cmd.OutOrStdout(), request); err != nil {
		return err
	}
	if saved != nil && dc.config.GetFormat() == config.FormatText {
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Saved request %s to %s\n", saved.ID, dc.config.GetOutputPath())
	}
	return nil
}
