package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gtl/internal/config"
	"gtl/internal/storage"
	"gtl/internal/ui"
)

// ShowCommand handles the show command
type ShowCommand struct {
	config    *config.Config
	formatter *ui.Formatter
	storage   storage.Storage
	viewer    ui.Viewer
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(cfg *config.Config, formatter *ui.Formatter, st storage.Storage, viewer ui.Viewer) *ShowCommand {
	return &ShowCommand{
		config:    cfg,
		formatter: formatter,
		storage:   st,
		viewer:    viewer,
	}
}

// Execute runs the command
func (sc *ShowCommand) Execute(cmd *cobra.Command, args []string) error {
	saved, err := sc.storage.Load()
	if err != nil {
		return err
	}

	if sc.config.Flags.Interactive {
		return sc.viewer.View(saved)
	}

	request, err := saved.Request.ToRequest()
	if err != nil {
		return fmt.Errorf("load request %s: %w", saved.ID, err)
	}
	return sc.formatter.PrintRequest(cmd.OutOrStdout(), request)
}
