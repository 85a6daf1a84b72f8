package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fpt/internal/config"
	"fpt/internal/storage"
	"fpt/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  func(cmd *cobra.Command) ui.Viewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(cfg *config.Config, st storage.Storage) *FailuresCommand {
	return &FailuresCommand{
		config:  cfg,
		storage: st,
		viewer: func(cmd *cobra.Command) ui.Viewer {
			root, _ := os.Getwd()
			return ui.NewErrorViewer(cmd.OutOrStdout(), root)
		},
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := fc.storage.Load()
	if err != nil {
		return fmt.Errorf("no previous run found, run the course first: %w", err)
	}

	return fc.viewer(cmd).View(results)
}
