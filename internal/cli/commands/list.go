package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fpt/internal/config"
	"fpt/internal/filter"
	"fpt/internal/registry"
	"fpt/internal/storage"
	"fpt/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config   *config.Config
	storage  storage.Storage
	register func(*registry.Registry)
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, st storage.Storage, register func(*registry.Registry)) *ListCommand {
	return &ListCommand{
		config:   cfg,
		storage:  st,
		register: register,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	reg := registry.New()
	lc.register(reg)

	groups := filter.Select(reg.Groups(), lc.config.Flags.Filter)
	if len(groups) == 0 {
		color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "No sections found\n")
		return nil
	}

	// The last run only adds [F] markers, so a missing file is fine
	last, _ := lc.storage.Load()

	ui.NewFormatter(cmd.OutOrStdout()).PrintCourse(groups, lc.config.Flags.TestCases, last)
	return nil
}
