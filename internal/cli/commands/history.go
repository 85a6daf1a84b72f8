package commands

import (
	"github.com/spf13/cobra"

	"fpt/internal/config"
	"fpt/internal/migration"
	"fpt/internal/storage"
	"fpt/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	dbManager *migration.DatabaseManager
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, dbManager *migration.DatabaseManager) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		dbManager: dbManager,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := contextOf(cmd)

	db, err := hc.dbManager.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := migration.NewSchemaMigrator(db).Run(ctx); err != nil {
		return err
	}

	records, err := storage.NewSQLHistory(db).Recent(ctx, hc.config.Flags.Limit)
	if err != nil {
		return err
	}

	ui.NewFormatter(cmd.OutOrStdout()).PrintHistory(records)
	return nil
}
