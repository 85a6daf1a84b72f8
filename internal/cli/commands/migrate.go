package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fpt/internal/config"
	"fpt/internal/migration"
)

// MigrateCommand handles the migrate command
type MigrateCommand struct {
	config    *config.Config
	dbManager *migration.DatabaseManager
}

// NewMigrateCommand creates a new MigrateCommand
func NewMigrateCommand(cfg *config.Config, dbManager *migration.DatabaseManager) *MigrateCommand {
	return &MigrateCommand{
		config:    cfg,
		dbManager: dbManager,
	}
}

// Execute runs the command
func (mc *MigrateCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := contextOf(cmd)

	if err := mc.dbManager.EnsureDatabase(ctx); err != nil {
		return err
	}

	db, err := mc.dbManager.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := migration.NewSchemaMigrator(db).Run(ctx)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Applied %d migration(s) to the %s history database\n",
		applied, mc.config.History.Driver)
	return nil
}
