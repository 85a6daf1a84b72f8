package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"fpt/internal/config"
	"fpt/internal/domain"
	"fpt/internal/execution"
	"fpt/internal/filter"
	"fpt/internal/migration"
	"fpt/internal/registry"
	"fpt/internal/storage"
	"fpt/internal/trace"
	"fpt/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	storage   storage.Storage
	dbManager *migration.DatabaseManager
	register  func(*registry.Registry)
	install   func()
}

// NewRunCommand creates a new RunCommand. register adds the test groups to
// run; install fills in the reference solutions for --solutions.
func NewRunCommand(
	cfg *config.Config,
	st storage.Storage,
	dbManager *migration.DatabaseManager,
	register func(*registry.Registry),
	install func(),
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		storage:   st,
		dbManager: dbManager,
		register:  register,
		install:   install,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if rc.config.Flags.Solutions && rc.install != nil {
		rc.install()
	}

	reg := registry.New()
	rc.register(reg)

	groups := filter.Select(reg.Groups(), rc.config.Flags.Filter)
	if len(groups) == 0 {
		color.New(color.FgYellow).Fprintf(out, "No test cases match %q\n", rc.config.Flags.Filter)
		return nil
	}

	root, err := os.Getwd()
	if err != nil {
		root = ""
	}
	policy := trace.DefaultPolicy(rc.config.TraceDepth, rc.config.HideFrames...)
	runner := execution.NewRunner(ui.NewReporter(out, errOut, root), policy)

	result := runner.Execute(groups)

	if rc.config.Progress {
		passed := result.PassedCount()
		bar := ui.NewProgressBar(result.Total, errOut)
		bar.Update(passed, len(result.Cases)-passed)
		bar.Finish()
	}

	// Save results
	if err := rc.storage.Save(result); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	if rc.config.History.Enabled() {
		if err := rc.record(contextOf(cmd), result); err != nil {
			color.New(color.FgYellow).Fprintf(errOut, "Warning: run not recorded in history: %v\n", err)
		}
	}

	ui.NewFormatter(out).PrintRunSummary(domain.NewRunOutput(result))

	if !result.Passed() {
		return ErrRunFailed
	}
	return nil
}

// record stores the run in the history database, applying pending
// migrations first.
func (rc *RunCommand) record(ctx context.Context, result domain.RunResult) error {
	db, err := rc.dbManager.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := migration.NewSchemaMigrator(db).Run(ctx); err != nil {
		return err
	}
	return storage.NewSQLHistory(db).Record(ctx, domain.NewRunRecord(uuid.NewString(), result))
}
