package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"fpt/internal/cli"
	"fpt/internal/config"
	"fpt/internal/lessons"
	"fpt/internal/lessons/solutions"
	"fpt/internal/migration"
	"fpt/internal/storage"
)

// ErrRunFailed is returned by run when a test case failed. The failure has
// been reported already, so main only sets the exit code.
var ErrRunFailed = errors.New("run stopped at a failing test case")

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
	History  *HistoryCommand
	Migrate  *MigrateCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	jsonStorage := storage.NewJSONStorage(cfg)
	dbManager := migration.NewDatabaseManager(cfg)

	return &Commands{
		Run:      NewRunCommand(cfg, jsonStorage, dbManager, lessons.Register, solutions.Install),
		List:     NewListCommand(cfg, jsonStorage, lessons.Register),
		Failures: NewFailuresCommand(cfg, jsonStorage),
		History:  NewHistoryCommand(cfg, dbManager),
		Migrate:  NewMigrateCommand(cfg, dbManager),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Update config with flags after parsing
	loadConfig := func(cmd *cobra.Command, args []string) error {
		return load(cfg, flags)
	}

	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", config.DefaultConfigFile, "Path to the YAML config file")

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the course",
		Long:    "Run every section of the course in order and stop at the first failing test case",
		RunE:    c.Run.Execute,
		PreRunE: loadConfig,
	}
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Run only sections or test cases matching a pattern (supports wildcards, e.g. '*array*')")
	runCmd.Flags().IntVarP(&flags.TraceDepth, "trace-depth", "d", 0, "Number of stack frames shown under a failure")
	runCmd.Flags().BoolVar(&flags.Solutions, "solutions", false, "Fill in the reference solutions before running")
	runCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Do not show the course progress bar")
	runCmd.Flags().BoolVar(&flags.NoHistory, "no-history", false, "Do not record this run in the history database")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List the sections of the course",
		Long:    "List sections, and optionally their test cases, marking the one that failed in the last run",
		RunE:    c.List.Execute,
		PreRunE: loadConfig,
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "List only sections or test cases matching a pattern")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List test cases under each section")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View the last run interactively",
		Long:    "Browse the test cases of the last run, starting at the failed one, in an interactive viewer",
		RunE:    c.Failures.Execute,
		PreRunE: loadConfig,
	}
	rootCmd.AddCommand(failuresCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:     "history",
		Short:   "Show past runs",
		Long:    "Show runs recorded in the history database, newest first",
		RunE:    c.History.Execute,
		PreRunE: loadConfig,
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", config.DefaultHistoryLimit, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)

	// Migrate command
	migrateCmd := &cobra.Command{
		Use:     "migrate",
		Short:   "Create the history database schema",
		Long:    "Create the history database if needed and apply pending schema migrations",
		RunE:    c.Migrate.Execute,
		PreRunE: loadConfig,
	}
	rootCmd.AddCommand(migrateCmd)
}

// load rebuilds cfg from defaults, the config file, the environment and flags
func load(cfg *config.Config, flags *cli.Flags) error {
	loaded, err := config.Load(flags.ConfigFile, flags.ToConfigFlags())
	if err != nil {
		return err
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	*cfg = *loaded
	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
