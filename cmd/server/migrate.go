package main

import (
	"fmt"

	"github.com/phrazzld/taskr-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

var migrateCommands = []string{
	postgres.MigrateUp,
	postgres.MigrateDown,
	postgres.MigrateStatus,
	postgres.MigrateVersion,
}

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status|version]",
		Short:     "Run database migrations",
		Long:      `Apply, roll back or inspect the embedded schema migrations. Defaults to "up".`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: migrateCommands,
		RunE:      runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := postgres.MigrateUp
	if len(args) == 1 {
		command = args[0]
	}

	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	db, err := openDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Error("failed to close database connection", "error", cerr)
		}
	}()

	if err := postgres.Migrate(ctx, db, command, log); err != nil {
		return fmt.Errorf("migrate %s failed: %w", command, err)
	}

	cmd.Printf("migrate %s completed\n", command)
	return nil
}
