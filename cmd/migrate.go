package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:       "migrate <up|down|status|version|reset>",
	Short:     "Manage the catalog database schema",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"up", "down", "status", "version", "reset"},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStorage()
		if err != nil {
			return err
		}
		defer store.Close()

		switch args[0] {
		case "up":
			if err := store.RunMigrations(); err != nil {
				return fmt.Errorf("failed to run migrations: %v", err)
			}
			fmt.Fprintln(os.Stdout, "Migrations completed successfully")

		case "down":
			if err := store.RollbackMigration(); err != nil {
				return fmt.Errorf("failed to rollback migration: %v", err)
			}
			fmt.Fprintln(os.Stdout, "Migration rolled back successfully")

		case "status":
			migrationManager := store.GetMigrationManager()
			if err := migrationManager.Initialize(); err != nil {
				return fmt.Errorf("failed to initialize migration manager: %v", err)
			}
			if err := migrationManager.Status(); err != nil {
				return fmt.Errorf("failed to get migration status: %v", err)
			}

		case "version":
			version, err := store.GetDatabaseVersion()
			if err != nil {
				return fmt.Errorf("failed to get database version: %v", err)
			}
			fmt.Fprintf(os.Stdout, "Database version: %d\n", version)

		case "reset":
			if err := store.ResetDatabase(); err != nil {
				return fmt.Errorf("failed to reset database: %v", err)
			}
			fmt.Fprintln(os.Stdout, "Database reset completed successfully")

		default:
			return fmt.Errorf("unknown command %q (available: up, down, status, version, reset)", args[0])
		}

		return nil
	},
}
