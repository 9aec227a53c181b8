package commands

import (
	"database/sql"
	"fmt"
	"os"

	"monetrix-dashboard/internal/database"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var migrationsPath string
	var seedsPath string
	var rollback int
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply SQL migrations to the snapshot store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			setupLogger(os.Stderr, cfg.Server)

			db, err := sql.Open("postgres", cfg.Database.URL())
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer db.Close()

			runner := database.NewMigrationRunner(db,
				database.WithMigrationsPath(migrationsPath),
				database.WithSeedsPath(seedsPath),
			)
			if err := runner.WaitForDatabase(cmd.Context()); err != nil {
				return err
			}

			switch {
			case status:
				version, dirty, err := runner.GetMigrationStatus()
				if err != nil {
					return fmt.Errorf("reading migration status: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d, dirty %t\n", version, dirty)
				return nil
			case rollback > 0:
				return runner.Rollback(rollback)
			}

			if err := runner.RunMigrations(); err != nil {
				return err
			}
			return runner.LoadSeeds()
		},
	}

	cmd.Flags().StringVar(&migrationsPath, "path", database.DefaultMigrationsPath, "migrations directory")
	cmd.Flags().StringVar(&seedsPath, "seeds", database.DefaultSeedsPath, "seed files directory (applied when SEED_DATABASE=true)")
	cmd.Flags().IntVar(&rollback, "rollback", 0, "revert this many migrations instead of applying")
	cmd.Flags().BoolVar(&status, "status", false, "print the current migration version and exit")

	return cmd
}
