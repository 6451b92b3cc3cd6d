package main

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/pkordes/hostel-desk/internal/config"
	"github.com/pkordes/hostel-desk/internal/database"
	"github.com/pkordes/hostel-desk/migrations"
)

var errLegacySchema = errors.New("the mysql legacy schema is managed by the desktop application, not by migrations")

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or list the database migrations",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "up"
			if len(args) == 1 {
				action = args[0]
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DatabaseDriver == database.DriverMySQL {
				return errLegacySchema
			}

			db, err := sql.Open("pgx", cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("migrate: open: %w", err)
			}
			defer db.Close()

			provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			ctx := cmd.Context()
			switch action {
			case "down":
				res, err := provider.Down(ctx)
				if err != nil {
					return fmt.Errorf("migrate down: %w", err)
				}
				c.logger.Info("migration rolled back", "version", res.Source.Version, "duration", res.Duration)
			case "status":
				statuses, err := provider.Status(ctx)
				if err != nil {
					return fmt.Errorf("migrate status: %w", err)
				}
				for _, s := range statuses {
					fmt.Fprintf(c.out, "%05d  %-8s  %s\n", s.Source.Version, s.State, s.Source.Path)
				}
			default:
				results, err := provider.Up(ctx)
				if err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
				for _, r := range results {
					c.logger.Info("migration applied", "version", r.Source.Version, "duration", r.Duration)
				}
				if len(results) == 0 {
					c.logger.Info("database already up to date")
				}
			}
			return nil
		},
	}
}
