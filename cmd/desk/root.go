package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkordes/hostel-desk/internal/app"
	"github.com/pkordes/hostel-desk/internal/config"
)

const appVersion = "1.0.0"

// cli carries what every subcommand shares.
type cli struct {
	out     io.Writer
	envFile string
	logger  *slog.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out, logger: slog.Default()}

	cmd := &cobra.Command{
		Use:          "desk",
		Short:        "Hostel front desk: room board, contracts and migrations",
		Version:      appVersion,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if err := config.LoadDotEnv(c.envFile); err != nil {
				return err
			}
			// The level is read before the full config so offline commands log too.
			c.logger = app.NewLogger(getenvDefault("LOG_LEVEL", "info"))
			slog.SetDefault(c.logger)
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "Read KEY=VALUE settings from this file when present")

	cmd.AddCommand(
		newBoardCmd(c),
		newContractCmd(c),
		newMigrateCmd(c),
	)
	return cmd
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
