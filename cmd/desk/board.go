package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/hostel-desk/internal/app"
	"github.com/pkordes/hostel-desk/internal/config"
	"github.com/pkordes/hostel-desk/internal/domain"
	"github.com/pkordes/hostel-desk/internal/export"
	"github.com/pkordes/hostel-desk/internal/render"
)

type boardOptions struct {
	search string
	width  int
	today  string
	page   int
	limit  int
	xlsx   string
	csv    bool
}

func newBoardCmd(c *cli) *cobra.Command {
	var o boardOptions

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the room status board",
		Long: "Load every room with its active stays and draw the colored board.\n" +
			"Blue: occupied. Yellow: departure within the warning window. Red: overdue.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoard(cmd, c, o)
		},
	}

	cmd.Flags().StringVarP(&o.search, "search", "s", "", "Show only rooms whose number or guest name contains this text")
	cmd.Flags().IntVar(&o.width, "width", 1078, "Width in pixels of the board surface; sets the number of columns")
	cmd.Flags().StringVar(&o.today, "today", "", "Classify as of this day (yyyy-mm-dd) instead of today")
	cmd.Flags().IntVar(&o.page, "page", 1, "Page to show")
	cmd.Flags().IntVar(&o.limit, "limit", 0, "Rooms per page (0 = all)")
	cmd.Flags().StringVar(&o.xlsx, "xlsx", "", "Write the whole board to this spreadsheet instead of drawing it")
	cmd.Flags().BoolVar(&o.csv, "csv", false, "Print the whole board as CSV instead of drawing it")
	return cmd
}

func runBoard(cmd *cobra.Command, c *cli, o boardOptions) error {
	clock, err := clockFor(o.today)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a, err := app.New(cmd.Context(), cfg, c.logger, clock)
	if err != nil {
		return err
	}
	defer a.Close()

	b, err := a.Board.LoadAll(cmd.Context())
	if err != nil {
		return err
	}

	switch {
	case o.xlsx != "":
		data, err := export.XLSX(b.Tiles())
		if err != nil {
			return err
		}
		if err := os.WriteFile(o.xlsx, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", o.xlsx, err)
		}
		c.logger.Info("board exported", "path", o.xlsx, "rooms", len(b.Rooms))
		return nil
	case o.csv:
		return export.WriteCSV(c.out, b.Tiles())
	}

	view := b.View(o.search, o.width, domain.NewPaginationParams(&o.page, &o.limit))
	_, err = fmt.Fprintln(c.out, render.Board(view))
	return err
}

// clockFor returns a clock frozen at day, or nil (time.Now) when day is empty.
func clockFor(day string) (func() time.Time, error) {
	if day == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, day)
	if err != nil {
		return nil, fmt.Errorf("--today: want yyyy-mm-dd: %w", err)
	}
	return func() time.Time { return t }, nil
}
