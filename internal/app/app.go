// Package app wires configuration, storage and services together for the
// binaries under cmd/. No business logic belongs here.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkordes/hostel-desk/internal/config"
	"github.com/pkordes/hostel-desk/internal/contract"
	"github.com/pkordes/hostel-desk/internal/database"
	"github.com/pkordes/hostel-desk/internal/events"
	"github.com/pkordes/hostel-desk/internal/repo"
	"github.com/pkordes/hostel-desk/internal/service"
)

// App holds the long-lived dependencies of a running binary.
type App struct {
	Config    config.Config
	Logger    *slog.Logger
	Engine    *contract.Engine
	Board     *service.BoardService
	Contracts *service.ContractService

	closers []func()
}

// NewLogger builds the JSON logger used by every binary.
// An unknown level falls back to info.
func NewLogger(level string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

// Stores opens the configured data source and returns its repositories and
// a function releasing the connection pool.
func Stores(ctx context.Context, cfg config.Config) (repo.RoomRepo, repo.StayRepo, func(), error) {
	switch cfg.DatabaseDriver {
	case database.DriverMySQL:
		db, err := database.OpenMySQL(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		store := repo.NewLegacyStore(db)
		return store, store, func() { _ = db.Close() }, nil
	default:
		pool, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		return repo.NewRoomRepo(pool), repo.NewStayRepo(pool), pool.Close, nil
	}
}

// New opens storage and builds the services. clock supplies "today"; nil
// means time.Now.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger, clock func() time.Time) (*App, error) {
	if clock == nil {
		clock = time.Now
	}

	rooms, stays, closeDB, err := Stores(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("app.New: %w", err)
	}
	logger.Info("database connection established", "driver", cfg.DatabaseDriver)

	var publisher events.Publisher = events.Nop{}
	if cfg.AMQPURL != "" {
		publisher = events.NewAMQPPublisher(cfg.AMQPURL)
		logger.Info("contract events enabled", "queue", events.ContractGeneratedQueue)
	}

	engine := contract.New(cfg.ContractFont, cfg.ContractFontSize, cfg.ContractMode)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Engine:    engine,
		Board:     service.NewBoardService(rooms, stays, clock, cfg.WarningDays),
		Contracts: service.NewContractService(stays, engine, cfg.ContractTemplate, publisher, clock, logger),
		closers:   []func(){closeDB},
	}, nil
}

// Close releases everything New opened.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
