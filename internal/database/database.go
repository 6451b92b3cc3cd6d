// Package database opens the connection pools the repositories run on.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Driver names accepted in DATABASE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

const pingTimeout = 5 * time.Second

// OpenPostgres creates a pgx pool for the given URL and verifies it with a ping.
func OpenPostgres(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("database.OpenPostgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database.OpenPostgres: ping: %w", err)
	}
	return pool, nil
}

// OpenMySQL connects to the legacy MySQL database described by a
// go-sql-driver DSN ("user:pass@tcp(host:3306)/hostel").
func OpenMySQL(ctx context.Context, dsn string) (*sql.DB, error) {
	cfg, err := MySQLConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("database.OpenMySQL: %w", err)
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("database.OpenMySQL: %w", err)
	}
	db := sql.OpenDB(connector)

	// Pool settings
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database.OpenMySQL: ping: %w", err)
	}
	return db, nil
}

// MySQLConfig parses dsn and pins the settings the legacy store relies on:
// utf8mb4 and UTC.
func MySQLConfig(dsn string) (*mysql.Config, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	cfg.Collation = "utf8mb4_unicode_ci"
	cfg.Loc = time.UTC
	cfg.ParseTime = true
	return cfg, nil
}
