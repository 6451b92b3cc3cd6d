// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/pkordes/hostel-desk/internal/contract"
	"github.com/pkordes/hostel-desk/internal/database"
)

// Config holds all configuration values for the API server and the desk CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the connection string. Required.
	// A Postgres URL for the postgres driver, a go-sql-driver DSN for mysql.
	DatabaseURL string

	// DatabaseDriver selects the data source: "postgres" (default) or "mysql"
	// for the legacy desktop schema.
	DatabaseDriver string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// ContractTemplate is the path of the .docx contract template.
	ContractTemplate string

	// ContractFont and ContractFontSize are forced onto every run of a
	// generated contract.
	ContractFont     string
	ContractFontSize int

	// ContractMode is the placeholder substitution strategy.
	ContractMode contract.Mode

	// WarningDays is the departure window, in days, painted as a warning.
	WarningDays int

	// AMQPURL is the RabbitMQ broker for contract events. Empty disables events.
	AMQPURL string

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or the
// first variable holding an invalid value.
func Load() (Config, error) {
	return load(true)
}

// LoadOffline is Load for commands that never open the database:
// DATABASE_URL may be absent.
func LoadOffline() (Config, error) {
	return load(false)
}

func load(requireDatabase bool) (Config, error) {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseDriver:   strings.ToLower(getEnv("DATABASE_DRIVER", database.DriverPostgres)),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		ContractTemplate: getEnv("CONTRACT_TEMPLATE", "templates/contrato.docx"),
		ContractFont:     getEnv("CONTRACT_FONT", contract.DefaultFontFamily),
		AMQPURL:          os.Getenv("AMQP_URL"),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" && requireDatabase {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	switch cfg.DatabaseDriver {
	case database.DriverPostgres, database.DriverMySQL:
	default:
		return Config{}, fmt.Errorf("DATABASE_DRIVER: unsupported driver %q", cfg.DatabaseDriver)
	}

	var err error
	if cfg.ContractMode, err = contract.ParseMode(getEnv("CONTRACT_SUBSTITUTION", string(contract.Sequential))); err != nil {
		return Config{}, fmt.Errorf("CONTRACT_SUBSTITUTION: %w", err)
	}
	if cfg.ContractFontSize, err = positiveInt("CONTRACT_FONT_SIZE", contract.DefaultFontSize); err != nil {
		return Config{}, err
	}
	if cfg.WarningDays, err = positiveInt("WARNING_DAYS", 28); err != nil {
		return Config{}, err
	}
	maxBody, err := positiveInt("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		return Config{}, err
	}
	cfg.MaxBodyBytes = int64(maxBody)

	return cfg, nil
}

// LoadDotEnv reads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config.LoadDotEnv: %w", err)
	}
	return nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// positiveInt parses the variable named by key as a positive integer.
func positiveInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: must be a positive integer, got %q", key, v)
	}
	return n, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
