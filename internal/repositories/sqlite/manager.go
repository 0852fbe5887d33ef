package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"barbershop-finance-api/internal/repositories"
)

// Schema for the finance store. Migration tooling is intentionally out of
// scope; the schema is created on startup if it does not exist.
const schema = `
CREATE TABLE IF NOT EXISTS barbers (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	commission_kind TEXT,
	commission_value REAL
);

CREATE TABLE IF NOT EXISTS services (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	base_price REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	barber_id INTEGER NOT NULL,
	service_id INTEGER NOT NULL,
	price REAL NOT NULL,
	payment_method TEXT NOT NULL,
	timestamp TEXT NOT NULL,
	note TEXT
);

CREATE TABLE IF NOT EXISTS expenses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	description TEXT NOT NULL,
	category TEXT NOT NULL,
	amount REAL NOT NULL,
	timestamp TEXT NOT NULL
);
`

// Config holds SQLite connection settings
type Config struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultConfig returns connection settings suited to SQLite
func DefaultConfig(path string) *Config {
	return &Config{
		Path:            path,
		MaxOpenConns:    1, // SQLite works best with a single writer
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}
}

// Open opens the database, configures the connection pool and ensures the
// schema exists.
func Open(cfg *Config, logger *logrus.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = logrus.New()
	}

	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repositories.ErrConnection, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", repositories.ErrConnection, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.WithField("db_path", cfg.Path).Info("Database connection established")
	return db, nil
}

// NewContainer wires all SQLite repositories over one database handle
func NewContainer(db *sql.DB, logger *logrus.Logger) *repositories.Container {
	return &repositories.Container{
		Barbers:      NewBarberRepository(db, logger),
		Services:     NewServiceRepository(db, logger),
		Transactions: NewTransactionRepository(db, logger),
		Expenses:     NewExpenseRepository(db, logger),
	}
}
