package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"barbershop-finance-api/internal/repositories"
)

// base provides shared query execution and logging for the SQLite repositories
type base struct {
	db     *sql.DB
	table  string
	logger *logrus.Logger
}

func newBase(db *sql.DB, table string, logger *logrus.Logger) base {
	if logger == nil {
		logger = logrus.New()
	}
	return base{db: db, table: table, logger: logger}
}

// logQuery logs a query with its execution time
func (b *base) logQuery(operation, query string, duration time.Duration, err error) {
	fields := logrus.Fields{
		"operation": operation,
		"table":     b.table,
		"query":     query,
		"duration":  duration,
	}

	if err != nil {
		fields["error"] = err.Error()
		b.logger.WithFields(fields).Error("Query failed")
	} else {
		b.logger.WithFields(fields).Debug("Query executed")
	}
}

// query executes a multi-row query and logs the result
func (b *base) query(ctx context.Context, operation, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := b.db.QueryContext(ctx, query, args...)
	b.logQuery(operation, query, time.Since(start), err)

	if err != nil {
		return nil, repositories.NewRepositoryError(operation, b.table, 0, err)
	}
	return rows, nil
}

// queryRow executes a single-row query and logs the result
func (b *base) queryRow(ctx context.Context, operation, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := b.db.QueryRowContext(ctx, query, args...)
	b.logQuery(operation, query, time.Since(start), nil)
	return row
}

// exec executes a statement and logs the result
func (b *base) exec(ctx context.Context, operation, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := b.db.ExecContext(ctx, query, args...)
	b.logQuery(operation, query, time.Since(start), err)

	if err != nil {
		return nil, repositories.NewRepositoryError(operation, b.table, 0, err)
	}
	return result, nil
}

// insertID extracts the generated row id from an insert result
func (b *base) insertID(result sql.Result, operation string) (int64, error) {
	id, err := result.LastInsertId()
	if err != nil {
		return 0, repositories.NewRepositoryError(operation, b.table, 0, err)
	}
	return id, nil
}
