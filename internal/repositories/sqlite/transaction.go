package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"barbershop-finance-api/internal/models"
	"barbershop-finance-api/internal/repositories"
)

// TransactionRepository implements repositories.TransactionRepository for SQLite
type TransactionRepository struct {
	base
}

// NewTransactionRepository creates a new SQLite transaction repository
func NewTransactionRepository(db *sql.DB, logger *logrus.Logger) repositories.TransactionRepository {
	return &TransactionRepository{base: newBase(db, "transactions", logger)}
}

// Create inserts a transaction and assigns its generated ID
func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	if err := tx.Validate(); err != nil {
		return repositories.ValidationError("transaction", err)
	}

	result, err := r.exec(ctx, "create",
		`INSERT INTO transactions (barber_id, service_id, price, payment_method, timestamp, note)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		tx.BarberID, tx.ServiceID, tx.Price, tx.PaymentMethod,
		tx.Timestamp.Format(time.RFC3339Nano), tx.Note,
	)
	if err != nil {
		return err
	}

	id, err := r.insertID(result, "create")
	if err != nil {
		return err
	}
	tx.ID = id
	return nil
}

// List retrieves all transactions in insertion order
func (r *TransactionRepository) List(ctx context.Context) ([]*models.Transaction, error) {
	rows, err := r.query(ctx, "list",
		`SELECT id, barber_id, service_id, price, payment_method, timestamp, note
		 FROM transactions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		tx := &models.Transaction{}
		var ts string
		if err := rows.Scan(&tx.ID, &tx.BarberID, &tx.ServiceID, &tx.Price, &tx.PaymentMethod, &ts, &tx.Note); err != nil {
			return nil, repositories.NewRepositoryError("list", "transaction", 0, err)
		}
		tx.Timestamp, err = parseTimestamp(ts)
		if err != nil {
			return nil, repositories.NewRepositoryError("list", "transaction", tx.ID, err)
		}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list", "transaction", 0, err)
	}

	return transactions, nil
}

// parseTimestamp parses a stored timestamp, accepting values with or without
// fractional seconds.
func parseTimestamp(s string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Parse(time.RFC3339, s)
	}
	return ts, nil
}
