package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"barbershop-finance-api/internal/models"
	"barbershop-finance-api/internal/repositories"
)

// ExpenseRepository implements repositories.ExpenseRepository for SQLite
type ExpenseRepository struct {
	base
}

// NewExpenseRepository creates a new SQLite expense repository
func NewExpenseRepository(db *sql.DB, logger *logrus.Logger) repositories.ExpenseRepository {
	return &ExpenseRepository{base: newBase(db, "expenses", logger)}
}

// Create inserts an expense and assigns its generated ID
func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if err := expense.Validate(); err != nil {
		return repositories.ValidationError("expense", err)
	}

	result, err := r.exec(ctx, "create",
		`INSERT INTO expenses (description, category, amount, timestamp) VALUES (?, ?, ?, ?)`,
		expense.Description, expense.Category, expense.Amount,
		expense.Timestamp.Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}

	id, err := r.insertID(result, "create")
	if err != nil {
		return err
	}
	expense.ID = id
	return nil
}

// List retrieves all expenses in insertion order
func (r *ExpenseRepository) List(ctx context.Context) ([]*models.Expense, error) {
	rows, err := r.query(ctx, "list",
		`SELECT id, description, category, amount, timestamp FROM expenses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		var ts string
		if err := rows.Scan(&expense.ID, &expense.Description, &expense.Category, &expense.Amount, &ts); err != nil {
			return nil, repositories.NewRepositoryError("list", "expense", 0, err)
		}
		expense.Timestamp, err = parseTimestamp(ts)
		if err != nil {
			return nil, repositories.NewRepositoryError("list", "expense", expense.ID, err)
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list", "expense", 0, err)
	}

	return expenses, nil
}
