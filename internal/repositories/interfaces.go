package repositories

import (
	"context"

	"barbershop-finance-api/internal/models"
)

// BarberRepository defines persistence operations for barbers
type BarberRepository interface {
	// Create inserts a barber and assigns its generated ID
	Create(ctx context.Context, barber *models.Barber) error

	// GetByID retrieves a barber by its ID
	GetByID(ctx context.Context, id int64) (*models.Barber, error)

	// List retrieves all barbers in insertion order
	List(ctx context.Context) ([]*models.Barber, error)
}

// ServiceRepository defines persistence operations for services
type ServiceRepository interface {
	// Create inserts a service and assigns its generated ID
	Create(ctx context.Context, service *models.Service) error

	// GetByID retrieves a service by its ID
	GetByID(ctx context.Context, id int64) (*models.Service, error)

	// List retrieves all services in insertion order
	List(ctx context.Context) ([]*models.Service, error)
}

// TransactionRepository defines persistence operations for transactions
type TransactionRepository interface {
	// Create inserts a transaction and assigns its generated ID
	Create(ctx context.Context, tx *models.Transaction) error

	// List retrieves all transactions in insertion order
	List(ctx context.Context) ([]*models.Transaction, error)
}

// ExpenseRepository defines persistence operations for expenses
type ExpenseRepository interface {
	// Create inserts an expense and assigns its generated ID
	Create(ctx context.Context, expense *models.Expense) error

	// List retrieves all expenses in insertion order
	List(ctx context.Context) ([]*models.Expense, error)
}

// Container bundles all repositories for dependency injection
type Container struct {
	Barbers      BarberRepository
	Services     ServiceRepository
	Transactions TransactionRepository
	Expenses     ExpenseRepository
}
