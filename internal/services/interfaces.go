package services

import (
	"context"
	"time"

	"barbershop-finance-api/internal/models"
)

// CatalogService defines business operations over barbers, services,
// transactions and expenses. All four entity kinds are create-only; the
// reporting side reads them in bulk.
type CatalogService interface {
	CreateBarber(ctx context.Context, req *CreateBarberRequest) (*models.Barber, error)
	ListBarbers(ctx context.Context) ([]*models.Barber, error)

	CreateService(ctx context.Context, req *CreateServiceRequest) (*models.Service, error)
	ListServices(ctx context.Context) ([]*models.Service, error)

	CreateTransaction(ctx context.Context, req *CreateTransactionRequest) (*models.Transaction, error)
	CreateExpense(ctx context.Context, req *CreateExpenseRequest) (*models.Expense, error)
}

// ReportService builds aggregated financial reports for a period bucket.
type ReportService interface {
	BuildReport(ctx context.Context, period models.Period, referenceDate time.Time) (*models.Report, error)
}

// CreateBarberRequest is the payload for registering a barber. The commission
// kind is free-form; unrecognized kinds fall back to the default percentage at
// calculation time.
type CreateBarberRequest struct {
	Name            string   `json:"name" validate:"required"`
	CommissionKind  *string  `json:"commission_kind,omitempty"`
	CommissionValue *float64 `json:"commission_value,omitempty"`
}

// CreateServiceRequest is the payload for registering a service.
type CreateServiceRequest struct {
	Name      string  `json:"name" validate:"required"`
	BasePrice float64 `json:"base_price" validate:"gte=0"`
}

// CreateTransactionRequest is the payload for recording a sale. Price defaults
// to the referenced service's base price, payment method to cash and the
// timestamp to now.
type CreateTransactionRequest struct {
	BarberID      int64      `json:"barber_id" validate:"required,gt=0"`
	ServiceID     int64      `json:"service_id" validate:"required,gt=0"`
	Price         *float64   `json:"price,omitempty" validate:"omitempty,gte=0"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	Timestamp     *time.Time `json:"timestamp,omitempty"`
	Note          *string    `json:"note,omitempty"`
}

// CreateExpenseRequest is the payload for recording an expense. Category
// defaults to "other" and the timestamp to now.
type CreateExpenseRequest struct {
	Description string     `json:"description" validate:"required"`
	Category    string     `json:"category,omitempty"`
	Amount      float64    `json:"amount" validate:"required"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}
