package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"barbershop-finance-api/internal/models"
	"barbershop-finance-api/internal/repositories"
)

// catalogService implements the CatalogService interface
type catalogService struct {
	barberRepo      repositories.BarberRepository
	serviceRepo     repositories.ServiceRepository
	transactionRepo repositories.TransactionRepository
	expenseRepo     repositories.ExpenseRepository
	validator       *validator.Validate
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(repos *repositories.Container) CatalogService {
	return &catalogService{
		barberRepo:      repos.Barbers,
		serviceRepo:     repos.Services,
		transactionRepo: repos.Transactions,
		expenseRepo:     repos.Expenses,
		validator:       validator.New(),
	}
}

// CreateBarber registers a new barber
func (s *catalogService) CreateBarber(ctx context.Context, req *CreateBarberRequest) (*models.Barber, error) {
	if req == nil {
		return nil, fmt.Errorf("create barber request cannot be nil")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	barber := &models.Barber{
		Name:            req.Name,
		CommissionKind:  req.CommissionKind,
		CommissionValue: req.CommissionValue,
	}

	if err := s.barberRepo.Create(ctx, barber); err != nil {
		return nil, fmt.Errorf("failed to create barber: %w", err)
	}
	return barber, nil
}

// ListBarbers returns all registered barbers
func (s *catalogService) ListBarbers(ctx context.Context) ([]*models.Barber, error) {
	barbers, err := s.barberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list barbers: %w", err)
	}
	return barbers, nil
}

// CreateService registers a new service
func (s *catalogService) CreateService(ctx context.Context, req *CreateServiceRequest) (*models.Service, error) {
	if req == nil {
		return nil, fmt.Errorf("create service request cannot be nil")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	service := &models.Service{
		Name:      req.Name,
		BasePrice: req.BasePrice,
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return service, nil
}

// ListServices returns all registered services
func (s *catalogService) ListServices(ctx context.Context) ([]*models.Service, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// CreateTransaction records a sale. When the price is omitted it is resolved
// from the referenced service's base price at creation time; a missing service
// is a not-found error in that case. The barber reference is not checked.
func (s *catalogService) CreateTransaction(ctx context.Context, req *CreateTransactionRequest) (*models.Transaction, error) {
	if req == nil {
		return nil, fmt.Errorf("create transaction request cannot be nil")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	price := req.Price
	if price == nil {
		service, err := s.serviceRepo.GetByID(ctx, req.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("cannot default price: %w", err)
		}
		price = &service.BasePrice
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.DefaultPaymentMethod
	}

	timestamp := time.Now()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	tx := &models.Transaction{
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		Price:         *price,
		PaymentMethod: paymentMethod,
		Timestamp:     timestamp,
		Note:          req.Note,
	}

	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return tx, nil
}

// CreateExpense records an expense
func (s *catalogService) CreateExpense(ctx context.Context, req *CreateExpenseRequest) (*models.Expense, error) {
	if req == nil {
		return nil, fmt.Errorf("create expense request cannot be nil")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := req.Category
	if category == "" {
		category = models.DefaultExpenseCategory
	}

	timestamp := time.Now()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	expense := &models.Expense{
		Description: req.Description,
		Category:    category,
		Amount:      req.Amount,
		Timestamp:   timestamp,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return expense, nil
}
