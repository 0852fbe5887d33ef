package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"barbershop-finance-api/internal/models"
	"barbershop-finance-api/internal/repositories"
)

// reportService implements the ReportService interface
type reportService struct {
	transactionRepo repositories.TransactionRepository
	expenseRepo     repositories.ExpenseRepository
	barberRepo      repositories.BarberRepository
	defaultPercent  float64
	logger          *logrus.Logger
}

// NewReportService creates a new report service instance. defaultPercent is
// the commission rate applied to barbers without an explicit policy.
func NewReportService(repos *repositories.Container, defaultPercent float64, logger *logrus.Logger) ReportService {
	if logger == nil {
		logger = logrus.New()
	}
	return &reportService{
		transactionRepo: repos.Transactions,
		expenseRepo:     repos.Expenses,
		barberRepo:      repos.Barbers,
		defaultPercent:  defaultPercent,
		logger:          logger,
	}
}

// BuildReport loads the period's transactions and expenses and aggregates them
// into per-barber counts and totals, per-service totals, the three scalar
// totals and the commissions due. An empty period yields empty maps and zero
// totals, not an error.
func (s *reportService) BuildReport(ctx context.Context, period models.Period, referenceDate time.Time) (*models.Report, error) {
	if !period.Valid() {
		return nil, models.ErrInvalidPeriod
	}

	transactions, err := s.loadTransactions(ctx, period, referenceDate)
	if err != nil {
		return nil, err
	}

	expenses, err := s.loadExpenses(ctx, period, referenceDate)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		Period:          period,
		ReferenceDate:   referenceDate.Format(models.ReferenceDateLayout),
		CountsByBarber:  make(map[int64]int),
		TotalsByBarber:  make(map[int64]float64),
		TotalsByService: make(map[int64]float64),
		Transactions:    transactions,
		Expenses:        expenses,
	}

	for _, tx := range transactions {
		report.CountsByBarber[tx.BarberID]++
		report.TotalsByBarber[tx.BarberID] += tx.Price
		report.TotalsByService[tx.ServiceID] += tx.Price
		report.TotalRevenue += tx.Price
	}

	for _, expense := range expenses {
		report.TotalExpenses += expense.Amount
	}

	report.NetProfit = report.TotalRevenue - report.TotalExpenses

	policies, err := s.loadPolicies(ctx)
	if err != nil {
		return nil, err
	}
	report.CommissionsDue = Commissions(transactions, policies, s.defaultPercent)

	s.logger.WithFields(logrus.Fields{
		"period":         period,
		"reference_date": report.ReferenceDate,
		"transactions":   len(transactions),
		"expenses":       len(expenses),
		"total_revenue":  report.TotalRevenue,
	}).Debug("Report built")

	return report, nil
}

// loadTransactions scans all transactions from the store and retains those in
// the period, preserving the store's enumeration order.
func (s *reportService) loadTransactions(ctx context.Context, period models.Period, referenceDate time.Time) ([]*models.Transaction, error) {
	all, err := s.transactionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	matched := make([]*models.Transaction, 0, len(all))
	for _, tx := range all {
		ok, err := period.Contains(tx.Timestamp, referenceDate)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, tx)
		}
	}
	return matched, nil
}

// loadExpenses scans all expenses from the store and retains those in the
// period, preserving the store's enumeration order.
func (s *reportService) loadExpenses(ctx context.Context, period models.Period, referenceDate time.Time) ([]*models.Expense, error) {
	all, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	matched := make([]*models.Expense, 0, len(all))
	for _, expense := range all {
		ok, err := period.Contains(expense.Timestamp, referenceDate)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, expense)
		}
	}
	return matched, nil
}

// loadPolicies resolves the commission policy of every known barber.
// Transactions referencing a barber with no row are simply absent from the
// map and fall into the default branch of the calculator.
func (s *reportService) loadPolicies(ctx context.Context) (map[int64]models.CommissionPolicy, error) {
	barbers, err := s.barberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load barber policies: %w", err)
	}

	policies := make(map[int64]models.CommissionPolicy, len(barbers))
	for _, barber := range barbers {
		policies[barber.ID] = barber.Policy()
	}
	return policies, nil
}
