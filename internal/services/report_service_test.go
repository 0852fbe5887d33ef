package services

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"barbershop-finance-api/internal/models"
	"barbershop-finance-api/internal/repositories"
)

// Fake repositories backed by slices, with optional error injection.

type fakeBarberRepo struct {
	barbers []*models.Barber
	err     error
}

func (f *fakeBarberRepo) Create(ctx context.Context, b *models.Barber) error {
	b.ID = int64(len(f.barbers) + 1)
	f.barbers = append(f.barbers, b)
	return nil
}

func (f *fakeBarberRepo) GetByID(ctx context.Context, id int64) (*models.Barber, error) {
	for _, b := range f.barbers {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, repositories.NotFoundError("barber", id)
}

func (f *fakeBarberRepo) List(ctx context.Context) ([]*models.Barber, error) {
	return f.barbers, f.err
}

type fakeServiceRepo struct {
	services []*models.Service
}

func (f *fakeServiceRepo) Create(ctx context.Context, s *models.Service) error {
	s.ID = int64(len(f.services) + 1)
	f.services = append(f.services, s)
	return nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	for _, s := range f.services {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, repositories.NotFoundError("service", id)
}

func (f *fakeServiceRepo) List(ctx context.Context) ([]*models.Service, error) {
	return f.services, nil
}

type fakeTransactionRepo struct {
	transactions []*models.Transaction
	err          error
}

func (f *fakeTransactionRepo) Create(ctx context.Context, tx *models.Transaction) error {
	tx.ID = int64(len(f.transactions) + 1)
	f.transactions = append(f.transactions, tx)
	return nil
}

func (f *fakeTransactionRepo) List(ctx context.Context) ([]*models.Transaction, error) {
	return f.transactions, f.err
}

type fakeExpenseRepo struct {
	expenses []*models.Expense
	err      error
}

func (f *fakeExpenseRepo) Create(ctx context.Context, e *models.Expense) error {
	e.ID = int64(len(f.expenses) + 1)
	f.expenses = append(f.expenses, e)
	return nil
}

func (f *fakeExpenseRepo) List(ctx context.Context) ([]*models.Expense, error) {
	return f.expenses, f.err
}

func fakeContainer() *repositories.Container {
	return &repositories.Container{
		Barbers:      &fakeBarberRepo{},
		Services:     &fakeServiceRepo{},
		Transactions: &fakeTransactionRepo{},
		Expenses:     &fakeExpenseRepo{},
	}
}

func at(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.Local)
}

func seedScenario(repos *repositories.Container) {
	percent := models.CommissionKindPercent
	twenty := 20.0
	barbers := repos.Barbers.(*fakeBarberRepo)
	barbers.barbers = []*models.Barber{
		{ID: 1, Name: "Ana", CommissionKind: &percent, CommissionValue: &twenty},
		{ID: 2, Name: "Bruno"},
	}

	txs := repos.Transactions.(*fakeTransactionRepo)
	txs.transactions = []*models.Transaction{
		{ID: 1, BarberID: 1, ServiceID: 1, Price: 50, PaymentMethod: "cash", Timestamp: at(2024, time.March, 15, 10)},
		{ID: 2, BarberID: 1, ServiceID: 2, Price: 30, PaymentMethod: "pix", Timestamp: at(2024, time.March, 15, 14)},
		{ID: 3, BarberID: 2, ServiceID: 1, Price: 40, PaymentMethod: "cash", Timestamp: at(2024, time.March, 20, 9)},
		// Outside March, must not be counted.
		{ID: 4, BarberID: 2, ServiceID: 1, Price: 999, PaymentMethod: "cash", Timestamp: at(2024, time.April, 1, 9)},
	}

	exps := repos.Expenses.(*fakeExpenseRepo)
	exps.expenses = []*models.Expense{
		{ID: 1, Description: "rent", Category: "fixed", Amount: 70, Timestamp: at(2024, time.March, 1, 8)},
		{ID: 2, Description: "towels", Category: "supplies", Amount: 10, Timestamp: at(2024, time.April, 2, 8)},
	}
}

func TestBuildReportMonthly(t *testing.T) {
	repos := fakeContainer()
	seedScenario(repos)

	svc := NewReportService(repos, models.DefaultCommissionPercent, nil)
	report, err := svc.BuildReport(context.Background(), models.PeriodMonthly, at(2024, time.March, 31, 0))
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}

	if report.Period != models.PeriodMonthly {
		t.Errorf("Period = %q, want monthly", report.Period)
	}
	if report.ReferenceDate != "2024-03-31" {
		t.Errorf("ReferenceDate = %q, want 2024-03-31", report.ReferenceDate)
	}

	if got := report.TotalRevenue; !almostEqual(got, 120) {
		t.Errorf("TotalRevenue = %v, want 120", got)
	}
	if got := report.TotalExpenses; !almostEqual(got, 70) {
		t.Errorf("TotalExpenses = %v, want 70", got)
	}
	if got := report.NetProfit; !almostEqual(got, 50) {
		t.Errorf("NetProfit = %v, want 50", got)
	}

	if report.CountsByBarber[1] != 2 || report.CountsByBarber[2] != 1 {
		t.Errorf("CountsByBarber = %v, want {1:2 2:1}", report.CountsByBarber)
	}
	if !almostEqual(report.TotalsByBarber[1], 80) || !almostEqual(report.TotalsByBarber[2], 40) {
		t.Errorf("TotalsByBarber = %v, want {1:80 2:40}", report.TotalsByBarber)
	}
	if !almostEqual(report.TotalsByService[1], 90) || !almostEqual(report.TotalsByService[2], 30) {
		t.Errorf("TotalsByService = %v, want {1:90 2:30}", report.TotalsByService)
	}

	// Barber 1: 20% of 80 = 16. Barber 2: no policy, 30% of 40 = 12.
	if !almostEqual(report.CommissionsDue[1], 16) || !almostEqual(report.CommissionsDue[2], 12) {
		t.Errorf("CommissionsDue = %v, want {1:16 2:12}", report.CommissionsDue)
	}

	if len(report.Transactions) != 3 {
		t.Errorf("len(Transactions) = %d, want 3", len(report.Transactions))
	}
	if len(report.Expenses) != 1 {
		t.Errorf("len(Expenses) = %d, want 1", len(report.Expenses))
	}
	// The store's enumeration order must be preserved.
	for i := 1; i < len(report.Transactions); i++ {
		if report.Transactions[i].ID < report.Transactions[i-1].ID {
			t.Error("transactions are not in store order")
		}
	}
}

func TestBuildReportAdditivity(t *testing.T) {
	repos := fakeContainer()
	seedScenario(repos)

	svc := NewReportService(repos, models.DefaultCommissionPercent, nil)
	report, err := svc.BuildReport(context.Background(), models.PeriodMonthly, at(2024, time.March, 1, 0))
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}

	var byBarber, byService float64
	for _, v := range report.TotalsByBarber {
		byBarber += v
	}
	for _, v := range report.TotalsByService {
		byService += v
	}

	if math.Abs(byBarber-report.TotalRevenue) > 1e-9 {
		t.Errorf("sum of barber totals %v != revenue %v", byBarber, report.TotalRevenue)
	}
	if math.Abs(byService-report.TotalRevenue) > 1e-9 {
		t.Errorf("sum of service totals %v != revenue %v", byService, report.TotalRevenue)
	}
}

func TestBuildReportDailyAndWeeklyFiltering(t *testing.T) {
	repos := fakeContainer()
	seedScenario(repos)
	svc := NewReportService(repos, models.DefaultCommissionPercent, nil)

	daily, err := svc.BuildReport(context.Background(), models.PeriodDaily, at(2024, time.March, 15, 23))
	if err != nil {
		t.Fatalf("BuildReport daily failed: %v", err)
	}
	if len(daily.Transactions) != 2 {
		t.Errorf("daily transactions = %d, want 2", len(daily.Transactions))
	}

	// 2024-03-15 is a Friday; the ISO week runs Mar 11 (Mon) to Mar 17 (Sun).
	weekly, err := svc.BuildReport(context.Background(), models.PeriodWeekly, at(2024, time.March, 11, 0))
	if err != nil {
		t.Fatalf("BuildReport weekly failed: %v", err)
	}
	if len(weekly.Transactions) != 2 {
		t.Errorf("weekly transactions = %d, want 2", len(weekly.Transactions))
	}
}

func TestBuildReportEmptyPeriod(t *testing.T) {
	repos := fakeContainer()
	seedScenario(repos)

	svc := NewReportService(repos, models.DefaultCommissionPercent, nil)
	report, err := svc.BuildReport(context.Background(), models.PeriodDaily, at(2030, time.January, 1, 0))
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}

	if !report.IsEmpty() {
		t.Error("expected an empty report")
	}
	if report.TotalRevenue != 0 || report.TotalExpenses != 0 || report.NetProfit != 0 {
		t.Errorf("expected zero totals, got %v / %v / %v", report.TotalRevenue, report.TotalExpenses, report.NetProfit)
	}
	if len(report.CountsByBarber) != 0 || len(report.TotalsByBarber) != 0 ||
		len(report.TotalsByService) != 0 || len(report.CommissionsDue) != 0 {
		t.Error("expected all mappings empty")
	}
}

func TestBuildReportInvalidPeriod(t *testing.T) {
	repos := fakeContainer()
	svc := NewReportService(repos, models.DefaultCommissionPercent, nil)

	_, err := svc.BuildReport(context.Background(), models.Period("yearly"), time.Now())
	if !errors.Is(err, models.ErrInvalidPeriod) {
		t.Errorf("error = %v, want ErrInvalidPeriod", err)
	}
}

func TestBuildReportIdempotent(t *testing.T) {
	repos := fakeContainer()
	seedScenario(repos)
	svc := NewReportService(repos, models.DefaultCommissionPercent, nil)
	ref := at(2024, time.March, 15, 0)

	first, err := svc.BuildReport(context.Background(), models.PeriodMonthly, ref)
	if err != nil {
		t.Fatalf("first BuildReport failed: %v", err)
	}
	second, err := svc.BuildReport(context.Background(), models.PeriodMonthly, ref)
	if err != nil {
		t.Fatalf("second BuildReport failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs over identical store state produced different reports")
	}
}

func TestBuildReportDanglingBarberReference(t *testing.T) {
	repos := fakeContainer()
	txs := repos.Transactions.(*fakeTransactionRepo)
	txs.transactions = []*models.Transaction{
		{ID: 1, BarberID: 42, ServiceID: 1, Price: 100, PaymentMethod: "cash", Timestamp: at(2024, time.March, 15, 10)},
	}

	svc := NewReportService(repos, models.DefaultCommissionPercent, nil)
	report, err := svc.BuildReport(context.Background(), models.PeriodMonthly, at(2024, time.March, 1, 0))
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}

	// No barber row exists for id 42: the default percentage applies.
	if !almostEqual(report.CommissionsDue[42], 30) {
		t.Errorf("CommissionsDue[42] = %v, want 30", report.CommissionsDue[42])
	}
}

func TestBuildReportStoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("disk read failed")

	repos := fakeContainer()
	repos.Transactions.(*fakeTransactionRepo).err = storeErr

	svc := NewReportService(repos, models.DefaultCommissionPercent, nil)
	_, err := svc.BuildReport(context.Background(), models.PeriodMonthly, time.Now())
	if !errors.Is(err, storeErr) {
		t.Errorf("error = %v, want wrapped store error", err)
	}

	repos = fakeContainer()
	repos.Expenses.(*fakeExpenseRepo).err = storeErr
	svc = NewReportService(repos, models.DefaultCommissionPercent, nil)
	if _, err := svc.BuildReport(context.Background(), models.PeriodMonthly, time.Now()); !errors.Is(err, storeErr) {
		t.Errorf("expense store error = %v, want wrapped store error", err)
	}

	repos = fakeContainer()
	repos.Barbers.(*fakeBarberRepo).err = storeErr
	svc = NewReportService(repos, models.DefaultCommissionPercent, nil)
	if _, err := svc.BuildReport(context.Background(), models.PeriodMonthly, time.Now()); !errors.Is(err, storeErr) {
		t.Errorf("barber store error = %v, want wrapped store error", err)
	}
}
