package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"barbershop-finance-api/internal/models"
	"barbershop-finance-api/internal/repositories"
)

func testContainer(t *testing.T) *repositories.Container {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	db, err := Open(DefaultConfig(":memory:"), logger)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewContainer(db, logger)
}

func TestBarberRepository(t *testing.T) {
	repos := testContainer(t)
	ctx := context.Background()

	kind := models.CommissionKindPercent
	value := 25.0
	barber := &models.Barber{Name: "João", CommissionKind: &kind, CommissionValue: &value}

	if err := repos.Barbers.Create(ctx, barber); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if barber.ID == 0 {
		t.Fatal("expected generated barber ID")
	}

	got, err := repos.Barbers.GetByID(ctx, barber.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "João" {
		t.Errorf("Name = %q, want %q", got.Name, "João")
	}
	if got.CommissionKind == nil || *got.CommissionKind != models.CommissionKindPercent {
		t.Errorf("CommissionKind = %v, want percent", got.CommissionKind)
	}
	if got.CommissionValue == nil || *got.CommissionValue != 25.0 {
		t.Errorf("CommissionValue = %v, want 25", got.CommissionValue)
	}
}

func TestBarberRepositoryNoPolicy(t *testing.T) {
	repos := testContainer(t)
	ctx := context.Background()

	barber := &models.Barber{Name: "Pedro"}
	if err := repos.Barbers.Create(ctx, barber); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repos.Barbers.GetByID(ctx, barber.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.CommissionKind != nil || got.CommissionValue != nil {
		t.Errorf("expected nil commission fields, got %v / %v", got.CommissionKind, got.CommissionValue)
	}
	if got.HasPolicy() {
		t.Error("expected no policy")
	}
}

func TestBarberRepositoryNotFound(t *testing.T) {
	repos := testContainer(t)

	_, err := repos.Barbers.GetByID(context.Background(), 999)
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestServiceRepository(t *testing.T) {
	repos := testContainer(t)
	ctx := context.Background()

	service := &models.Service{Name: "Corte simples", BasePrice: 30.0}
	if err := repos.Services.Create(ctx, service); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repos.Services.GetByID(ctx, service.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.BasePrice != 30.0 {
		t.Errorf("BasePrice = %v, want 30", got.BasePrice)
	}

	if _, err := repos.Services.GetByID(ctx, service.ID+1); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestTransactionRepositoryRoundTrip(t *testing.T) {
	repos := testContainer(t)
	ctx := context.Background()

	note := "regular client"
	ts := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.Local)
	tx := &models.Transaction{
		BarberID:      1,
		ServiceID:     2,
		Price:         35.0,
		PaymentMethod: "pix",
		Timestamp:     ts,
		Note:          &note,
	}

	if err := repos.Transactions.Create(ctx, tx); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	list, err := repos.Transactions.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}

	got := list[0]
	if got.ID != tx.ID || got.BarberID != 1 || got.ServiceID != 2 || got.Price != 35.0 {
		t.Errorf("unexpected transaction: %+v", got)
	}
	if !got.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, ts)
	}
	if got.Note == nil || *got.Note != note {
		t.Errorf("Note = %v, want %q", got.Note, note)
	}
}

func TestTransactionRepositoryListOrder(t *testing.T) {
	repos := testContainer(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		tx := &models.Transaction{
			BarberID:      int64(i + 1),
			ServiceID:     1,
			Price:         10.0,
			PaymentMethod: models.DefaultPaymentMethod,
			Timestamp:     time.Now(),
		}
		if err := repos.Transactions.Create(ctx, tx); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	list, err := repos.Transactions.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len(list) = %d, want 3", len(list))
	}
	for i, tx := range list {
		if tx.BarberID != int64(i+1) {
			t.Errorf("list[%d].BarberID = %d, want %d", i, tx.BarberID, i+1)
		}
	}
}

func TestExpenseRepository(t *testing.T) {
	repos := testContainer(t)
	ctx := context.Background()

	expense := &models.Expense{
		Description: "shampoo restock",
		Category:    "supplies",
		Amount:      80.0,
		Timestamp:   time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local),
	}
	if err := repos.Expenses.Create(ctx, expense); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	list, err := repos.Expenses.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	if list[0].Description != "shampoo restock" || list[0].Amount != 80.0 {
		t.Errorf("unexpected expense: %+v", list[0])
	}
}

func TestCreateValidation(t *testing.T) {
	repos := testContainer(t)
	ctx := context.Background()

	if err := repos.Barbers.Create(ctx, &models.Barber{Name: ""}); !errors.Is(err, repositories.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
	if err := repos.Services.Create(ctx, &models.Service{Name: "x", BasePrice: -5}); !errors.Is(err, repositories.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}
