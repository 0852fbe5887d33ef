package sqlite

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"

	"barbershop-finance-api/internal/models"
	"barbershop-finance-api/internal/repositories"
)

// BarberRepository implements repositories.BarberRepository for SQLite
type BarberRepository struct {
	base
}

// NewBarberRepository creates a new SQLite barber repository
func NewBarberRepository(db *sql.DB, logger *logrus.Logger) repositories.BarberRepository {
	return &BarberRepository{base: newBase(db, "barbers", logger)}
}

// Create inserts a barber and assigns its generated ID
func (r *BarberRepository) Create(ctx context.Context, barber *models.Barber) error {
	if err := barber.Validate(); err != nil {
		return repositories.ValidationError("barber", err)
	}

	result, err := r.exec(ctx, "create",
		`INSERT INTO barbers (name, commission_kind, commission_value) VALUES (?, ?, ?)`,
		barber.Name, barber.CommissionKind, barber.CommissionValue,
	)
	if err != nil {
		return err
	}

	id, err := r.insertID(result, "create")
	if err != nil {
		return err
	}
	barber.ID = id
	return nil
}

// GetByID retrieves a barber by ID
func (r *BarberRepository) GetByID(ctx context.Context, id int64) (*models.Barber, error) {
	row := r.queryRow(ctx, "get_by_id",
		`SELECT id, name, commission_kind, commission_value FROM barbers WHERE id = ?`, id)

	barber := &models.Barber{}
	err := row.Scan(&barber.ID, &barber.Name, &barber.CommissionKind, &barber.CommissionValue)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repositories.NotFoundError("barber", id)
		}
		return nil, repositories.NewRepositoryError("get_by_id", "barber", id, err)
	}

	return barber, nil
}

// List retrieves all barbers in insertion order
func (r *BarberRepository) List(ctx context.Context) ([]*models.Barber, error) {
	rows, err := r.query(ctx, "list",
		`SELECT id, name, commission_kind, commission_value FROM barbers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var barbers []*models.Barber
	for rows.Next() {
		barber := &models.Barber{}
		if err := rows.Scan(&barber.ID, &barber.Name, &barber.CommissionKind, &barber.CommissionValue); err != nil {
			return nil, repositories.NewRepositoryError("list", "barber", 0, err)
		}
		barbers = append(barbers, barber)
	}

	if err := rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list", "barber", 0, err)
	}

	return barbers, nil
}
