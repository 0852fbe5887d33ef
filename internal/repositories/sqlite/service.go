package sqlite

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"

	"barbershop-finance-api/internal/models"
	"barbershop-finance-api/internal/repositories"
)

// ServiceRepository implements repositories.ServiceRepository for SQLite
type ServiceRepository struct {
	base
}

// NewServiceRepository creates a new SQLite service repository
func NewServiceRepository(db *sql.DB, logger *logrus.Logger) repositories.ServiceRepository {
	return &ServiceRepository{base: newBase(db, "services", logger)}
}

// Create inserts a service and assigns its generated ID
func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) error {
	if err := service.Validate(); err != nil {
		return repositories.ValidationError("service", err)
	}

	result, err := r.exec(ctx, "create",
		`INSERT INTO services (name, base_price) VALUES (?, ?)`,
		service.Name, service.BasePrice,
	)
	if err != nil {
		return err
	}

	id, err := r.insertID(result, "create")
	if err != nil {
		return err
	}
	service.ID = id
	return nil
}

// GetByID retrieves a service by ID
func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	row := r.queryRow(ctx, "get_by_id",
		`SELECT id, name, base_price FROM services WHERE id = ?`, id)

	service := &models.Service{}
	err := row.Scan(&service.ID, &service.Name, &service.BasePrice)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repositories.NotFoundError("service", id)
		}
		return nil, repositories.NewRepositoryError("get_by_id", "service", id, err)
	}

	return service, nil
}

// List retrieves all services in insertion order
func (r *ServiceRepository) List(ctx context.Context) ([]*models.Service, error) {
	rows, err := r.query(ctx, "list",
		`SELECT id, name, base_price FROM services ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*models.Service
	for rows.Next() {
		service := &models.Service{}
		if err := rows.Scan(&service.ID, &service.Name, &service.BasePrice); err != nil {
			return nil, repositories.NewRepositoryError("list", "service", 0, err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list", "service", 0, err)
	}

	return services, nil
}
