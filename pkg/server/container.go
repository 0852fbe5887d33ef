// Package server wires the application's dependencies together.
package server

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"barbershop-finance-api/internal/config"
	"barbershop-finance-api/internal/repositories"
	"barbershop-finance-api/internal/repositories/sqlite"
	"barbershop-finance-api/internal/scheduling"
	"barbershop-finance-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *logrus.Logger
	CatalogService services.CatalogService
	ReportService  services.ReportService
	Book           *scheduling.Book

	db    *sql.DB
	repos *repositories.Container
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	dbCfg := sqlite.DefaultConfig(cfg.Database.Path)
	dbCfg.MaxOpenConns = cfg.Database.MaxOpenConns
	dbCfg.MaxIdleConns = cfg.Database.MaxIdleConns

	db, err := sqlite.Open(dbCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	repos := sqlite.NewContainer(db, logger)

	return &Container{
		Config:         cfg,
		Logger:         logger,
		CatalogService: services.NewCatalogService(repos),
		ReportService:  services.NewReportService(repos, cfg.Report.DefaultCommissionPercent, logger),
		Book:           scheduling.NewBook(cfg.Schedule.BookPath, logger),
		db:             db,
		repos:          repos,
	}, nil
}

// Repositories exposes the repository container, mainly for tests and tooling
func (c *Container) Repositories() *repositories.Container {
	return c.repos
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}
