package models

import (
	"fmt"
	"strings"
)

// Service represents a service offered by the shop. BasePrice is used as the
// transaction price when a transaction is created without an explicit price.
type Service struct {
	ID        int64   `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	BasePrice float64 `json:"base_price" db:"base_price"`
}

// Validate validates the service data
func (s *Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("service name is required")
	}
	if s.BasePrice < 0 {
		return fmt.Errorf("service base price cannot be negative")
	}
	return nil
}
