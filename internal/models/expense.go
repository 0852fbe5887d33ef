package models

import (
	"fmt"
	"strings"
	"time"
)

// DefaultExpenseCategory is used when an expense is created without one.
const DefaultExpenseCategory = "other"

// Expense records money spent by the shop.
type Expense struct {
	ID          int64     `json:"id" db:"id"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Amount      float64   `json:"amount" db:"amount"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
}

// Validate validates the expense data
func (e *Expense) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("expense description is required")
	}
	return nil
}
