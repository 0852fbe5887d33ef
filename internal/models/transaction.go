package models

import (
	"fmt"
	"time"
)

// DefaultPaymentMethod is used when a transaction is created without one.
const DefaultPaymentMethod = "cash"

// Transaction records one sale: a barber performed a service for a price.
// Price is always resolved at creation time (explicit or the service's base
// price) and is never null at rest. Barber and service ids are plain
// references, not enforced foreign keys.
type Transaction struct {
	ID            int64     `json:"id" db:"id"`
	BarberID      int64     `json:"barber_id" db:"barber_id"`
	ServiceID     int64     `json:"service_id" db:"service_id"`
	Price         float64   `json:"price" db:"price"`
	PaymentMethod string    `json:"payment_method" db:"payment_method"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
	Note          *string   `json:"note,omitempty" db:"note"`
}

// Validate validates the transaction data
func (t *Transaction) Validate() error {
	if t.BarberID <= 0 {
		return fmt.Errorf("transaction barber_id is required")
	}
	if t.ServiceID <= 0 {
		return fmt.Errorf("transaction service_id is required")
	}
	if t.Price < 0 {
		return fmt.Errorf("transaction price cannot be negative")
	}
	return nil
}
