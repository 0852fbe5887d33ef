package models

import (
	"fmt"
	"strings"
)

// Commission policy kinds as stored in the barbers table.
const (
	CommissionKindPercent = "percent"
	CommissionKindFixed   = "fixed"
)

// Barber represents a barber who performs services and earns commission.
// The commission fields are both optional; a barber without a policy falls
// back to the shop's default commission percentage.
type Barber struct {
	ID              int64    `json:"id" db:"id"`
	Name            string   `json:"name" db:"name"`
	CommissionKind  *string  `json:"commission_kind,omitempty" db:"commission_kind"`
	CommissionValue *float64 `json:"commission_value,omitempty" db:"commission_value"`
}

// Validate validates the barber data
func (b *Barber) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("barber name is required")
	}
	return nil
}

// PolicyKind identifies one variant of a commission policy.
type PolicyKind int

const (
	PolicyNone PolicyKind = iota
	PolicyPercent
	PolicyFixed
)

// CommissionPolicy is the resolved commission rule for a barber. Value is
// meaningful only for the percent and fixed variants.
type CommissionPolicy struct {
	Kind  PolicyKind
	Value float64
}

// Policy resolves the barber's stored commission fields into a policy variant.
// An unknown kind string or a kind without a value collapses to PolicyNone, so
// the caller's fallback branch covers it.
func (b *Barber) Policy() CommissionPolicy {
	if b.CommissionKind == nil || b.CommissionValue == nil {
		return CommissionPolicy{Kind: PolicyNone}
	}
	switch *b.CommissionKind {
	case CommissionKindPercent:
		return CommissionPolicy{Kind: PolicyPercent, Value: *b.CommissionValue}
	case CommissionKindFixed:
		return CommissionPolicy{Kind: PolicyFixed, Value: *b.CommissionValue}
	default:
		return CommissionPolicy{Kind: PolicyNone}
	}
}

// HasPolicy returns true if the barber has an explicit commission policy.
func (b *Barber) HasPolicy() bool {
	return b.Policy().Kind != PolicyNone
}
