package models

// DefaultCommissionPercent is the fallback commission rate applied to
// transactions whose barber has no explicit policy.
const DefaultCommissionPercent = 30.0

// ReferenceDateLayout is the wire format for report reference dates.
const ReferenceDateLayout = "2006-01-02"

// Report is the aggregated financial report for one period bucket. The maps
// are keyed by barber or service id; the raw transaction and expense slices
// are carried for export and detail display.
type Report struct {
	Period          Period            `json:"period"`
	ReferenceDate   string            `json:"reference_date"`
	CountsByBarber  map[int64]int     `json:"counts_by_barber"`
	TotalsByBarber  map[int64]float64 `json:"totals_by_barber"`
	TotalsByService map[int64]float64 `json:"totals_by_service"`
	TotalRevenue    float64           `json:"total_revenue"`
	TotalExpenses   float64           `json:"total_expenses"`
	NetProfit       float64           `json:"net_profit"`
	CommissionsDue  map[int64]float64 `json:"commissions_due"`
	Transactions    []*Transaction    `json:"transactions"`
	Expenses        []*Expense        `json:"expenses"`
}

// IsEmpty returns true if the report covers a period with no activity.
func (r *Report) IsEmpty() bool {
	return len(r.Transactions) == 0 && len(r.Expenses) == 0
}
