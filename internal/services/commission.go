package services

import (
	"barbershop-finance-api/internal/models"
)

// Commissions computes the commission owed to each barber for the given set
// of transactions. Policies are looked up by barber id; a barber with no entry
// in the map, or whose policy resolved to the no-policy variant, earns the
// default percentage of each transaction's price. Percent policies earn
// price * value/100 per transaction, fixed policies earn a flat value per
// transaction regardless of price.
//
// Accumulation is plain float64 addition with no rounding; formatting to a
// fixed number of decimals is the export layer's concern. Barbers with no
// transactions in the set are absent from the result. The input slice is not
// mutated.
func Commissions(transactions []*models.Transaction, policies map[int64]models.CommissionPolicy, defaultPercent float64) map[int64]float64 {
	commissions := make(map[int64]float64)

	for _, tx := range transactions {
		policy := policies[tx.BarberID] // zero value is the no-policy variant

		switch policy.Kind {
		case models.PolicyPercent:
			commissions[tx.BarberID] += tx.Price * (policy.Value / 100.0)
		case models.PolicyFixed:
			commissions[tx.BarberID] += policy.Value
		default:
			commissions[tx.BarberID] += tx.Price * (defaultPercent / 100.0)
		}
	}

	return commissions
}
