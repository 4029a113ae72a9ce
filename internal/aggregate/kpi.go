// Package aggregate reduces a set of transactions to the summary views the
// dashboard draws. Each function is an independent pure reduction: it reads
// its input, never modifies it, and returns zero counts and rates for an
// empty set.
package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/decline-insights/internal/model"
)

// PreviousAuthRate is the reference auth rate shown as the prior period.
// There is no prior-period data; the value is a fixed benchmark.
const PreviousAuthRate = 82.0

// KPIs is the headline metric block.
type KPIs struct {
	AuthRate           float64         `json:"authRate"`
	PreviousAuthRate   float64         `json:"previousAuthRate"`
	TotalVolume        decimal.Decimal `json:"totalVolume"`
	TotalDeclined      int             `json:"totalDeclined"`
	SoftDeclined       int             `json:"softDeclined"`
	HardDeclined       int             `json:"hardDeclined"`
	RecoverableRevenue decimal.Decimal `json:"recoverableRevenue"`
	LostRevenue        decimal.Decimal `json:"lostRevenue"`
	HighValueFailures  int             `json:"highValueFailures"`
}

// ComputeKPIs summarises txns into the headline metrics.
func ComputeKPIs(txns []model.Transaction) KPIs {
	k := KPIs{
		PreviousAuthRate:   PreviousAuthRate,
		TotalVolume:        decimal.Zero,
		RecoverableRevenue: decimal.Zero,
		LostRevenue:        decimal.Zero,
	}

	approved := 0
	for _, tx := range txns {
		k.TotalVolume = k.TotalVolume.Add(tx.Amount)
		if !tx.IsDeclined() {
			approved++
			continue
		}

		k.TotalDeclined++
		switch tx.DeclineCategory {
		case model.CategorySoft:
			k.SoftDeclined++
			k.RecoverableRevenue = k.RecoverableRevenue.Add(tx.Amount)
		case model.CategoryHard:
			k.HardDeclined++
			k.LostRevenue = k.LostRevenue.Add(tx.Amount)
		}
		if tx.IsHighValue {
			k.HighValueFailures++
		}
	}

	k.AuthRate = percent(approved, len(txns))
	return k
}

// percent returns part/whole*100, or 0 when whole is 0.
func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
