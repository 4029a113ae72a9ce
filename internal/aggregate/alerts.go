package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/decline-insights/internal/model"
)

// HighValueAlerts lists failed high-value transactions, largest first,
// split by whether they can still be recovered.
type HighValueAlerts struct {
	All              []model.Transaction `json:"all"`
	Soft             []model.Transaction `json:"soft"`
	Hard             []model.Transaction `json:"hard"`
	TotalRecoverable decimal.Decimal     `json:"totalRecoverable"`
	TotalLost        decimal.Decimal     `json:"totalLost"`
}

// GroupHighValueAlerts collects declined high-value transactions.
func GroupHighValueAlerts(txns []model.Transaction) HighValueAlerts {
	a := HighValueAlerts{
		All:              []model.Transaction{},
		Soft:             []model.Transaction{},
		Hard:             []model.Transaction{},
		TotalRecoverable: decimal.Zero,
		TotalLost:        decimal.Zero,
	}

	for _, tx := range txns {
		if tx.IsDeclined() && tx.IsHighValue {
			a.All = append(a.All, tx)
		}
	}
	sort.SliceStable(a.All, func(i, j int) bool {
		return a.All[i].Amount.GreaterThan(a.All[j].Amount)
	})

	for _, tx := range a.All {
		switch tx.DeclineCategory {
		case model.CategorySoft:
			a.Soft = append(a.Soft, tx)
			a.TotalRecoverable = a.TotalRecoverable.Add(tx.Amount)
		case model.CategoryHard:
			a.Hard = append(a.Hard, tx)
			a.TotalLost = a.TotalLost.Add(tx.Amount)
		}
	}
	return a
}
