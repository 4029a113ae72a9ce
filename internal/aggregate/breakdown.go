package aggregate

import (
	"sort"

	"github.com/carson-networks/decline-insights/internal/model"
)

// DeclineReason is one bar of the decline reason chart.
type DeclineReason struct {
	Code       model.DeclineCode     `json:"code"`
	Label      string                `json:"label"`
	Count      int                   `json:"count"`
	Category   model.DeclineCategory `json:"category"`
	Percentage float64               `json:"percentage"`
}

// GroupByDeclineCode counts declines per code, most frequent first. Codes
// with equal counts keep catalog order. Percentages are of all declines.
func GroupByDeclineCode(txns []model.Transaction) []DeclineReason {
	counts := make(map[model.DeclineCode]int)
	categories := make(map[model.DeclineCode]model.DeclineCategory)
	total := 0
	for _, tx := range txns {
		if !tx.IsDeclined() || tx.DeclineCode == "" {
			continue
		}
		counts[tx.DeclineCode]++
		categories[tx.DeclineCode] = tx.DeclineCategory
		total++
	}

	reasons := make([]DeclineReason, 0, len(counts))
	for _, code := range model.DeclineCodes {
		count, ok := counts[code]
		if !ok {
			continue
		}
		reasons = append(reasons, DeclineReason{
			Code:       code,
			Label:      code.Label(),
			Count:      count,
			Category:   categories[code],
			Percentage: percent(count, total),
		})
	}
	if len(reasons) != len(counts) {
		panic("aggregate: decline code outside the catalog")
	}

	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].Count > reasons[j].Count
	})
	return reasons
}

// SoftHardSplit divides declines into retriable and permanent.
type SoftHardSplit struct {
	Soft        int     `json:"soft"`
	Hard        int     `json:"hard"`
	Total       int     `json:"total"`
	SoftPercent float64 `json:"softPercent"`
	HardPercent float64 `json:"hardPercent"`
}

// GroupBySoftHard splits the declines in txns by category.
func GroupBySoftHard(txns []model.Transaction) SoftHardSplit {
	var s SoftHardSplit
	for _, tx := range txns {
		if !tx.IsDeclined() {
			continue
		}
		s.Total++
		switch tx.DeclineCategory {
		case model.CategorySoft:
			s.Soft++
		case model.CategoryHard:
			s.Hard++
		}
	}
	s.SoftPercent = percent(s.Soft, s.Total)
	s.HardPercent = percent(s.Hard, s.Total)
	return s
}

// MethodBreakdown is the decline rate of one payment method.
type MethodBreakdown struct {
	Method      model.PaymentMethod `json:"method"`
	Label       string              `json:"label"`
	DeclineRate float64             `json:"declineRate"`
	Approved    int                 `json:"approved"`
	Declined    int                 `json:"declined"`
	Total       int                 `json:"total"`
}

// GroupByPaymentMethod returns one row per payment method, in display order,
// including methods with no transactions.
func GroupByPaymentMethod(txns []model.Transaction) []MethodBreakdown {
	tallies := tallyBy(txns, func(tx model.Transaction) model.PaymentMethod { return tx.PaymentMethod })

	rows := make([]MethodBreakdown, len(model.PaymentMethods))
	for i, method := range model.PaymentMethods {
		t := tallies[method]
		rows[i] = MethodBreakdown{
			Method:      method,
			Label:       method.Label(),
			DeclineRate: t.declineRate(),
			Approved:    t.approved,
			Declined:    t.declined,
			Total:       t.total(),
		}
	}
	return rows
}

// CountryBreakdown is the decline rate of one country.
type CountryBreakdown struct {
	Country     model.Country `json:"country"`
	Label       string        `json:"label"`
	DeclineRate float64       `json:"declineRate"`
	Approved    int           `json:"approved"`
	Declined    int           `json:"declined"`
	Total       int           `json:"total"`
}

// GroupByCountry returns one row per country, in display order, including
// countries with no transactions.
func GroupByCountry(txns []model.Transaction) []CountryBreakdown {
	tallies := tallyBy(txns, func(tx model.Transaction) model.Country { return tx.Country })

	rows := make([]CountryBreakdown, len(model.Countries))
	for i, country := range model.Countries {
		t := tallies[country]
		rows[i] = CountryBreakdown{
			Country:     country,
			Label:       country.Label(),
			DeclineRate: t.declineRate(),
			Approved:    t.approved,
			Declined:    t.declined,
			Total:       t.total(),
		}
	}
	return rows
}

// tally counts outcomes within one group.
type tally struct {
	approved int
	declined int
}

func (t *tally) add(tx model.Transaction) {
	if tx.IsDeclined() {
		t.declined++
	} else {
		t.approved++
	}
}

func (t tally) total() int {
	return t.approved + t.declined
}

func (t tally) declineRate() float64 {
	return percent(t.declined, t.total())
}

func (t tally) approvalRate() float64 {
	return percent(t.approved, t.total())
}

func tallyBy[K comparable](txns []model.Transaction, key func(model.Transaction) K) map[K]tally {
	tallies := make(map[K]tally)
	for _, tx := range txns {
		t := tallies[key(tx)]
		t.add(tx)
		tallies[key(tx)] = t
	}
	return tallies
}
