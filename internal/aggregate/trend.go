package aggregate

import (
	"slices"
	"time"

	"github.com/carson-networks/decline-insights/internal/format"
	"github.com/carson-networks/decline-insights/internal/model"
)

const monthEndDay = 28

// TrendPoint is one day of the approval trend.
type TrendPoint struct {
	Date         string  `json:"date"`
	Label        string  `json:"label"`
	ApprovalRate float64 `json:"approvalRate"`
	Approved     int     `json:"approved"`
	Declined     int     `json:"declined"`
	Total        int     `json:"total"`
	IsWeekend    bool    `json:"isWeekend"`
	IsMonthEnd   bool    `json:"isMonthEnd"`
}

// GroupByTrend returns the daily approval rate for every date present in
// txns, oldest first.
func GroupByTrend(txns []model.Transaction) []TrendPoint {
	byDate := tallyBy(txns, model.Transaction.Date)

	dates := sortedKeys(byDate)
	points := make([]TrendPoint, len(dates))
	for i, date := range dates {
		t := byDate[date]
		weekend, monthEnd := dayFlags(date)
		points[i] = TrendPoint{
			Date:         date,
			Label:        format.ShortDate(date),
			ApprovalRate: t.approvalRate(),
			Approved:     t.approved,
			Declined:     t.declined,
			Total:        t.total(),
			IsWeekend:    weekend,
			IsMonthEnd:   monthEnd,
		}
	}
	return points
}

// SeriesPoint is one day of a multi-series decline rate chart. Rates holds
// a value for every series key, 0 where the series had no transactions.
type SeriesPoint[K comparable] struct {
	Date  string        `json:"date"`
	Label string        `json:"label"`
	Rates map[K]float64 `json:"rates"`
}

// GroupByTrendAndMethod returns the daily decline rate of each payment
// method, oldest first.
func GroupByTrendAndMethod(txns []model.Transaction) []SeriesPoint[model.PaymentMethod] {
	return seriesTrend(txns, model.PaymentMethods, func(tx model.Transaction) model.PaymentMethod {
		return tx.PaymentMethod
	})
}

// GroupByTrendAndCountry returns the daily decline rate of each country,
// oldest first.
func GroupByTrendAndCountry(txns []model.Transaction) []SeriesPoint[model.Country] {
	return seriesTrend(txns, model.Countries, func(tx model.Transaction) model.Country {
		return tx.Country
	})
}

func seriesTrend[K comparable](txns []model.Transaction, series []K, key func(model.Transaction) K) []SeriesPoint[K] {
	byDate := make(map[string]map[K]tally)
	for _, tx := range txns {
		date := tx.Date()
		day, ok := byDate[date]
		if !ok {
			day = make(map[K]tally, len(series))
			byDate[date] = day
		}
		t := day[key(tx)]
		t.add(tx)
		day[key(tx)] = t
	}

	dates := sortedKeys(byDate)
	points := make([]SeriesPoint[K], len(dates))
	for i, date := range dates {
		rates := make(map[K]float64, len(series))
		for _, k := range series {
			rates[k] = byDate[date][k].declineRate()
		}
		points[i] = SeriesPoint[K]{
			Date:  date,
			Label: format.ShortDate(date),
			Rates: rates,
		}
	}
	return points
}

// dayFlags reports whether a YYYY-MM-DD date falls on a weekend and whether
// it is in the month-end stretch, both in UTC.
func dayFlags(date string) (weekend, monthEnd bool) {
	d, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return false, false
	}
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday, d.Day() >= monthEndDay
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
