package query

import (
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/decline-insights/internal/model"
)

// Result is one evaluation of a FilterState.
type Result struct {
	// Items is the current page.
	Items []model.Transaction
	// Filtered is every match, in sort order.
	Filtered    []model.Transaction
	TotalCount  int
	TotalPages  int
	CurrentPage int
}

// Run filters, sorts and paginates txns. The input is never modified and
// state.Search is applied as given; debouncing happens before Run.
func Run(txns []model.Transaction, state FilterState) Result {
	m := newMatcher(state)

	filtered := make([]model.Transaction, 0, len(txns))
	for _, tx := range txns {
		if m.matches(tx) {
			filtered = append(filtered, tx)
		}
	}
	sortTransactions(filtered, state.SortBy, state.SortDir)

	totalPages := max(1, (len(filtered)+PageSize-1)/PageSize)
	page := min(max(state.Page, 1), totalPages)
	start := min((page-1)*PageSize, len(filtered))
	end := min(start+PageSize, len(filtered))

	return Result{
		Items:       slices.Clone(filtered[start:end]),
		Filtered:    filtered,
		TotalCount:  len(filtered),
		TotalPages:  totalPages,
		CurrentPage: page,
	}
}

// matcher holds the parsed, ready-to-compare form of a FilterState.
type matcher struct {
	search    string
	dateFrom  string
	dateTo    string
	status    string
	method    string
	code      string
	category  string
	country   string
	amountMin *decimal.Decimal
	amountMax *decimal.Decimal
}

func newMatcher(state FilterState) matcher {
	return matcher{
		search:    strings.ToLower(state.Search),
		dateFrom:  state.DateFrom,
		dateTo:    state.DateTo,
		status:    state.Status,
		method:    state.PaymentMethod,
		code:      state.DeclineCode,
		category:  state.DeclineCategory,
		country:   state.Country,
		amountMin: parseAmountBound(state.AmountMin),
		amountMax: parseAmountBound(state.AmountMax),
	}
}

func (m matcher) matches(tx model.Transaction) bool {
	if m.search != "" &&
		!strings.Contains(strings.ToLower(tx.ID), m.search) &&
		!strings.Contains(strings.ToLower(tx.CustomerName), m.search) {
		return false
	}

	// YYYY-MM-DD compares correctly as text.
	date := tx.Date()
	if m.dateFrom != "" && date < m.dateFrom {
		return false
	}
	if m.dateTo != "" && date > m.dateTo {
		return false
	}

	if !matchesValue(m.status, string(tx.Status)) ||
		!matchesValue(m.method, string(tx.PaymentMethod)) ||
		!matchesValue(m.code, string(tx.DeclineCode)) ||
		!matchesValue(m.category, string(tx.DeclineCategory)) ||
		!matchesValue(m.country, string(tx.Country)) {
		return false
	}

	if m.amountMin != nil && tx.Amount.LessThan(*m.amountMin) {
		return false
	}
	if m.amountMax != nil && tx.Amount.GreaterThan(*m.amountMax) {
		return false
	}
	return true
}

// matchesValue treats All and the empty string as unconstrained.
func matchesValue(filter, value string) bool {
	return filter == "" || filter == All || filter == value
}

// parseAmountBound returns nil for blank or unparseable text.
func parseAmountBound(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &v
}

func sortTransactions(txns []model.Transaction, by SortKey, dir SortDirection) {
	less := func(a, b model.Transaction) bool {
		return a.Timestamp.Before(b.Timestamp)
	}
	if by == SortByAmount {
		less = func(a, b model.Transaction) bool {
			return a.Amount.LessThan(b.Amount)
		}
	}

	sort.SliceStable(txns, func(i, j int) bool {
		if dir == Asc {
			return less(txns[i], txns[j])
		}
		return less(txns[j], txns[i])
	})
}
