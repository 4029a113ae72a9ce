package query

import (
	"github.com/carson-networks/decline-insights/internal/model"
)

// All is the sentinel for "no constraint" on the equality filters.
const All = "all"

// PageSize is the number of transactions per page.
const PageSize = 25

// SortKey selects the field results are ordered by.
type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByAmount SortKey = "amount"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// FilterState describes a complete query. The equality filters hold
// either All or a value of the matching model type. Amount bounds are kept
// as the raw text the analyst typed; text that does not parse as a number
// is ignored rather than rejected.
type FilterState struct {
	Search          string        `json:"search"`
	DateFrom        string        `json:"dateFrom"`
	DateTo          string        `json:"dateTo"`
	Status          string        `json:"status"`
	PaymentMethod   string        `json:"paymentMethod"`
	DeclineCode     string        `json:"declineCode"`
	DeclineCategory string        `json:"declineCategory"`
	Country         string        `json:"country"`
	AmountMin       string        `json:"amountMin"`
	AmountMax       string        `json:"amountMax"`
	SortBy          SortKey       `json:"sortBy"`
	SortDir         SortDirection `json:"sortDir"`
	Page            int           `json:"page"`
}

// DefaultFilterState matches everything, newest first, on page 1.
func DefaultFilterState() FilterState {
	return FilterState{
		Status:          All,
		PaymentMethod:   All,
		DeclineCode:     All,
		DeclineCategory: All,
		Country:         All,
		SortBy:          SortByDate,
		SortDir:         Desc,
		Page:            1,
	}
}

// NewFilterState returns the default state, pre-selecting a decline code
// when one is given. Pre-selecting a code also narrows status to declined.
func NewFilterState(declineCode string) FilterState {
	s := DefaultFilterState()
	if declineCode != "" && declineCode != All {
		s.DeclineCode = declineCode
		s.Status = string(model.StatusDeclined)
	}
	return s
}

// Every setter except SetPage sends the analyst back to page 1.

func (s *FilterState) SetSearch(v string) {
	s.Search = v
	s.Page = 1
}

func (s *FilterState) SetDateFrom(v string) {
	s.DateFrom = v
	s.Page = 1
}

func (s *FilterState) SetDateTo(v string) {
	s.DateTo = v
	s.Page = 1
}

func (s *FilterState) SetStatus(v string) {
	s.Status = v
	s.Page = 1
}

func (s *FilterState) SetPaymentMethod(v string) {
	s.PaymentMethod = v
	s.Page = 1
}

func (s *FilterState) SetDeclineCode(v string) {
	s.DeclineCode = v
	s.Page = 1
}

func (s *FilterState) SetDeclineCategory(v string) {
	s.DeclineCategory = v
	s.Page = 1
}

func (s *FilterState) SetCountry(v string) {
	s.Country = v
	s.Page = 1
}

func (s *FilterState) SetAmountMin(v string) {
	s.AmountMin = v
	s.Page = 1
}

func (s *FilterState) SetAmountMax(v string) {
	s.AmountMax = v
	s.Page = 1
}

func (s *FilterState) SetSortBy(v SortKey) {
	s.SortBy = v
	s.Page = 1
}

func (s *FilterState) SetSortDir(v SortDirection) {
	s.SortDir = v
	s.Page = 1
}

// SetPage moves to page n without touching any filter. Out-of-range pages
// are clamped when the query runs.
func (s *FilterState) SetPage(n int) {
	s.Page = n
}

// SelectDeclineCode jumps to the declines for one code, as when an analyst
// clicks a bar in the decline reason chart.
func (s *FilterState) SelectDeclineCode(code string) {
	s.DeclineCode = code
	s.Status = string(model.StatusDeclined)
	s.Page = 1
}

// Reset restores the defaults.
func (s *FilterState) Reset() {
	*s = DefaultFilterState()
}
