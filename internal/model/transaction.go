package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date form used for grouping and date filters.
const DateLayout = "2006-01-02"

// HighValueThreshold is the amount above which a transaction is high value.
var HighValueThreshold = decimal.NewFromInt(500)

// Transaction is one payment attempt. Transactions are values: the
// population is never mutated once generated, every view works on copies.
type Transaction struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	CustomerName    string          `json:"customerName"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Status          Status          `json:"status"`
	DeclineCode     DeclineCode     `json:"declineCode,omitempty"`
	DeclineCategory DeclineCategory `json:"declineCategory,omitempty"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	Country         Country         `json:"country"`
	Timestamp       time.Time       `json:"timestamp"`
	IsHighValue     bool            `json:"isHighValue"`
}

// IsDeclined reports whether the attempt was declined.
func (t Transaction) IsDeclined() bool {
	return t.Status == StatusDeclined
}

// Date returns the UTC calendar date of the timestamp as YYYY-MM-DD.
func (t Transaction) Date() string {
	return t.Timestamp.UTC().Format(DateLayout)
}

// IsHighValueAmount reports whether amount exceeds HighValueThreshold.
func IsHighValueAmount(amount decimal.Decimal) bool {
	return amount.GreaterThan(HighValueThreshold)
}
