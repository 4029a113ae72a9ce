package service

import (
	"github.com/carson-networks/decline-insights/internal/catalog"
	"github.com/carson-networks/decline-insights/internal/model"
)

// TransactionDetail is a transaction with the catalog entry for its decline
// code. Info is nil for approved transactions.
type TransactionDetail struct {
	Transaction model.Transaction        `json:"transaction"`
	Info        *catalog.DeclineCodeInfo `json:"declineInfo,omitempty"`
}

// Guidance returns the recovery or escalation advice, or "" when approved.
func (d TransactionDetail) Guidance() string {
	if d.Info == nil {
		return ""
	}
	return d.Info.Guidance()
}
