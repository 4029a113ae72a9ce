package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/carson-networks/decline-insights/internal/catalog"
	"github.com/carson-networks/decline-insights/internal/logging"
	"github.com/carson-networks/decline-insights/internal/query"
	"github.com/carson-networks/decline-insights/internal/storage"
)

// ErrTransactionNotFound is returned when no transaction has the given id.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions evaluates state against the full population.
func (s *TransactionService) ListTransactions(ctx context.Context, state query.FilterState) query.Result {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddToExistingTiming("queryMs")
	}
	result := query.Run(s.storage.Transactions(), state)
	if stopTimer != nil {
		stopTimer()
	}

	if logData != nil {
		logData.AddData("matched", result.TotalCount)
		logData.AddData("page", result.CurrentPage)
	}
	return result
}

// GetTransaction returns a transaction with its decline guidance.
func (s *TransactionService) GetTransaction(ctx context.Context, id string) (TransactionDetail, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", id)
	}

	tx, ok := s.storage.FindByID(id)
	if !ok {
		return TransactionDetail{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
	}

	detail := TransactionDetail{Transaction: tx}
	if tx.IsDeclined() {
		info := catalog.MustLookup(tx.DeclineCode)
		detail.Info = &info
	}
	return detail, nil
}
