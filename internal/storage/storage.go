package storage

import (
	"slices"

	"github.com/carson-networks/decline-insights/internal/model"
)

// Storage owns the transaction population. It is built once at process
// start and never changes afterwards, so it is safe to share between
// goroutines without locking.
type Storage struct {
	transactions []model.Transaction
	byID         map[string]int
}

// NewStorage takes a private copy of txns. Order is preserved.
func NewStorage(txns []model.Transaction) *Storage {
	owned := slices.Clone(txns)
	byID := make(map[string]int, len(owned))
	for i, tx := range owned {
		byID[tx.ID] = i
	}

	return &Storage{
		transactions: owned,
		byID:         byID,
	}
}

// Transactions returns a copy of the population in its permanent order.
func (s *Storage) Transactions() []model.Transaction {
	return slices.Clone(s.transactions)
}

// Len returns the population size.
func (s *Storage) Len() int {
	return len(s.transactions)
}

// FindByID retrieves a transaction by id.
func (s *Storage) FindByID(id string) (model.Transaction, bool) {
	i, ok := s.byID[id]
	if !ok {
		return model.Transaction{}, false
	}
	return s.transactions[i], true
}
