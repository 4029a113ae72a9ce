package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/decline-insights/internal/generator"
	"github.com/carson-networks/decline-insights/internal/logging"
	"github.com/carson-networks/decline-insights/internal/model"
	"github.com/carson-networks/decline-insights/internal/query"
	"github.com/carson-networks/decline-insights/internal/storage"
)

func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	ts := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	return storage.NewStorage([]model.Transaction{
		{
			ID: "TXN-00001", CustomerID: "CUST-0001", CustomerName: "Ana Cruz",
			Amount: decimal.RequireFromString("120.50"), Currency: "USD",
			Status: model.StatusApproved, PaymentMethod: model.CreditCard,
			Country: model.Philippines, Timestamp: ts,
		},
		{
			ID: "TXN-00002", CustomerID: "CUST-0002", CustomerName: "Minh Tran",
			Amount: decimal.RequireFromString("820.00"), Currency: "USD",
			Status: model.StatusDeclined, DeclineCode: model.ExpiredCard, DeclineCategory: model.CategoryHard,
			PaymentMethod: model.DigitalWallet, Country: model.Vietnam, Timestamp: ts.Add(time.Hour),
			IsHighValue: true,
		},
		{
			ID: "TXN-00003", CustomerID: "CUST-0003", CustomerName: "Siti Rahma",
			Amount: decimal.RequireFromString("60.00"), Currency: "USD",
			Status: model.StatusDeclined, DeclineCode: model.NetworkTimeout, DeclineCategory: model.CategorySoft,
			PaymentMethod: model.BankTransfer, Country: model.Indonesia, Timestamp: ts.Add(2 * time.Hour),
		},
	})
}

func testContext(t *testing.T) (context.Context, *logging.LogData) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	logData := logging.NewLogData(logger)
	return logging.WithLogData(context.Background(), logData), logData
}

// -- ListTransactions tests --

func TestListTransactions_DefaultState(t *testing.T) {
	svc := NewTransactionService(newTestStorage(t))

	result := svc.ListTransactions(context.Background(), query.DefaultFilterState())

	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
	require.Len(t, result.Items, 3)
	assert.Equal(t, "TXN-00003", result.Items[0].ID)
}

func TestListTransactions_PreselectedCode(t *testing.T) {
	svc := NewTransactionService(newTestStorage(t))

	result := svc.ListTransactions(context.Background(), query.NewFilterState(string(model.ExpiredCard)))

	require.Len(t, result.Items, 1)
	assert.Equal(t, "TXN-00002", result.Items[0].ID)
}

func TestListTransactions_RecordsLogData(t *testing.T) {
	svc := NewTransactionService(newTestStorage(t))
	ctx, logData := testContext(t)

	state := query.DefaultFilterState()
	state.SetStatus(string(model.StatusDeclined))
	svc.ListTransactions(ctx, state)

	entry := logData.Log()
	assert.Equal(t, 2, entry.Data["matched"])
	assert.Equal(t, 1, entry.Data["page"])
	assert.Contains(t, entry.Data, "queryMs")
}

func TestListTransactions_FullPopulation(t *testing.T) {
	svc := NewTransactionService(storage.NewStorage(generator.GeneratePopulation()))

	result := svc.ListTransactions(context.Background(), query.DefaultFilterState())

	assert.Equal(t, generator.Size, result.TotalCount)
	assert.Equal(t, 18, result.TotalPages)
	assert.Len(t, result.Items, query.PageSize)
}

// -- GetTransaction tests --

func TestGetTransaction_Declined(t *testing.T) {
	svc := NewTransactionService(newTestStorage(t))

	detail, err := svc.GetTransaction(context.Background(), "TXN-00002")

	require.NoError(t, err)
	assert.Equal(t, "Minh Tran", detail.Transaction.CustomerName)
	require.NotNil(t, detail.Info)
	assert.Equal(t, model.ExpiredCard, detail.Info.Code)
	assert.Equal(t, detail.Info.EscalationPath, detail.Guidance())
	assert.NotEmpty(t, detail.Guidance())
}

func TestGetTransaction_SoftDeclineHasRecoveryPath(t *testing.T) {
	svc := NewTransactionService(newTestStorage(t))

	detail, err := svc.GetTransaction(context.Background(), "TXN-00003")

	require.NoError(t, err)
	require.NotNil(t, detail.Info)
	assert.Equal(t, detail.Info.RecoveryPath, detail.Guidance())
}

func TestGetTransaction_Approved(t *testing.T) {
	svc := NewTransactionService(newTestStorage(t))
	ctx, logData := testContext(t)

	detail, err := svc.GetTransaction(ctx, "TXN-00001")

	require.NoError(t, err)
	assert.Nil(t, detail.Info)
	assert.Empty(t, detail.Guidance())
	assert.Equal(t, "TXN-00001", logData.Log().Data["transactionID"])
}

func TestGetTransaction_NotFound(t *testing.T) {
	svc := NewTransactionService(newTestStorage(t))

	_, err := svc.GetTransaction(context.Background(), "TXN-99999")

	assert.ErrorIs(t, err, ErrTransactionNotFound)
	assert.Contains(t, err.Error(), "TXN-99999")
}
