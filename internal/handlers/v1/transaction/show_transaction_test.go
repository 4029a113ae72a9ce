package transaction

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/alecthomas/kingpin/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/decline-insights/internal/catalog"
	"github.com/carson-networks/decline-insights/internal/model"
	"github.com/carson-networks/decline-insights/internal/service"
)

type mockTransactionGetter struct {
	mock.Mock
}

func (m *mockTransactionGetter) GetTransaction(ctx context.Context, id string) (service.TransactionDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.TransactionDetail), args.Error(1)
}

func declinedDetail() service.TransactionDetail {
	info := catalog.MustLookup(model.InsufficientFunds)
	return service.TransactionDetail{Transaction: declinedTx(), Info: &info}
}

// -- Register tests --

func TestShowRegister_RequiresID(t *testing.T) {
	app := kingpin.New("test", "")
	NewShowTransactionHandler(new(mockTransactionGetter)).Register(app)

	_, err := app.Parse([]string{"show"})

	assert.Error(t, err)
}

func TestShowRegister_BindsID(t *testing.T) {
	app := kingpin.New("test", "")
	h := NewShowTransactionHandler(new(mockTransactionGetter))
	h.Register(app)

	_, err := app.Parse([]string{"show", "TXN-00042"})

	require.NoError(t, err)
	assert.Equal(t, "TXN-00042", h.ID)
}

// -- Handle tests --

func TestShowTransaction_Declined(t *testing.T) {
	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransaction", mock.Anything, "TXN-00007").Return(declinedDetail(), nil)

	h := NewShowTransactionHandler(mockSvc)
	h.ID = "TXN-00007"
	logData := createTestLogData()

	var buf bytes.Buffer
	require.NoError(t, h.Handle(context.Background(), &buf, logData))

	out := buf.String()
	assert.Contains(t, out, "Nguyen Van (CUST-0420)")
	assert.Contains(t, out, "1,234.50 USD")
	assert.Contains(t, out, "Insufficient Funds (soft)")
	assert.Contains(t, out, "Recovery")
	assert.Contains(t, out, declinedDetail().Info.RecoveryPath)
	assert.NotContains(t, out, "Escalation")
	assert.Contains(t, out, "High value")
	assert.Equal(t, model.StatusDeclined, logData.Log().Data["status"])
	mockSvc.AssertExpectations(t)
}

func TestShowTransaction_HardDeclineShowsEscalation(t *testing.T) {
	info := catalog.MustLookup(model.LostStolenCard)
	tx := declinedTx()
	tx.DeclineCode = model.LostStolenCard
	tx.DeclineCategory = model.CategoryHard

	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransaction", mock.Anything, mock.Anything).
		Return(service.TransactionDetail{Transaction: tx, Info: &info}, nil)

	var buf bytes.Buffer
	require.NoError(t, NewShowTransactionHandler(mockSvc).Handle(context.Background(), &buf, createTestLogData()))

	assert.Contains(t, buf.String(), "Escalation")
	assert.Contains(t, buf.String(), info.EscalationPath)
}

func TestShowTransaction_Approved(t *testing.T) {
	tx := declinedTx()
	tx.Status = model.StatusApproved
	tx.DeclineCode = ""
	tx.DeclineCategory = ""
	tx.IsHighValue = false

	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransaction", mock.Anything, mock.Anything).
		Return(service.TransactionDetail{Transaction: tx}, nil)

	var buf bytes.Buffer
	require.NoError(t, NewShowTransactionHandler(mockSvc).Handle(context.Background(), &buf, createTestLogData()))

	assert.Contains(t, buf.String(), "approved")
	assert.NotContains(t, buf.String(), "Decline")
	assert.NotContains(t, buf.String(), "High value")
}

func TestShowTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransaction", mock.Anything, "TXN-99999").
		Return(service.TransactionDetail{}, fmt.Errorf("%w: TXN-99999", service.ErrTransactionNotFound))

	h := NewShowTransactionHandler(mockSvc)
	h.ID = "TXN-99999"

	var buf bytes.Buffer
	err := h.Handle(context.Background(), &buf, createTestLogData())

	assert.ErrorIs(t, err, service.ErrTransactionNotFound)
	assert.Empty(t, buf.String())
}
