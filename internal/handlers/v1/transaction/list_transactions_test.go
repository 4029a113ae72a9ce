package transaction

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/decline-insights/internal/logging"
	"github.com/carson-networks/decline-insights/internal/model"
	"github.com/carson-networks/decline-insights/internal/query"
	"github.com/carson-networks/decline-insights/internal/render"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, state query.FilterState) query.Result {
	args := m.Called(ctx, state)
	return args.Get(0).(query.Result)
}

func createTestLogData() *logging.LogData {
	logger, _ := test.NewNullLogger()
	return logging.NewLogData(logger)
}

func declinedTx() model.Transaction {
	return model.Transaction{
		ID:              "TXN-00007",
		CustomerID:      "CUST-0420",
		CustomerName:    "Nguyen Van",
		Amount:          decimal.RequireFromString("1234.50"),
		Currency:        "USD",
		Status:          model.StatusDeclined,
		DeclineCode:     model.InsufficientFunds,
		DeclineCategory: model.CategorySoft,
		PaymentMethod:   model.DigitalWallet,
		Country:         model.Vietnam,
		Timestamp:       time.Date(2026, 1, 29, 14, 5, 0, 0, time.UTC),
		IsHighValue:     true,
	}
}

func singleResult() query.Result {
	tx := declinedTx()
	return query.Result{
		Items:       []model.Transaction{tx},
		Filtered:    []model.Transaction{tx},
		TotalCount:  1,
		TotalPages:  1,
		CurrentPage: 1,
	}
}

func parseList(t *testing.T, args ...string) *ListTransactionsHandler {
	t.Helper()
	app := kingpin.New("test", "")
	h := NewListTransactionsHandler(new(mockTransactionLister))
	h.Register(app.Command("transactions", ""))
	_, err := app.Parse(append([]string{"transactions", "list"}, args...))
	require.NoError(t, err)
	return h
}

// -- ListFlags.FilterState tests --

func TestFilterState_NoFlagsIsDefault(t *testing.T) {
	h := parseList(t)

	assert.Equal(t, query.DefaultFilterState(), h.Flags.FilterState())
}

func TestFilterState_AllFlags(t *testing.T) {
	h := parseList(t,
		"--search", "nguyen", "--from", "2026-01-20", "--to", "2026-01-31",
		"--status", "declined", "--method", "digital_wallet", "--category", "soft",
		"--country", "VN", "--min", "100", "--max", "2000",
		"--sort", "amount", "--dir", "asc", "--page", "3",
	)

	state := h.Flags.FilterState()

	assert.Equal(t, "nguyen", state.Search)
	assert.Equal(t, "2026-01-20", state.DateFrom)
	assert.Equal(t, "2026-01-31", state.DateTo)
	assert.Equal(t, "declined", state.Status)
	assert.Equal(t, "digital_wallet", state.PaymentMethod)
	assert.Equal(t, "soft", state.DeclineCategory)
	assert.Equal(t, "VN", state.Country)
	assert.Equal(t, "100", state.AmountMin)
	assert.Equal(t, "2000", state.AmountMax)
	assert.Equal(t, query.SortByAmount, state.SortBy)
	assert.Equal(t, query.Asc, state.SortDir)
	assert.Equal(t, 3, state.Page)
}

func TestFilterState_CodePreselectsDeclined(t *testing.T) {
	h := parseList(t, "--code", "fraud_suspected")

	state := h.Flags.FilterState()

	assert.Equal(t, "fraud_suspected", state.DeclineCode)
	assert.Equal(t, "declined", state.Status)
}

func TestFilterState_ExplicitStatusWinsOverPreselection(t *testing.T) {
	h := parseList(t, "--code", "fraud_suspected", "--status", "all")

	assert.Equal(t, query.All, h.Flags.FilterState().Status)
}

func TestRegister_RejectsUnknownSortKey(t *testing.T) {
	app := kingpin.New("test", "")
	NewListTransactionsHandler(new(mockTransactionLister)).Register(app)

	_, err := app.Parse([]string{"list", "--sort", "customer"})

	assert.Error(t, err)
}

// -- Handle tests --

func TestListTransactions_Text(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, query.DefaultFilterState()).Return(singleResult())

	var buf bytes.Buffer
	err := NewListTransactionsHandler(mockSvc).Handle(context.Background(), &buf, createTestLogData())

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "TXN-00007")
	assert.Contains(t, out, "Nguyen Van")
	assert.Contains(t, out, "$1,235 !")
	assert.Contains(t, out, "Insufficient Funds (soft)")
	assert.Contains(t, out, "Digital Wallet")
	assert.Contains(t, out, "Jan 29, 2026")
	assert.Contains(t, out, "02:05 PM")
	assert.Contains(t, out, "page 1 of 1, 1 transactions")
	mockSvc.AssertExpectations(t)
}

func TestListTransactions_JSON(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything).Return(singleResult())

	h := NewListTransactionsHandler(mockSvc)
	h.Format = render.JSON
	var buf bytes.Buffer
	require.NoError(t, h.Handle(context.Background(), &buf, createTestLogData()))

	var page struct {
		Transactions []struct {
			ID     string `json:"id"`
			Amount string `json:"amount"`
		} `json:"transactions"`
		TotalCount int `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &page))
	require.Len(t, page.Transactions, 1)
	assert.Equal(t, "TXN-00007", page.Transactions[0].ID)
	assert.Equal(t, "1234.5", page.Transactions[0].Amount)
	assert.Equal(t, 1, page.TotalCount)
	assert.NotContains(t, buf.String(), "Filtered")
}

func TestListTransactions_PassesFlags(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, mock.MatchedBy(func(s query.FilterState) bool {
		return s.Country == "TH" && s.Page == 2
	})).Return(query.Result{TotalPages: 1, CurrentPage: 1})

	h := NewListTransactionsHandler(mockSvc)
	h.Flags = ListFlags{Country: "TH", Page: 2}
	logData := createTestLogData()

	var buf bytes.Buffer
	require.NoError(t, h.Handle(context.Background(), &buf, logData))

	assert.Contains(t, buf.String(), "page 1 of 1, 0 transactions")
	assert.Equal(t, 0, logData.Log().Data["transactionCount"])
	mockSvc.AssertExpectations(t)
}
