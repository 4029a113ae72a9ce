package transaction

import (
	"context"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"github.com/carson-networks/decline-insights/internal/logging"
	"github.com/carson-networks/decline-insights/internal/query"
	"github.com/carson-networks/decline-insights/internal/render"
)

// transactionLister is the interface for querying transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, state query.FilterState) query.Result
}

// ListFlags holds the filter flags of the list command. Empty fields leave
// the corresponding filter at its default.
type ListFlags struct {
	Search    string
	DateFrom  string
	DateTo    string
	Status    string
	Method    string
	Code      string
	Category  string
	Country   string
	AmountMin string
	AmountMax string
	SortBy    string
	SortDir   string
	Page      int
}

// ListTransactionsHandler prints a filtered, sorted page of transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
	Format             render.Format
	Flags              ListFlags
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc, Format: render.Text}
}

// Register adds the list command under parent.
func (h *ListTransactionsHandler) Register(parent commander) *kingpin.CmdClause {
	cmd := parent.Command("list", "List transactions matching the given filters.")
	cmd.Flag("search", "Case-insensitive match on transaction id or customer name.").StringVar(&h.Flags.Search)
	cmd.Flag("from", "Earliest date, YYYY-MM-DD, inclusive.").StringVar(&h.Flags.DateFrom)
	cmd.Flag("to", "Latest date, YYYY-MM-DD, inclusive.").StringVar(&h.Flags.DateTo)
	cmd.Flag("status", "approved, declined or all.").StringVar(&h.Flags.Status)
	cmd.Flag("method", "credit_card, digital_wallet, bank_transfer or all.").StringVar(&h.Flags.Method)
	cmd.Flag("code", "Decline code. Also narrows to declined transactions.").StringVar(&h.Flags.Code)
	cmd.Flag("category", "soft, hard or all.").StringVar(&h.Flags.Category)
	cmd.Flag("country", "TH, VN, ID, PH or all.").StringVar(&h.Flags.Country)
	cmd.Flag("min", "Minimum amount, inclusive.").StringVar(&h.Flags.AmountMin)
	cmd.Flag("max", "Maximum amount, inclusive.").StringVar(&h.Flags.AmountMax)
	cmd.Flag("sort", "Sort key.").Default(string(query.SortByDate)).
		EnumVar(&h.Flags.SortBy, string(query.SortByDate), string(query.SortByAmount))
	cmd.Flag("dir", "Sort direction.").Default(string(query.Desc)).
		EnumVar(&h.Flags.SortDir, string(query.Asc), string(query.Desc))
	cmd.Flag("page", "Page number, clamped to the available pages.").Default("1").IntVar(&h.Flags.Page)
	return cmd
}

// FilterState applies the flags to a fresh state the way the dashboard
// applies discrete filter actions.
func (f ListFlags) FilterState() query.FilterState {
	state := query.NewFilterState(f.Code)

	setters := []struct {
		value string
		set   func(string)
	}{
		{f.Search, state.SetSearch},
		{f.DateFrom, state.SetDateFrom},
		{f.DateTo, state.SetDateTo},
		{f.Status, state.SetStatus},
		{f.Method, state.SetPaymentMethod},
		{f.Category, state.SetDeclineCategory},
		{f.Country, state.SetCountry},
		{f.AmountMin, state.SetAmountMin},
		{f.AmountMax, state.SetAmountMax},
	}
	for _, s := range setters {
		if s.value != "" {
			s.set(s.value)
		}
	}

	if f.SortBy != "" {
		state.SetSortBy(query.SortKey(f.SortBy))
	}
	if f.SortDir != "" {
		state.SetSortDir(query.SortDirection(f.SortDir))
	}
	if f.Page > 0 {
		state.SetPage(f.Page)
	}
	return state
}

func (h *ListTransactionsHandler) Handle(ctx context.Context, w io.Writer, logData *logging.LogData) error {
	state := h.Flags.FilterState()
	logData.AddData("requestedPage", state.Page)

	result := h.TransactionService.ListTransactions(ctx, state)
	logData.AddData("transactionCount", len(result.Items))

	return render.Write(w, h.Format, newPage(result))
}
