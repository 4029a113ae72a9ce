package transaction

import (
	"context"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"github.com/carson-networks/decline-insights/internal/logging"
	"github.com/carson-networks/decline-insights/internal/render"
	"github.com/carson-networks/decline-insights/internal/service"
)

// transactionGetter is the interface for reading a single transaction.
type transactionGetter interface {
	GetTransaction(ctx context.Context, id string) (service.TransactionDetail, error)
}

// ShowTransactionHandler prints one transaction with its decline guidance.
type ShowTransactionHandler struct {
	TransactionService transactionGetter
	Format             render.Format
	ID                 string
}

// NewShowTransactionHandler creates a new ShowTransactionHandler.
func NewShowTransactionHandler(svc transactionGetter) *ShowTransactionHandler {
	return &ShowTransactionHandler{TransactionService: svc, Format: render.Text}
}

// Register adds the show command under parent.
func (h *ShowTransactionHandler) Register(parent commander) *kingpin.CmdClause {
	cmd := parent.Command("show", "Show one transaction and how to act on its decline.")
	cmd.Arg("id", "Transaction id, e.g. TXN-00042.").Required().StringVar(&h.ID)
	return cmd
}

func (h *ShowTransactionHandler) Handle(ctx context.Context, w io.Writer, logData *logging.LogData) error {
	stopTimer := logData.AddTiming("lookupMs")
	detail, err := h.TransactionService.GetTransaction(ctx, h.ID)
	stopTimer()
	if err != nil {
		return err
	}

	logData.AddData("status", detail.Transaction.Status)
	return render.Write(w, h.Format, Detail(detail))
}
