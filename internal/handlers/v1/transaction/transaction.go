package transaction

import (
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"github.com/carson-networks/decline-insights/internal/format"
	"github.com/carson-networks/decline-insights/internal/model"
	"github.com/carson-networks/decline-insights/internal/query"
	"github.com/carson-networks/decline-insights/internal/render"
	"github.com/carson-networks/decline-insights/internal/service"
)

type commander interface {
	Command(name, help string) *kingpin.CmdClause
}

// Page is one page of transaction query results.
type Page struct {
	Transactions []model.Transaction `json:"transactions"`
	TotalCount   int                 `json:"totalCount"`
	TotalPages   int                 `json:"totalPages"`
	CurrentPage  int                 `json:"currentPage"`
}

func newPage(result query.Result) Page {
	return Page{
		Transactions: result.Items,
		TotalCount:   result.TotalCount,
		TotalPages:   result.TotalPages,
		CurrentPage:  result.CurrentPage,
	}
}

func (p Page) WriteText(w io.Writer) error {
	t := render.NewTable(w)
	t.Row("ID", "CUSTOMER", "AMOUNT", "STATUS", "DECLINE", "METHOD", "COUNTRY", "DATE", "TIME")
	for _, tx := range p.Transactions {
		decline := "-"
		if tx.IsDeclined() {
			decline = fmt.Sprintf("%s (%s)", tx.DeclineCode.Label(), tx.DeclineCategory)
		}
		amount := format.Currency(tx.Amount)
		if tx.IsHighValue {
			amount += " !"
		}
		t.Row(tx.ID, tx.CustomerName, amount, string(tx.Status), decline,
			tx.PaymentMethod.Label(), tx.Country.Label(), format.Date(tx.Timestamp), format.Time(tx.Timestamp))
	}
	if err := t.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "page %d of %d, %s transactions\n",
		p.CurrentPage, p.TotalPages, format.Number(p.TotalCount))
	return err
}

// Detail is a single transaction with its decline guidance.
type Detail service.TransactionDetail

func (d Detail) WriteText(w io.Writer) error {
	tx := d.Transaction
	t := render.NewTable(w)
	t.Row("ID", tx.ID)
	t.Row("Customer", fmt.Sprintf("%s (%s)", tx.CustomerName, tx.CustomerID))
	t.Row("Amount", fmt.Sprintf("%s %s", format.Amount(tx.Amount), tx.Currency))
	t.Row("Status", string(tx.Status))
	t.Row("Method", tx.PaymentMethod.Label())
	t.Row("Country", tx.Country.Label())
	t.Row("Date", format.Date(tx.Timestamp)+" "+format.Time(tx.Timestamp))
	if tx.IsHighValue {
		t.Row("High value", "yes")
	}
	if d.Info != nil {
		t.Row("Decline", fmt.Sprintf("%s (%s)", d.Info.Label, d.Info.Category))
		t.Row("Description", d.Info.Description)
		if d.Info.Category == model.CategorySoft {
			t.Row("Recovery", d.Info.RecoveryPath)
		} else {
			t.Row("Escalation", d.Info.EscalationPath)
		}
	}
	return t.Flush()
}
