package alert

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/decline-insights/internal/aggregate"
	"github.com/carson-networks/decline-insights/internal/format"
	"github.com/carson-networks/decline-insights/internal/logging"
	"github.com/carson-networks/decline-insights/internal/model"
	"github.com/carson-networks/decline-insights/internal/render"
)

// Tabs of the alert list.
const (
	TabAll  = "all"
	TabSoft = "soft"
	TabHard = "hard"
)

// alertGetter is the interface for reading high-value alerts.
type alertGetter interface {
	HighValueAlerts(ctx context.Context) aggregate.HighValueAlerts
}

type commander interface {
	Command(name, help string) *kingpin.CmdClause
}

// Handler prints failed high-value transactions.
type Handler struct {
	AnalyticsService alertGetter
	Format           render.Format
	Tab              string
}

// NewHandler creates a new alert Handler.
func NewHandler(svc alertGetter) *Handler {
	return &Handler{AnalyticsService: svc, Format: render.Text, Tab: TabAll}
}

// Register adds the alerts command under parent.
func (h *Handler) Register(parent commander) *kingpin.CmdClause {
	cmd := parent.Command("alerts", "List declined high-value transactions, largest first.")
	cmd.Flag("tab", "Which declines to list.").Default(TabAll).EnumVar(&h.Tab, TabAll, TabSoft, TabHard)
	return cmd
}

func (h *Handler) Handle(ctx context.Context, w io.Writer, logData *logging.LogData) error {
	alerts := h.AnalyticsService.HighValueAlerts(ctx)

	report := Report{
		Tab:              h.Tab,
		TotalRecoverable: alerts.TotalRecoverable,
		TotalLost:        alerts.TotalLost,
		SoftCount:        len(alerts.Soft),
		HardCount:        len(alerts.Hard),
	}
	switch h.Tab {
	case TabSoft:
		report.Transactions = alerts.Soft
	case TabHard:
		report.Transactions = alerts.Hard
	default:
		report.Tab = TabAll
		report.Transactions = alerts.All
	}

	logData.AddData("tab", report.Tab)
	logData.AddData("alertCount", len(report.Transactions))
	return render.Write(w, h.Format, report)
}

// Report is one tab of the alert list with the overall totals.
type Report struct {
	Tab              string              `json:"tab"`
	Transactions     []model.Transaction `json:"transactions"`
	SoftCount        int                 `json:"softCount"`
	HardCount        int                 `json:"hardCount"`
	TotalRecoverable decimal.Decimal     `json:"totalRecoverable"`
	TotalLost        decimal.Decimal     `json:"totalLost"`
}

func (r Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d soft (%s recoverable), %d hard (%s lost)\n\n",
		r.SoftCount, format.Currency(r.TotalRecoverable), r.HardCount, format.Currency(r.TotalLost)); err != nil {
		return err
	}

	t := render.NewTable(w)
	t.Row("ID", "CUSTOMER", "AMOUNT", "DECLINE", "CATEGORY", "COUNTRY", "DATE")
	for _, tx := range r.Transactions {
		t.Row(tx.ID, tx.CustomerName, format.Currency(tx.Amount), tx.DeclineCode.Label(),
			string(tx.DeclineCategory), tx.Country.Label(), format.Date(tx.Timestamp))
	}
	return t.Flush()
}
