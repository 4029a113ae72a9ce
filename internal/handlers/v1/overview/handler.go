package overview

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"github.com/carson-networks/decline-insights/internal/aggregate"
	"github.com/carson-networks/decline-insights/internal/format"
	"github.com/carson-networks/decline-insights/internal/logging"
	"github.com/carson-networks/decline-insights/internal/model"
	"github.com/carson-networks/decline-insights/internal/render"
	"github.com/carson-networks/decline-insights/internal/service"
)

// overviewGetter is the interface for reading the dashboard snapshot.
type overviewGetter interface {
	Overview(ctx context.Context) service.Overview
}

type commander interface {
	Command(name, help string) *kingpin.CmdClause
}

// Handler prints the dashboard overview.
type Handler struct {
	AnalyticsService overviewGetter
	Format           render.Format
}

// NewHandler creates a new overview Handler.
func NewHandler(svc overviewGetter) *Handler {
	return &Handler{AnalyticsService: svc, Format: render.Text}
}

// Register adds the overview command under parent.
func (h *Handler) Register(parent commander) *kingpin.CmdClause {
	return parent.Command("overview", "Show KPIs, decline reasons, breakdowns and trends.")
}

func (h *Handler) Handle(ctx context.Context, w io.Writer, logData *logging.LogData) error {
	overview := h.AnalyticsService.Overview(ctx)
	logData.AddData("trendDays", len(overview.Trend))

	defer logData.AddTiming("renderMs")()
	return render.Write(w, h.Format, Report(overview))
}

// Report is the overview in its printable form.
type Report service.Overview

func (r Report) WriteText(w io.Writer) error {
	k := r.KPIs
	fmt.Fprintln(w, "KEY METRICS")
	t := render.NewTable(w)
	t.Row("Auth rate", format.Percent(k.AuthRate, 1), "prev "+format.Percent(k.PreviousAuthRate, 1))
	t.Row("Total volume", format.Currency(k.TotalVolume))
	t.Row("Declined", format.Number(k.TotalDeclined), fmt.Sprintf("soft %d / hard %d", k.SoftDeclined, k.HardDeclined))
	t.Row("Recoverable revenue", format.Currency(k.RecoverableRevenue))
	t.Row("Lost revenue", format.Currency(k.LostRevenue))
	t.Row("High-value failures", format.Number(k.HighValueFailures))
	if err := t.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nDECLINE REASONS")
	t = render.NewTable(w)
	t.Row("CODE", "LABEL", "CATEGORY", "COUNT", "SHARE")
	for _, d := range r.DeclineReasons {
		t.Row(string(d.Code), d.Label, string(d.Category), format.Number(d.Count), format.Percent(d.Percentage, 1))
	}
	t.Row("", "", "soft/hard",
		fmt.Sprintf("%d/%d", r.SoftHard.Soft, r.SoftHard.Hard),
		format.Percent(r.SoftHard.SoftPercent, 1)+"/"+format.Percent(r.SoftHard.HardPercent, 1))
	if err := t.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nPAYMENT METHODS")
	t = render.NewTable(w)
	t.Row("METHOD", "DECLINE RATE", "APPROVED", "DECLINED", "TOTAL")
	for _, m := range r.Methods {
		t.Row(m.Label, format.Percent(m.DeclineRate, 1), format.Number(m.Approved), format.Number(m.Declined), format.Number(m.Total))
	}
	if err := t.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nCOUNTRIES")
	t = render.NewTable(w)
	t.Row("COUNTRY", "DECLINE RATE", "APPROVED", "DECLINED", "TOTAL")
	for _, c := range r.Countries {
		t.Row(c.Label, format.Percent(c.DeclineRate, 1), format.Number(c.Approved), format.Number(c.Declined), format.Number(c.Total))
	}
	if err := t.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nDAILY TREND")
	t = render.NewTable(w)
	header := []string{"DATE", "APPROVAL", "TOTAL", "FLAGS"}
	for _, m := range model.PaymentMethods {
		header = append(header, m.Label())
	}
	for _, c := range model.Countries {
		header = append(header, c.Label())
	}
	t.Row(header...)
	for i, p := range r.Trend {
		row := []string{p.Label, format.Percent(p.ApprovalRate, 1), format.Number(p.Total), flags(p.IsWeekend, p.IsMonthEnd)}
		for _, m := range model.PaymentMethods {
			row = append(row, seriesCell(r.MethodTrend, i, m))
		}
		for _, c := range model.Countries {
			row = append(row, seriesCell(r.CountryTrend, i, c))
		}
		t.Row(row...)
	}
	return t.Flush()
}

func seriesCell[K comparable](points []aggregate.SeriesPoint[K], i int, key K) string {
	if i >= len(points) {
		return "-"
	}
	return format.Percent(points[i].Rates[key], 0)
}

func flags(weekend, monthEnd bool) string {
	switch {
	case weekend && monthEnd:
		return "weekend,month-end"
	case weekend:
		return "weekend"
	case monthEnd:
		return "month-end"
	}
	return "-"
}
