package codes

import (
	"context"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"github.com/carson-networks/decline-insights/internal/catalog"
	"github.com/carson-networks/decline-insights/internal/logging"
	"github.com/carson-networks/decline-insights/internal/render"
)

type codeLister interface {
	DeclineCodes(ctx context.Context) []catalog.DeclineCodeInfo
}

type commander interface {
	Command(name, help string) *kingpin.CmdClause
}

type Handler struct {
	AnalyticsService codeLister
	Format           render.Format
}

func NewHandler(svc codeLister) *Handler {
	return &Handler{AnalyticsService: svc, Format: render.Text}
}

// Register adds the codes command under parent.
func (h *Handler) Register(parent commander) *kingpin.CmdClause {
	return parent.Command("codes", "List decline codes with their descriptions and next steps.")
}

func (h *Handler) Handle(ctx context.Context, w io.Writer, logData *logging.LogData) error {
	codes := h.AnalyticsService.DeclineCodes(ctx)
	logData.AddData("codeCount", len(codes))
	return render.Write(w, h.Format, Report(codes))
}

type Report []catalog.DeclineCodeInfo

func (r Report) WriteText(w io.Writer) error {
	t := render.NewTable(w)
	t.Row("CODE", "LABEL", "CATEGORY", "NEXT STEP")
	for _, info := range r {
		t.Row(string(info.Code), info.Label, string(info.Category), info.Guidance())
	}
	return t.Flush()
}
