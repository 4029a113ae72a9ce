package transaction

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/carson-networks/decline-insights/internal/logging"
	"github.com/carson-networks/decline-insights/internal/query"
	"github.com/carson-networks/decline-insights/internal/render"
)

// SearchTransactionsHandler treats each input line as the new contents of
// the search box. Lines arriving faster than Interval are coalesced and only
// the last of a burst is queried and printed.
type SearchTransactionsHandler struct {
	TransactionService transactionLister
	Format             render.Format
	Interval           time.Duration
	In                 io.Reader
}

// NewSearchTransactionsHandler creates a new SearchTransactionsHandler.
func NewSearchTransactionsHandler(svc transactionLister, in io.Reader) *SearchTransactionsHandler {
	return &SearchTransactionsHandler{
		TransactionService: svc,
		Format:             render.Text,
		Interval:           query.DefaultDebounce,
		In:                 in,
	}
}

// Register adds the search command under parent.
func (h *SearchTransactionsHandler) Register(parent commander) *kingpin.CmdClause {
	return parent.Command("search", "Search interactively, reading search text line by line from stdin.")
}

func (h *SearchTransactionsHandler) Handle(ctx context.Context, w io.Writer, logData *logging.LogData) error {
	var (
		mu        sync.Mutex
		renderErr error
		applied   int
	)

	state := query.DefaultFilterState()
	debouncer := query.NewDebouncer(h.Interval, func(search string) {
		state.SetSearch(search)
		result := h.TransactionService.ListTransactions(ctx, state)

		mu.Lock()
		defer mu.Unlock()
		applied++
		if renderErr != nil {
			return
		}
		if h.Format == render.Text || h.Format == "" {
			if _, err := fmt.Fprintf(w, "search %q\n", search); err != nil {
				renderErr = err
				return
			}
		}
		renderErr = render.Write(w, h.Format, newPage(result))
	})

	debouncer.Start()
	submitted := 0
	scanner := bufio.NewScanner(h.In)
	for scanner.Scan() && ctx.Err() == nil {
		debouncer.Submit(strings.TrimSpace(scanner.Text()))
		submitted++
	}
	debouncer.Stop()

	logData.AddData("linesRead", submitted)
	logData.AddData("searchesApplied", applied)

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read search input: %w", err)
	}
	return renderErr
}
