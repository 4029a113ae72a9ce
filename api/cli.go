package api

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/decline-insights/internal/config"
	"github.com/carson-networks/decline-insights/internal/handlers/v1/alert"
	"github.com/carson-networks/decline-insights/internal/handlers/v1/codes"
	"github.com/carson-networks/decline-insights/internal/handlers/v1/overview"
	"github.com/carson-networks/decline-insights/internal/handlers/v1/transaction"
	"github.com/carson-networks/decline-insights/internal/logging"
	"github.com/carson-networks/decline-insights/internal/render"
	"github.com/carson-networks/decline-insights/internal/service"
)

type handlerFunc func(ctx context.Context, w io.Writer, logData *logging.LogData) error

type route struct {
	name   string
	handle handlerFunc
}

// CLI maps command lines onto the v1 handlers.
type CLI struct {
	Stdout io.Writer
	Stderr io.Writer

	app        *kingpin.Application
	configPath string
	routes     map[string]route

	overview *overview.Handler
	list     *transaction.ListTransactionsHandler
	show     *transaction.ShowTransactionHandler
	search   *transaction.SearchTransactionsHandler
	alerts   *alert.Handler
	codes    *codes.Handler
}

// NewCLI registers every command against svc. Search text is read from stdin.
func NewCLI(svc *service.Service, stdin io.Reader, stdout, stderr io.Writer) *CLI {
	c := &CLI{
		Stdout:   stdout,
		Stderr:   stderr,
		app:      kingpin.New("decline-insights", "Payment decline analytics over a generated transaction population."),
		routes:   make(map[string]route),
		overview: overview.NewHandler(svc.Analytics),
		list:     transaction.NewListTransactionsHandler(svc.Transaction),
		show:     transaction.NewShowTransactionHandler(svc.Transaction),
		search:   transaction.NewSearchTransactionsHandler(svc.Transaction, stdin),
		alerts:   alert.NewHandler(svc.Analytics),
		codes:    codes.NewHandler(svc.Analytics),
	}

	c.app.UsageWriter(stdout)
	c.app.ErrorWriter(stderr)
	c.app.Terminate(nil)
	c.app.Flag("config", "Path to the application config file").Short('c').StringVar(&c.configPath)

	c.addRoute(c.overview.Register(c.app), "Overview", c.overview.Handle)
	transactions := c.app.Command("transactions", "Browse individual transactions.")
	c.addRoute(c.list.Register(transactions), "ListTransactions", c.list.Handle)
	c.addRoute(c.show.Register(transactions), "ShowTransaction", c.show.Handle)
	c.addRoute(c.search.Register(transactions), "SearchTransactions", c.search.Handle)
	c.addRoute(c.alerts.Register(c.app), "Alerts", c.alerts.Handle)
	c.addRoute(c.codes.Register(c.app), "Codes", c.codes.Handle)

	return c
}

func (c *CLI) addRoute(cmd *kingpin.CmdClause, name string, handle handlerFunc) {
	c.routes[cmd.FullCommand()] = route{name: name, handle: handle}
}

// Run parses args, loads configuration and runs the selected command.
func (c *CLI) Run(ctx context.Context, args []string) error {
	selected, err := c.app.Parse(args)
	if err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}

	r, ok := c.routes[selected]
	if !ok {
		// --help and friends select no command.
		return nil
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.configure(cfg)

	logger := logging.SetupLogging(cfg.Logger, c.Stderr)
	logger.AddHook(logging.FieldHook{Key: "application", Value: cfg.Application})
	logger.AddHook(logging.FieldHook{Key: "runId", Value: uuid.Must(uuid.NewV4()).String()})
	logger.WithFields(logrus.Fields{
		"command": selected,
		"output":  cfg.Output.Format,
	}).Debug("CLI.Run.selected")

	return logging.LoggingWrapper(r.name, logger, r.handle)(ctx, c.Stdout)
}

func (c *CLI) configure(cfg *config.Config) {
	format := render.Format(cfg.Output.Format)
	c.overview.Format = format
	c.list.Format = format
	c.show.Format = format
	c.search.Format = format
	c.search.Interval = cfg.Search.Debounce
	c.alerts.Format = format
	c.codes.Format = format
}
