package app

import (
	"errors"
	"log/slog"

	"github.com/amirasaad/usdtbob/pkg/config"
	"github.com/amirasaad/usdtbob/pkg/provider"
	"github.com/amirasaad/usdtbob/pkg/repository"
	"github.com/amirasaad/usdtbob/pkg/service/collector"
	"github.com/amirasaad/usdtbob/pkg/service/exchange"
	"github.com/amirasaad/usdtbob/pkg/service/history"
	"github.com/gofiber/fiber/v2"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	Fetcher        provider.QuoteFetcher
	RateRepository repository.RateRepository
	LimiterStorage fiber.Storage
	Logger         *slog.Logger
	// Closers release infrastructure on shutdown, in order.
	Closers []func() error
}

// Close runs every closer and joins their errors.
func (d *Deps) Close() error {
	var errs []error
	for _, c := range d.Closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type App struct {
	Deps      *Deps
	Config    *config.App
	Resolver  *exchange.Resolver
	Converter *exchange.Converter
	Collector *collector.Collector
	History   *history.Service
}

func New(deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.Resolver = exchange.New(deps.Fetcher, deps.RateRepository, deps.Logger.With("service", "resolver"))
	app.Converter = exchange.NewConverter(app.Resolver, deps.Logger.With("service", "converter"))
	app.Collector = collector.New(
		deps.Fetcher,
		deps.RateRepository,
		cfg.Collector,
		deps.Logger.With("service", "collector"),
	)
	app.History = history.New(deps.RateRepository, deps.Logger.With("service", "history"), nil)
	return app
}
