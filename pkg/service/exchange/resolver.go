package exchange

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/usdtbob/pkg/domain"
	"github.com/amirasaad/usdtbob/pkg/provider"
	"github.com/amirasaad/usdtbob/pkg/repository"
)

// StageFunc produces a quote or explains why it could not.
type StageFunc func(ctx context.Context) (domain.RateQuote, error)

// Stage is one step of the fallback chain.
type Stage struct {
	Name string
	Run  StageFunc
}

// Resolver walks its stages in order and returns the first quote obtained.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	stages []Stage
	logger *slog.Logger
}

// NewResolver creates a resolver from explicit stages.
func NewResolver(logger *slog.Logger, stages ...Stage) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		stages: stages,
		logger: logger,
	}
}

// New creates the default chain: live order book, then the last stored
// sample, then the secondary provider.
func New(
	fetcher provider.QuoteFetcher,
	repo repository.RateRepository,
	logger *slog.Logger,
) *Resolver {
	return NewResolver(logger,
		LiveStage(fetcher),
		StoredStage(repo),
		SecondaryStage(),
	)
}

// LiveStage asks the provider for a fresh quote.
func LiveStage(fetcher provider.QuoteFetcher) Stage {
	return Stage{
		Name: string(domain.SourceLive),
		Run: func(ctx context.Context) (domain.RateQuote, error) {
			return fetcher.FetchLiveQuote(ctx)
		},
	}
}

// StoredStage reads the most recent persisted sample.
func StoredStage(repo repository.RateRepository) Stage {
	return Stage{
		Name: string(domain.SourceStored),
		Run: func(ctx context.Context) (domain.RateQuote, error) {
			latest, err := repo.Latest(ctx)
			if err != nil {
				return domain.RateQuote{}, err
			}
			if latest == nil {
				return domain.RateQuote{}, errors.New("no stored samples")
			}
			return domain.QuoteFromSample(*latest, domain.SourceStored), nil
		},
	}
}

// SecondaryStage is the slot for a second rate source. None is configured,
// so it always fails.
func SecondaryStage() Stage {
	return Stage{
		Name: string(domain.SourceSecondary),
		Run: func(ctx context.Context) (domain.RateQuote, error) {
			return domain.RateQuote{}, domain.ErrSecondaryUnavailable
		},
	}
}

// Resolve returns the first quote any stage produces. When all stages fail
// the error wraps domain.ErrNoRateAvailable together with every stage error.
func (r *Resolver) Resolve(ctx context.Context) (domain.RateQuote, error) {
	causes := make([]error, 0, len(r.stages))
	for _, stage := range r.stages {
		if err := ctx.Err(); err != nil {
			causes = append(causes, err)
			break
		}
		quote, err := stage.Run(ctx)
		if err == nil {
			r.logger.Debug("Rate resolved",
				"stage", stage.Name,
				"source", quote.Source,
				"min_price", quote.MinPrice.String(),
				"avg_price", quote.AvgPrice.String(),
			)
			return quote, nil
		}
		r.logger.Warn("Rate stage failed, falling back",
			"stage", stage.Name,
			"error", err,
		)
		causes = append(causes, fmt.Errorf("%s: %w", stage.Name, err))
	}

	r.logger.Error("No rate available from any source", "stages", len(r.stages))
	return domain.RateQuote{}, fmt.Errorf("%w: %w", domain.ErrNoRateAvailable, errors.Join(causes...))
}
