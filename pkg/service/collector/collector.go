package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/usdtbob/pkg/config"
	"github.com/amirasaad/usdtbob/pkg/domain"
	"github.com/amirasaad/usdtbob/pkg/provider"
	"github.com/amirasaad/usdtbob/pkg/repository"
	"github.com/google/uuid"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the SleepFunc used outside of tests.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Collector fetches one live quote and persists it.
type Collector struct {
	fetcher     provider.QuoteFetcher
	repo        repository.RateRepository
	maxAttempts int
	baseDelay   time.Duration
	sleep       SleepFunc
	logger      *slog.Logger
}

// Option customises a Collector.
type Option func(*Collector)

// WithSleep replaces the wait between attempts.
func WithSleep(fn SleepFunc) Option {
	return func(c *Collector) { c.sleep = fn }
}

// New creates a collector.
func New(
	fetcher provider.QuoteFetcher,
	repo repository.RateRepository,
	cfg config.Collector,
	logger *slog.Logger,
	opts ...Option,
) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Collector{
		fetcher:     fetcher,
		repo:        repo,
		maxAttempts: cfg.MaxAttempts,
		baseDelay:   cfg.BaseDelay,
		sleep:       Sleep,
		logger:      logger,
	}
	if c.maxAttempts < 1 {
		c.maxAttempts = 1
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Backoff returns the wait after the given zero based failed attempt.
func (c *Collector) Backoff(attempt int) time.Duration {
	return c.baseDelay * time.Duration(1<<attempt)
}

// Run performs a single collection. It retries the fetch with exponential
// backoff and returns an error when no quote could be fetched or the
// sample could not be stored.
func (c *Collector) Run(ctx context.Context) (domain.RateSample, error) {
	log := c.logger.With("run_id", uuid.NewString())
	log.Info("Collecting USDT/BOB rate", "provider", c.fetcher.Name(), "max_attempts", c.maxAttempts)

	var lastErr error
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		quote, err := c.fetcher.FetchLiveQuote(ctx)
		if err == nil {
			sample := quote.Sample()
			if err := c.repo.Append(ctx, sample); err != nil {
				log.Error("Failed to store rate sample", "error", err)
				return domain.RateSample{}, err
			}
			log.Info("Rate sample stored",
				"attempt", attempt+1,
				"min_price", sample.MinPrice.String(),
				"avg_price", sample.AvgPrice.String(),
			)
			return sample, nil
		}

		lastErr = err
		log.Warn("Fetch attempt failed", "attempt", attempt+1, "error", err)
		if attempt == c.maxAttempts-1 {
			break
		}

		delay := c.Backoff(attempt)
		log.Debug("Waiting before next attempt", "delay", delay)
		if err := c.sleep(ctx, delay); err != nil {
			lastErr = err
			break
		}
	}

	log.Error("Giving up on rate collection", "error", lastErr)
	return domain.RateSample{}, fmt.Errorf("%w: %d attempts failed: %w", domain.ErrNoRateAvailable, c.maxAttempts, lastErr)
}
