package collector

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/usdtbob/internal/fixtures/mocks"
	"github.com/amirasaad/usdtbob/pkg/config"
	"github.com/amirasaad/usdtbob/pkg/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var defaultCfg = config.Collector{MaxAttempts: 3, BaseDelay: 5 * time.Second}

type recordedSleeps struct {
	waits []time.Duration
}

func (r *recordedSleeps) sleep(_ context.Context, d time.Duration) error {
	r.waits = append(r.waits, d)
	return nil
}

func (r *recordedSleeps) total() time.Duration {
	var sum time.Duration
	for _, d := range r.waits {
		sum += d
	}
	return sum
}

func quote() domain.RateQuote {
	return domain.RateQuote{
		MinPrice:   decimal.RequireFromString("6.85"),
		AvgPrice:   decimal.RequireFromString("6.95"),
		Source:     domain.SourceLive,
		ObservedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newFetcher(t *testing.T) *mocks.MockQuoteFetcher {
	f := mocks.NewMockQuoteFetcher(t)
	f.On("Name").Return("test-p2p").Maybe()
	return f
}

func TestCollector_FirstAttemptSucceeds(t *testing.T) {
	fetcher := newFetcher(t)
	repo := mocks.NewMockRateRepository(t)
	sleeps := &recordedSleeps{}

	fetcher.On("FetchLiveQuote", mock.Anything).Return(quote(), nil).Once()
	repo.On("Append", mock.Anything, quote().Sample()).Return(nil).Once()

	sample, err := New(fetcher, repo, defaultCfg, discard, WithSleep(sleeps.sleep)).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "6.85", sample.MinPrice.String())
	assert.Empty(t, sleeps.waits)
}

func TestCollector_RetriesWithBackoff(t *testing.T) {
	fetcher := newFetcher(t)
	repo := mocks.NewMockRateRepository(t)
	sleeps := &recordedSleeps{}

	fetcher.On("FetchLiveQuote", mock.Anything).Return(domain.RateQuote{}, domain.ErrTransport).Twice()
	fetcher.On("FetchLiveQuote", mock.Anything).Return(quote(), nil).Once()
	repo.On("Append", mock.Anything, mock.AnythingOfType("domain.RateSample")).Return(nil).Once()

	_, err := New(fetcher, repo, defaultCfg, discard, WithSleep(sleeps.sleep)).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []time.Duration{5 * time.Second, 10 * time.Second}, sleeps.waits)
}

func TestCollector_AllAttemptsFail(t *testing.T) {
	fetcher := newFetcher(t)
	repo := mocks.NewMockRateRepository(t)
	sleeps := &recordedSleeps{}

	fetcher.On("FetchLiveQuote", mock.Anything).Return(domain.RateQuote{}, domain.ErrNoListings).Times(3)

	_, err := New(fetcher, repo, defaultCfg, discard, WithSleep(sleeps.sleep)).Run(context.Background())

	require.ErrorIs(t, err, domain.ErrNoRateAvailable)
	assert.ErrorIs(t, err, domain.ErrNoListings)
	assert.Equal(t, 15*time.Second, sleeps.total(), "no wait after the final attempt")
	repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestCollector_AppendFailureIsReturned(t *testing.T) {
	fetcher := newFetcher(t)
	repo := mocks.NewMockRateRepository(t)

	fetcher.On("FetchLiveQuote", mock.Anything).Return(quote(), nil).Once()
	repo.On("Append", mock.Anything, mock.Anything).Return(domain.ErrStoreWrite).Once()

	_, err := New(fetcher, repo, defaultCfg, discard, WithSleep((&recordedSleeps{}).sleep)).Run(context.Background())

	require.ErrorIs(t, err, domain.ErrStoreWrite)
}

func TestCollector_CancelledWhileWaiting(t *testing.T) {
	fetcher := newFetcher(t)
	repo := mocks.NewMockRateRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher.On("FetchLiveQuote", mock.Anything).Return(domain.RateQuote{}, domain.ErrTransport).Once()

	_, err := New(fetcher, repo, defaultCfg, discard).Run(ctx)

	require.ErrorIs(t, err, domain.ErrNoRateAvailable)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollector_Backoff(t *testing.T) {
	c := New(nil, nil, defaultCfg, discard)

	assert.Equal(t, 5*time.Second, c.Backoff(0))
	assert.Equal(t, 10*time.Second, c.Backoff(1))
	assert.Equal(t, 20*time.Second, c.Backoff(2))
}

func TestSleep_HonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Sleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))
}
