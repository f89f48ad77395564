package history

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/amirasaad/usdtbob/internal/fixtures/mocks"
	"github.com/amirasaad/usdtbob/pkg/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func storedRows(n int, start time.Time) []domain.RateSample {
	rows := make([]domain.RateSample, n)
	for i := range rows {
		rows[i] = domain.RateSample{
			RecordedAt: start.Add(time.Duration(i) * time.Hour),
			MinPrice:   decimal.RequireFromString("6.80"),
			AvgPrice:   decimal.RequireFromString("6.90"),
		}
	}
	return rows
}

func TestParseTimeframe(t *testing.T) {
	assert.Equal(t, Timeframe24h, ParseTimeframe("24h"))
	assert.Equal(t, Timeframe7d, ParseTimeframe("7d"))
	assert.Equal(t, Timeframe30d, ParseTimeframe("30d"))
	assert.Equal(t, Timeframe24h, ParseTimeframe("1y"))
	assert.Equal(t, Timeframe24h, ParseTimeframe(""))
}

func TestTimeframe_WindowAndLimit(t *testing.T) {
	tests := []struct {
		tf     Timeframe
		window time.Duration
		limit  int
	}{
		{Timeframe24h, 24 * time.Hour, 24},
		{Timeframe7d, 7 * 24 * time.Hour, 168},
		{Timeframe30d, 30 * 24 * time.Hour, 720},
	}
	for _, tt := range tests {
		t.Run(string(tt.tf), func(t *testing.T) {
			assert.Equal(t, tt.window, tt.tf.Window())
			assert.Equal(t, tt.limit, tt.tf.Limit())
		})
	}
}

func TestService_History(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		timeframe  Timeframe
		setupMock  func(*mocks.MockRateRepository)
		wantSource domain.Source
		wantLen    int
	}{
		{
			name:      "enough stored rows",
			timeframe: Timeframe24h,
			setupMock: func(m *mocks.MockRateRepository) {
				m.On("Since", mock.Anything, now.Add(-24*time.Hour), 24).
					Return(storedRows(5, now.Add(-10*time.Hour)), nil).Once()
			},
			wantSource: domain.SourceStored,
			wantLen:    5,
		},
		{
			name:      "too few stored rows",
			timeframe: Timeframe7d,
			setupMock: func(m *mocks.MockRateRepository) {
				m.On("Since", mock.Anything, now.Add(-7*24*time.Hour), 168).
					Return(storedRows(4, now.Add(-10*time.Hour)), nil).Once()
			},
			wantSource: domain.SourceSample,
			wantLen:    42,
		},
		{
			name:      "store failure",
			timeframe: Timeframe30d,
			setupMock: func(m *mocks.MockRateRepository) {
				m.On("Since", mock.Anything, now.Add(-30*24*time.Hour), 720).
					Return(nil, domain.ErrStoreUnavailable).Once()
			},
			wantSource: domain.SourceSample,
			wantLen:    30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockRateRepository(t)
			tt.setupMock(repo)
			svc := New(repo, discard, seeded())
			svc.now = func() time.Time { return now }

			series := svc.History(context.Background(), tt.timeframe)

			assert.Equal(t, tt.timeframe, series.Timeframe)
			assert.Equal(t, tt.wantSource, series.Source)
			require.Len(t, series.Points, tt.wantLen)
			for _, p := range series.Points {
				assert.Equal(t, tt.wantSource, p.Source)
			}
		})
	}
}

func TestSample_Shape(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	floor := decimal.RequireFromString("6.50")

	for _, tf := range []Timeframe{Timeframe24h, Timeframe7d, Timeframe30d} {
		t.Run(string(tf), func(t *testing.T) {
			n, interval := tf.samplePlan()
			points := Sample(tf, now, seeded())

			require.Len(t, points, n)
			assert.Equal(t, now.Add(-time.Duration(n)*interval), points[0].Timestamp)
			assert.Equal(t, now.Add(-interval), points[n-1].Timestamp)
			for i, p := range points {
				assert.Equal(t, domain.SourceSample, p.Source)
				assert.True(t, p.MinPrice.GreaterThanOrEqual(floor), "min below floor at %d: %s", i, p.MinPrice)
				assert.True(t, p.AvgPrice.GreaterThan(p.MinPrice), "avg not above min at %d", i)
				assert.LessOrEqual(t, -p.MinPrice.Exponent(), int32(2))
				assert.LessOrEqual(t, -p.AvgPrice.Exponent(), int32(2))
				if i > 0 {
					assert.True(t, points[i-1].Timestamp.Before(p.Timestamp))
				}
			}
		})
	}
}

func TestSample_Deterministic(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, Sample(Timeframe24h, now, seeded()), Sample(Timeframe24h, now, seeded()))
}
