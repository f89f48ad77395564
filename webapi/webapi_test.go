package webapi

import (
	"io"
	"testing"
	"time"

	"github.com/amirasaad/usdtbob/internal/fixtures/mocks"
	"github.com/amirasaad/usdtbob/pkg/app"
	"github.com/amirasaad/usdtbob/pkg/config"
	"github.com/amirasaad/usdtbob/pkg/domain"
	"github.com/amirasaad/usdtbob/pkg/testutils"
	"github.com/amirasaad/usdtbob/webapi/common"
	"github.com/amirasaad/usdtbob/webapi/debug"
	_ "github.com/amirasaad/usdtbob/webapi/docs"
	"github.com/amirasaad/usdtbob/webapi/rates"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type WebAPITestSuite struct {
	suite.Suite
	fetcher *mocks.MockQuoteFetcher
	repo    *mocks.MockRateRepository
	cfg     *config.App
	app     *fiber.App
}

func (s *WebAPITestSuite) SetupTest() {
	s.fetcher = mocks.NewMockQuoteFetcher(s.T())
	s.repo = mocks.NewMockRateRepository(s.T())
	s.cfg = &config.App{
		Env:       "test",
		DB:        config.DB{Driver: config.DriverPostgres, Host: "db.local", Name: "rates", User: "u", Password: "secret"},
		Collector: config.Collector{MaxAttempts: 1},
		RateLimit: config.RateLimit{MaxRequests: 100, Window: time.Minute},
	}
	s.app = s.newApp()
}

func (s *WebAPITestSuite) newApp() *fiber.App {
	deps := &app.Deps{
		Fetcher:        s.fetcher,
		RateRepository: s.repo,
		Logger:         testutils.DiscardLogger(),
	}
	return SetupApp(app.New(deps, s.cfg))
}

func (s *WebAPITestSuite) live() domain.RateQuote {
	return domain.RateQuote{
		MinPrice:   decimal.RequireFromString("6.85"),
		AvgPrice:   decimal.RequireFromString("6.90"),
		Source:     domain.SourceLive,
		ObservedAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
	}
}

func (s *WebAPITestSuite) TestHealth() {
	resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/", "")
	defer resp.Body.Close() //nolint: errcheck
	body, _ := io.ReadAll(resp.Body)

	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Contains(string(body), "running")
}

func (s *WebAPITestSuite) TestSwaggerDoc() {
	resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/swagger/doc.json", "")
	defer resp.Body.Close() //nolint: errcheck
	body, _ := io.ReadAll(resp.Body)

	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Contains(string(body), `"/api/convert"`)
	s.Contains(string(body), `"/api/history"`)
	s.Contains(string(body), "USDT/BOB Rate API")
}

func (s *WebAPITestSuite) TestConvert() {
	s.fetcher.On("FetchLiveQuote", mock.Anything).Return(s.live(), nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, fiber.MethodPost, "/api/convert", `{"amount": 1000, "rate_type": "avg"}`)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	out := testutils.DecodeJSON[rates.ConvertResponse](s.T(), resp)

	s.True(out.Success)
	s.InDelta(144.92753623, out.UsdtAmount, 1e-9)
	s.InDelta(1000, out.BobAmount, 1e-9)
	s.InDelta(6.90, out.RateUsed, 1e-9)
	s.Equal("avg", out.RateType)
	s.Equal("live", out.DataSource)
	s.Equal("2025-06-01 12:30:00", out.Timestamp)
}

func (s *WebAPITestSuite) TestConvertMinFromStore() {
	s.fetcher.On("FetchLiveQuote", mock.Anything).Return(domain.RateQuote{}, domain.ErrTransport).Once()
	s.repo.On("Latest", mock.Anything).Return(&domain.RateSample{
		RecordedAt: time.Now(),
		MinPrice:   decimal.RequireFromString("6.80"),
		AvgPrice:   decimal.RequireFromString("6.90"),
	}, nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, fiber.MethodPost, "/api/convert", `{"amount": "68", "rate_type": "min"}`)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	out := testutils.DecodeJSON[rates.ConvertResponse](s.T(), resp)

	s.InDelta(10, out.UsdtAmount, 1e-9)
	s.Equal("min", out.RateType)
	s.Equal("stored", out.DataSource)
}

func (s *WebAPITestSuite) TestConvertRejectsBadInput() {
	for _, body := range []string{`{"amount": 0}`, `{"amount": -5}`, `{"amount": "abc"}`, `{}`, `not json`} {
		resp := testutils.MakeRequestWithApp(s.app, fiber.MethodPost, "/api/convert", body)
		s.Equal(fiber.StatusBadRequest, resp.StatusCode, body)
		out := testutils.DecodeJSON[common.ErrorResponse](s.T(), resp)
		s.False(out.Success)
		s.NotEmpty(out.Error)
	}
}

func (s *WebAPITestSuite) TestConvertNoRateAvailable() {
	s.fetcher.On("FetchLiveQuote", mock.Anything).Return(domain.RateQuote{}, domain.ErrTransport).Once()
	s.repo.On("Latest", mock.Anything).Return(nil, nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, fiber.MethodPost, "/api/convert", `{"amount": 100}`)
	s.Equal(fiber.StatusInternalServerError, resp.StatusCode)
	out := testutils.DecodeJSON[common.ErrorResponse](s.T(), resp)
	s.False(out.Success)
	s.Equal("conversion failed", out.Error)
}

func (s *WebAPITestSuite) TestRates() {
	s.fetcher.On("FetchLiveQuote", mock.Anything).Return(s.live(), nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/api/rates", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	out := testutils.DecodeJSON[rates.RatesResponse](s.T(), resp)

	s.True(out.Success)
	s.InDelta(6.85, out.UsdtMinBob, 1e-9)
	s.InDelta(6.90, out.UsdtAvgBob, 1e-9)
	s.Equal("live", out.Source)
}

func (s *WebAPITestSuite) TestRatesUnavailable() {
	s.fetcher.On("FetchLiveQuote", mock.Anything).Return(domain.RateQuote{}, domain.ErrNoListings).Once()
	s.repo.On("Latest", mock.Anything).Return(nil, domain.ErrStoreUnavailable).Once()

	resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/api/rates", "")
	s.Equal(fiber.StatusInternalServerError, resp.StatusCode)
	out := testutils.DecodeJSON[common.ErrorResponse](s.T(), resp)
	s.False(out.Success)
}

func (s *WebAPITestSuite) TestHistoryFallsBackToSample() {
	s.repo.On("Since", mock.Anything, mock.Anything, 168).Return([]domain.RateSample{}, nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/api/history?timeframe=7d", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	out := testutils.DecodeJSON[rates.HistoryResponse](s.T(), resp)

	s.True(out.Success)
	s.Equal("7d", out.Timeframe)
	s.Equal("sample", out.DataSource)
	s.Equal(42, out.Count)
	for _, p := range out.History {
		s.Equal("sample", p.Source)
	}
}

func (s *WebAPITestSuite) TestHistoryUnknownTimeframe() {
	s.repo.On("Since", mock.Anything, mock.Anything, 24).Return(nil, domain.ErrStoreUnavailable).Once()

	resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/api/history?timeframe=1y", "")
	out := testutils.DecodeJSON[rates.HistoryResponse](s.T(), resp)

	s.Equal("24h", out.Timeframe)
	s.Equal(24, out.Count)
}

func (s *WebAPITestSuite) TestDBStatus() {
	s.repo.On("Status", mock.Anything).Return(domain.StoreStatus{
		Driver:       "postgres",
		Version:      "PostgreSQL 16.2",
		ConnectionOK: true,
		TableExists:  true,
		RecordCount:  42,
	}, nil).Once()

	resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/api/debug/db-status", "")
	s.Equal(fiber.StatusOK, resp.StatusCode)
	out := testutils.DecodeJSON[debug.DBStatusResponse](s.T(), resp)

	s.True(out.Success)
	s.True(out.ConnectionOK)
	s.Equal(int64(42), out.RecordCount)
	s.Equal("***", out.Config["password"])
	s.Nil(out.Error)
}

func (s *WebAPITestSuite) TestTestConnectionFailure() {
	s.repo.On("Status", mock.Anything).Return(domain.StoreStatus{Driver: "postgres"}, domain.ErrStoreUnavailable).Once()

	resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/api/test-connection", "")
	s.Equal(fiber.StatusInternalServerError, resp.StatusCode)
	out := testutils.DecodeJSON[common.ErrorResponse](s.T(), resp)
	s.False(out.Success)
}

func (s *WebAPITestSuite) TestCORS() {
	resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/", "", "Origin", "http://example.com")
	defer resp.Body.Close() //nolint: errcheck

	s.Equal("*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func (s *WebAPITestSuite) TestNotFound() {
	resp := testutils.MakeRequestWithApp(s.app, fiber.MethodGet, "/nope", "")
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	out := testutils.DecodeJSON[common.ErrorResponse](s.T(), resp)
	s.False(out.Success)
}

func (s *WebAPITestSuite) TestRateLimit() {
	s.cfg.RateLimit = config.RateLimit{MaxRequests: 3, Window: time.Minute}
	limited := s.newApp()

	for i := range [4]int{} {
		resp := testutils.MakeRequestWithApp(limited, fiber.MethodGet, "/", "", "X-Forwarded-For", "10.0.0.1, 10.0.0.2")
		_ = resp.Body.Close()
		if i < 3 {
			s.Equal(fiber.StatusOK, resp.StatusCode, "request %d", i+1)
		} else {
			s.Equal(fiber.StatusTooManyRequests, resp.StatusCode, "request %d", i+1)
		}
	}

	resp := testutils.MakeRequestWithApp(limited, fiber.MethodGet, "/", "", "X-Forwarded-For", "10.0.0.9")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode, "other clients are not limited")
}

func TestWebAPITestSuite(t *testing.T) {
	suite.Run(t, new(WebAPITestSuite))
}
