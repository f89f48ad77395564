package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/amirasaad/usdtbob/pkg/config"
	"github.com/amirasaad/usdtbob/pkg/domain"
	"github.com/amirasaad/usdtbob/pkg/provider"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const maxResponseBytes = 1 << 20

// P2PQuoteProvider implements provider.QuoteFetcher against the peer-to-peer
// advertisement search endpoint.
type P2PQuoteProvider struct {
	cfg        config.Provider
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// searchRequest is the body of the advertisement search.
// Example: {"asset":"USDT","fiat":"BOB","tradeType":"BUY","page":1,"rows":10,"payTypes":[],"publisherType":"merchant"}
type searchRequest struct {
	Asset         string   `json:"asset"`
	Fiat          string   `json:"fiat"`
	TradeType     string   `json:"tradeType"`
	Page          int      `json:"page"`
	Rows          int      `json:"rows"`
	PayTypes      []string `json:"payTypes"`
	PublisherType string   `json:"publisherType"`
}

// NewP2PQuoteProvider creates a provider using config. The HTTP client is
// bounded by cfg.HTTPTimeout.
func NewP2PQuoteProvider(cfg config.Provider, logger *slog.Logger) *P2PQuoteProvider {
	return &P2PQuoteProvider{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
		now:    time.Now,
	}
}

// FetchLiveQuote fetches the first page of listings and reduces it to min and mean.
func (p *P2PQuoteProvider) FetchLiveQuote(ctx context.Context) (domain.RateQuote, error) {
	body, err := json.Marshal(p.searchRequest())
	if err != nil {
		return domain.RateQuote{}, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return domain.RateQuote{}, fmt.Errorf("%w: failed to create request: %w", domain.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if p.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", p.cfg.UserAgent)
	}

	p.logger.Debug("Querying P2P order book", "url", p.cfg.URL, "asset", p.cfg.Asset, "fiat", p.cfg.Fiat)
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return domain.RateQuote{}, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.RateQuote{}, fmt.Errorf("%w: failed to read response: %w", domain.ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.RateQuote{}, fmt.Errorf("%w: API returned status %d: %s",
			domain.ErrTransport, resp.StatusCode, truncate(payload, 200))
	}

	prices, err := parsePrices(payload)
	if err != nil {
		return domain.RateQuote{}, err
	}
	minPrice, avgPrice, err := domain.Summarize(prices)
	if err != nil {
		p.logger.Warn("No listings returned by P2P order book", "asset", p.cfg.Asset, "fiat", p.cfg.Fiat)
		return domain.RateQuote{}, err
	}

	p.logger.Info("Live quote fetched",
		"provider", p.Name(),
		"listings", len(prices),
		"min_price", minPrice.StringFixed(2),
		"avg_price", avgPrice.StringFixed(2),
	)
	return domain.RateQuote{
		MinPrice:   minPrice,
		AvgPrice:   avgPrice,
		Source:     domain.SourceLive,
		ObservedAt: p.now(),
	}, nil
}

// Name returns the provider's name
func (p *P2PQuoteProvider) Name() string {
	return "binance-p2p"
}

func (p *P2PQuoteProvider) searchRequest() searchRequest {
	return searchRequest{
		Asset:         p.cfg.Asset,
		Fiat:          p.cfg.Fiat,
		TradeType:     p.cfg.TradeType,
		Page:          1,
		Rows:          p.cfg.Rows,
		PayTypes:      []string{},
		PublisherType: p.cfg.PublisherType,
	}
}

// parsePrices extracts data[].adv.price. An absent, null or empty data list
// yields no prices.
func parsePrices(payload []byte) ([]decimal.Decimal, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("%w: malformed response payload", domain.ErrTransport)
	}
	listings := gjson.GetBytes(payload, "data")
	if !listings.Exists() || listings.Type == gjson.Null {
		return nil, nil
	}
	if !listings.IsArray() {
		return nil, fmt.Errorf("%w: data is not a list", domain.ErrTransport)
	}

	var (
		prices   []decimal.Decimal
		parseErr error
	)
	listings.ForEach(func(_, ad gjson.Result) bool {
		idx := len(prices)
		raw := ad.Get("adv.price")
		if !raw.Exists() {
			parseErr = fmt.Errorf("%w: listing %d has no price", domain.ErrTransport, idx)
			return false
		}
		price, err := decimal.NewFromString(raw.String())
		if err != nil {
			parseErr = fmt.Errorf("%w: listing %d price %q: %w", domain.ErrTransport, idx, raw.String(), err)
			return false
		}
		prices = append(prices, price)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return prices, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

var _ provider.QuoteFetcher = (*P2PQuoteProvider)(nil)
