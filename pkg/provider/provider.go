package provider

import (
	"context"

	"github.com/amirasaad/usdtbob/pkg/domain"
)

// QuoteFetcher fetches the current USDT/BOB quote from an external order book.
type QuoteFetcher interface {
	// FetchLiveQuote issues one request and reduces the listings to min and mean.
	// It fails with domain.ErrTransport or domain.ErrNoListings.
	FetchLiveQuote(ctx context.Context) (domain.RateQuote, error)

	// Name returns the provider's name for logging and identification.
	Name() string
}
