package exchange

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/usdtbob/pkg/domain"
	"github.com/shopspring/decimal"
)

// OutputPlaces is the number of fractional digits of a converted amount.
const OutputPlaces = 8

// QuoteResolver is what the converter needs from a Resolver.
type QuoteResolver interface {
	Resolve(ctx context.Context) (domain.RateQuote, error)
}

// Converter turns a BOB amount into USDT using a resolved quote.
type Converter struct {
	resolver QuoteResolver
	logger   *slog.Logger
}

// NewConverter creates a converter backed by resolver.
func NewConverter(resolver QuoteResolver, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{resolver: resolver, logger: logger}
}

// Convert divides amount by the rate selected by policy. The amount itself
// is not validated here; callers reject non-positive input.
func (c *Converter) Convert(
	ctx context.Context,
	amount decimal.Decimal,
	policy domain.Policy,
) (domain.ConversionResult, error) {
	quote, err := c.resolver.Resolve(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoRateAvailable) {
			return domain.ConversionResult{}, fmt.Errorf("%w: %w", domain.ErrConversionUnavailable, err)
		}
		return domain.ConversionResult{}, err
	}

	rate := quote.Rate(policy)
	if !rate.IsPositive() {
		c.logger.Error("Refusing to convert with non-positive rate",
			"rate", rate.String(),
			"policy", policy,
			"source", quote.Source,
		)
		return domain.ConversionResult{}, fmt.Errorf("%w: %s rate is %s", domain.ErrInvalidRate, policy, rate)
	}

	out := amount.DivRound(rate, OutputPlaces)
	c.logger.Info("Converted amount",
		"amount", amount.String(),
		"usdt", out.String(),
		"rate", rate.String(),
		"policy", policy,
		"source", quote.Source,
	)
	return domain.ConversionResult{
		InputAmount:  amount,
		OutputAmount: out,
		RateUsed:     rate,
		Policy:       policy,
		Source:       quote.Source,
		ObservedAt:   quote.ObservedAt,
	}, nil
}
