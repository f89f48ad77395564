package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Source tags where a rate came from.
type Source string

const (
	SourceLive      Source = "live"
	SourceStored    Source = "stored"
	SourceSecondary Source = "secondary-provider"
	// SourceSample marks synthetic history points; never produced by the resolver.
	SourceSample Source = "sample"
)

// Policy selects which of the two sampled prices is used as conversion rate.
type Policy string

const (
	PolicyMin Policy = "min"
	PolicyAvg Policy = "avg"
)

// ParsePolicy parses a rate policy. An empty string selects PolicyAvg.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyAvg:
		return PolicyAvg, nil
	case PolicyMin:
		return PolicyMin, nil
	default:
		return "", fmt.Errorf("%w: unknown rate policy %q", ErrInvalidInput, s)
	}
}

// PolicyFromRateType is the lenient form of ParsePolicy used by user facing
// inputs: anything other than "min" selects PolicyAvg.
func PolicyFromRateType(rateType string) Policy {
	if p, err := ParsePolicy(rateType); err == nil {
		return p
	}
	return PolicyAvg
}

// TimestampLayout is how timestamps are shown to users.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// RateSample is one observation of the USDT/BOB rate.
// MinPrice <= AvgPrice is expected but not enforced.
type RateSample struct {
	RecordedAt time.Time
	MinPrice   decimal.Decimal
	AvgPrice   decimal.Decimal
}

// RateQuote is the resolver's output: a pair of prices tagged with their source.
type RateQuote struct {
	MinPrice   decimal.Decimal
	AvgPrice   decimal.Decimal
	Source     Source
	ObservedAt time.Time
}

// Sample converts the quote into a sample suitable for persistence.
func (q RateQuote) Sample() RateSample {
	return RateSample{
		RecordedAt: q.ObservedAt,
		MinPrice:   q.MinPrice,
		AvgPrice:   q.AvgPrice,
	}
}

// Rate returns the price selected by policy.
func (q RateQuote) Rate(p Policy) decimal.Decimal {
	if p == PolicyMin {
		return q.MinPrice
	}
	return q.AvgPrice
}

// QuoteFromSample tags a stored sample as a quote.
func QuoteFromSample(s RateSample, src Source) RateQuote {
	return RateQuote{
		MinPrice:   s.MinPrice,
		AvgPrice:   s.AvgPrice,
		Source:     src,
		ObservedAt: s.RecordedAt,
	}
}

// ConversionResult is the outcome of converting a BOB amount to USDT.
type ConversionResult struct {
	InputAmount  decimal.Decimal
	OutputAmount decimal.Decimal
	RateUsed     decimal.Decimal
	Policy       Policy
	Source       Source
	ObservedAt   time.Time
}

// StoreStatus describes the health of the rate store.
type StoreStatus struct {
	Driver       string
	Version      string
	ConnectionOK bool
	TableExists  bool
	RecordCount  int64
}

// Summarize reduces listing prices to their minimum and arithmetic mean.
func Summarize(prices []decimal.Decimal) (minPrice, avgPrice decimal.Decimal, err error) {
	if len(prices) == 0 {
		return decimal.Zero, decimal.Zero, ErrNoListings
	}
	minPrice = prices[0]
	sum := decimal.Zero
	for _, p := range prices {
		if p.LessThan(minPrice) {
			minPrice = p
		}
		sum = sum.Add(p)
	}
	avgPrice = sum.Div(decimal.NewFromInt(int64(len(prices))))
	return minPrice, avgPrice, nil
}
