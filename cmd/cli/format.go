package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/amirasaad/usdtbob/pkg/domain"
	"github.com/shopspring/decimal"
)

// parseAmount reads a BOB amount, allowing thousands separators. Only
// non-numeric input is rejected; the sign is left to the converter.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a valid amount", domain.ErrInvalidInput, s)
	}
	return d, nil
}

// groupThousands inserts commas into the integer part of a plain decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := sign + b.String()
	if hasFrac {
		out += "." + frac
	}
	return out
}

func formatBOB(d decimal.Decimal) string {
	return "Bs. " + groupThousands(d.StringFixed(2))
}

func writeConversion(w io.Writer, res domain.ConversionResult) {
	_, _ = okColor.Fprintf(w, "%s = %s USDT\n", formatBOB(res.InputAmount), res.OutputAmount.StringFixed(8))
	fmt.Fprintf(w, "Rate used: %s per USDT (%s)\n", formatBOB(res.RateUsed), res.Policy)
	fmt.Fprintf(w, "Source: %s\n", res.Source)
	fmt.Fprintf(w, "Updated: %s\n", domain.FormatTimestamp(res.ObservedAt))
}

func writeQuote(w io.Writer, q domain.RateQuote) {
	_, _ = headColor.Fprintf(w, "Current rates (%s):\n", q.Source)
	fmt.Fprintf(w, "  Minimum price: %s\n", formatBOB(q.MinPrice))
	fmt.Fprintf(w, "  Average price: %s\n", formatBOB(q.AvgPrice))
	fmt.Fprintf(w, "  Updated: %s\n", domain.FormatTimestamp(q.ObservedAt))
}
