package rates

import (
	"context"
	"log/slog"

	"github.com/amirasaad/usdtbob/pkg/domain"
	"github.com/amirasaad/usdtbob/pkg/service/history"
	"github.com/amirasaad/usdtbob/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Converter converts BOB amounts to USDT.
type Converter interface {
	Convert(ctx context.Context, amount decimal.Decimal, policy domain.Policy) (domain.ConversionResult, error)
}

// Resolver resolves the current quote.
type Resolver interface {
	Resolve(ctx context.Context) (domain.RateQuote, error)
}

// HistoryProvider serves rate history.
type HistoryProvider interface {
	History(ctx context.Context, tf history.Timeframe) history.Series
}

// Routes registers the conversion, rate and history endpoints under /api.
func Routes(
	app *fiber.App,
	conv Converter,
	resolver Resolver,
	hist HistoryProvider,
	logger *slog.Logger,
) {
	if logger == nil {
		logger = slog.Default()
	}
	api := app.Group("/api")
	api.Post("/convert", Convert(conv, logger))
	api.Get("/rates", Rates(resolver, logger))
	api.Get("/history", History(hist))
}

// Convert returns a Fiber handler converting a BOB amount to USDT.
// @Summary Convert bolivianos to USDT
// @Description Converts a BOB amount using the minimum or average P2P price. Any rate_type other than "min" uses the average.
// @Tags rates
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Amount in BOB and rate type"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /api/convert [post]
func Convert(conv Converter, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in, err := common.BindAndValidate[ConvertRequest](c)
		if err != nil {
			logger.Debug("Rejected conversion request", "error", err)
			return nil
		}

		res, err := conv.Convert(c.Context(), in.Amount, domain.PolicyFromRateType(in.RateType))
		if err != nil {
			logger.Error("Conversion failed", "amount", in.Amount.String(), "error", err)
			return common.DomainErrorJSON(c, err, "conversion failed")
		}

		return c.JSON(ConvertResponse{
			Success:    true,
			BobAmount:  res.InputAmount.InexactFloat64(),
			UsdtAmount: res.OutputAmount.InexactFloat64(),
			RateUsed:   res.RateUsed.InexactFloat64(),
			RateType:   string(res.Policy),
			DataSource: string(res.Source),
			Timestamp:  domain.FormatTimestamp(res.ObservedAt),
		})
	}
}

// Rates returns a Fiber handler for the current quote.
// @Summary Current USDT/BOB rates
// @Description Minimum and average price, from the live order book or the last stored sample.
// @Tags rates
// @Produce json
// @Success 200 {object} RatesResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /api/rates [get]
func Rates(resolver Resolver, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		quote, err := resolver.Resolve(c.Context())
		if err != nil {
			logger.Error("Failed to resolve rates", "error", err)
			return common.DomainErrorJSON(c, err, "could not fetch rates")
		}
		return c.JSON(RatesResponse{
			Success:    true,
			UsdtMinBob: quote.MinPrice.InexactFloat64(),
			UsdtAvgBob: quote.AvgPrice.InexactFloat64(),
			Source:     string(quote.Source),
			Timestamp:  domain.FormatTimestamp(quote.ObservedAt),
		})
	}
}

// History returns a Fiber handler for the rate history of a timeframe.
// It never fails: missing data is replaced by a sample series.
// @Summary Rate history
// @Description Stored samples for the timeframe, or a synthetic series tagged "sample" when fewer than five exist.
// @Tags rates
// @Produce json
// @Param timeframe query string false "Timeframe" Enums(24h, 7d, 30d) default(24h)
// @Success 200 {object} HistoryResponse
// @Router /api/history [get]
func History(hist HistoryProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tf := history.ParseTimeframe(c.Query("timeframe", string(history.Timeframe24h)))
		series := hist.History(c.Context(), tf)

		points := make([]HistoryPoint, 0, len(series.Points))
		for _, p := range series.Points {
			points = append(points, HistoryPoint{
				Timestamp:  domain.FormatTimestamp(p.Timestamp),
				UsdtMinBob: p.MinPrice.InexactFloat64(),
				UsdtAvgBob: p.AvgPrice.InexactFloat64(),
				Source:     string(p.Source),
			})
		}
		return c.JSON(HistoryResponse{
			Success:    true,
			History:    points,
			Timeframe:  string(series.Timeframe),
			Count:      len(points),
			DataSource: string(series.Source),
		})
	}
}
