package rates

import "github.com/shopspring/decimal"

// ConvertRequest is the body of POST /api/convert. Amount accepts a JSON
// number or a numeric string.
type ConvertRequest struct {
	Amount   decimal.Decimal `json:"amount" validate:"gt=0" swaggertype:"number" example:"1000"`
	RateType string          `json:"rate_type" enums:"min,avg" example:"avg"`
}

// ConvertResponse is returned by a successful conversion.
type ConvertResponse struct {
	Success    bool    `json:"success"`
	BobAmount  float64 `json:"bob_amount"`
	UsdtAmount float64 `json:"usdt_amount"`
	RateUsed   float64 `json:"rate_used"`
	RateType   string  `json:"rate_type"`
	DataSource string  `json:"data_source"`
	Timestamp  string  `json:"timestamp"`
}

// RatesResponse is returned by GET /api/rates.
type RatesResponse struct {
	Success    bool    `json:"success"`
	UsdtMinBob float64 `json:"usdt_min_bob"`
	UsdtAvgBob float64 `json:"usdt_avg_bob"`
	Source     string  `json:"source"`
	Timestamp  string  `json:"timestamp"`
}

// HistoryPoint is one entry of the history series.
type HistoryPoint struct {
	Timestamp  string  `json:"timestamp"`
	UsdtMinBob float64 `json:"usdt_min_bob"`
	UsdtAvgBob float64 `json:"usdt_avg_bob"`
	Source     string  `json:"source"`
}

// HistoryResponse is returned by GET /api/history.
type HistoryResponse struct {
	Success    bool           `json:"success"`
	History    []HistoryPoint `json:"history"`
	Timeframe  string         `json:"timeframe"`
	Count      int            `json:"count"`
	DataSource string         `json:"data_source"`
}
