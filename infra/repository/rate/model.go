package rate

import (
	"time"

	"github.com/amirasaad/usdtbob/pkg/domain"
	"github.com/shopspring/decimal"
)

// TableName is the name of the table holding collected rate samples.
const TableName = "usdt_rates"

// Rate represents a usdt_rates record in the database.
type Rate struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	RecordedAt time.Time       `gorm:"not null;index:idx_usdt_rates_recorded_at"`
	MinPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	AvgPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName specifies the table name for the Rate model.
func (Rate) TableName() string {
	return TableName
}

// Prices are stored with two fractional digits, so rounding happens here to
// keep every driver consistent with numeric(10,2).
func mapSampleToModel(s domain.RateSample) Rate {
	return Rate{
		RecordedAt: s.RecordedAt.UTC().Truncate(time.Microsecond),
		MinPrice:   s.MinPrice.Round(2),
		AvgPrice:   s.AvgPrice.Round(2),
	}
}

func mapModelToSample(r *Rate) domain.RateSample {
	return domain.RateSample{
		RecordedAt: r.RecordedAt,
		MinPrice:   r.MinPrice,
		AvgPrice:   r.AvgPrice,
	}
}
