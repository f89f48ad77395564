package repository

import (
	"context"
	"time"

	"github.com/amirasaad/usdtbob/pkg/domain"
)

// RateRepository is the append-only store of rate samples.
// Implementations acquire and release one connection per call.
type RateRepository interface {
	// EnsureSchema creates the samples table and its index when absent.
	EnsureSchema(ctx context.Context) error

	// Append inserts exactly one sample, creating the schema first if needed.
	Append(ctx context.Context, sample domain.RateSample) error

	// Latest returns the most recent sample, or nil when none exist.
	Latest(ctx context.Context) (*domain.RateSample, error)

	// Since returns up to limit samples recorded at or after from, oldest first.
	Since(ctx context.Context, from time.Time, limit int) ([]domain.RateSample, error)

	// Recent returns at most n samples, newest first.
	Recent(ctx context.Context, n int) ([]domain.RateSample, error)

	// Status reports connectivity, schema presence and row count.
	Status(ctx context.Context) (domain.StoreStatus, error)
}
