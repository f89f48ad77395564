package rate

import (
	"context"
	"log/slog"
	"time"

	dbrepo "github.com/amirasaad/usdtbob/infra/repository"
	"github.com/amirasaad/usdtbob/pkg/domain"
	repo "github.com/amirasaad/usdtbob/pkg/repository"
	"gorm.io/gorm"
)

var versionQueries = map[string]string{
	"postgres": "SELECT version()",
	"mysql":    "SELECT VERSION()",
	"sqlite":   "SELECT sqlite_version()",
}

// tableQueries count tables named ?. Migrator().HasTable discards query
// errors, which would turn a dropped connection into "no table".
var tableQueries = map[string]string{
	"postgres": "SELECT count(*) FROM information_schema.tables WHERE table_schema = CURRENT_SCHEMA() AND table_name = ? AND table_type = 'BASE TABLE'",
	"mysql":    "SELECT count(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ? AND table_type = 'BASE TABLE'",
	"sqlite":   "SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
}

type repository struct {
	db      *gorm.DB
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a rate repository using the provided *gorm.DB. Each call runs
// on a freshly checked out connection bounded by timeout.
func New(db *gorm.DB, timeout time.Duration, logger *slog.Logger) repo.RateRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &repository{
		db:      db,
		timeout: timeout,
		logger:  logger.With("repository", TableName),
	}
}

// withConn runs fn on a dedicated connection. Failing to obtain the
// connection is reported as ErrStoreUnavailable; errors from fn are returned
// as fn classified them.
func (r *repository) withConn(ctx context.Context, fn func(conn *gorm.DB) error) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	acquired := false
	err := r.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		acquired = true
		return fn(conn)
	})
	if err != nil && !acquired {
		return dbrepo.WrapRead(err)
	}
	return err
}

// tableExists reports whether the samples table exists. Query failures are
// returned as ErrStoreUnavailable.
func (r *repository) tableExists(conn *gorm.DB) (bool, error) {
	q, ok := tableQueries[conn.Dialector.Name()]
	if !ok {
		return conn.Migrator().HasTable(&Rate{}), nil
	}
	var count int64
	if err := conn.Raw(q, TableName).Scan(&count).Error; err != nil {
		return false, dbrepo.WrapRead(err)
	}
	return count > 0, nil
}

// EnsureSchema implements repository.RateRepository.
func (r *repository) EnsureSchema(ctx context.Context) error {
	return r.withConn(ctx, r.ensureSchema)
}

func (r *repository) ensureSchema(conn *gorm.DB) error {
	exists, err := r.tableExists(conn)
	if err != nil || exists {
		return err
	}
	r.logger.Info("creating rate table")
	if err := conn.Migrator().CreateTable(&Rate{}); err != nil {
		// Lost a race with another creator.
		if exists, _ := r.tableExists(conn); exists {
			return nil
		}
		return dbrepo.WrapWrite(err)
	}
	return nil
}

// Append implements repository.RateRepository.
func (r *repository) Append(ctx context.Context, sample domain.RateSample) error {
	return r.withConn(ctx, func(conn *gorm.DB) error {
		if err := r.ensureSchema(conn); err != nil {
			return err
		}
		row := mapSampleToModel(sample)
		err := conn.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&row).Error
		})
		if err != nil {
			r.logger.Error("failed to insert rate sample", "error", err)
			return dbrepo.WrapWrite(err)
		}
		r.logger.Debug("rate sample stored",
			"id", row.ID,
			"min_price", row.MinPrice.String(),
			"avg_price", row.AvgPrice.String(),
		)
		return nil
	})
}

// Latest implements repository.RateRepository.
func (r *repository) Latest(ctx context.Context) (*domain.RateSample, error) {
	var latest *domain.RateSample
	err := r.withConn(ctx, func(conn *gorm.DB) error {
		exists, err := r.tableExists(conn)
		if err != nil || !exists {
			return err
		}
		var row Rate
		res := conn.Order("recorded_at DESC").Limit(1).Find(&row)
		if res.Error != nil {
			return dbrepo.WrapRead(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}
		s := mapModelToSample(&row)
		latest = &s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return latest, nil
}

// Since implements repository.RateRepository.
func (r *repository) Since(ctx context.Context, from time.Time, limit int) ([]domain.RateSample, error) {
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		q = q.Where("recorded_at >= ?", from.UTC()).Order("recorded_at ASC")
		if limit > 0 {
			q = q.Limit(limit)
		}
		return q
	})
}

// Recent implements repository.RateRepository.
func (r *repository) Recent(ctx context.Context, n int) ([]domain.RateSample, error) {
	if n <= 0 {
		return []domain.RateSample{}, nil
	}
	return r.find(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Order("recorded_at DESC").Limit(n)
	})
}

// find runs the query built by scope. A missing table yields no rows.
func (r *repository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]domain.RateSample, error) {
	var rows []Rate
	err := r.withConn(ctx, func(conn *gorm.DB) error {
		exists, err := r.tableExists(conn)
		if err != nil || !exists {
			return err
		}
		return dbrepo.WrapRead(scope(conn).Find(&rows).Error)
	})
	if err != nil {
		return nil, err
	}
	samples := make([]domain.RateSample, 0, len(rows))
	for i := range rows {
		samples = append(samples, mapModelToSample(&rows[i]))
	}
	return samples, nil
}

// Status implements repository.RateRepository. A connection failure is
// reported both in the returned status and as an error.
func (r *repository) Status(ctx context.Context) (domain.StoreStatus, error) {
	status := domain.StoreStatus{Driver: r.db.Dialector.Name()}
	err := r.withConn(ctx, func(conn *gorm.DB) error {
		status.ConnectionOK = true
		if q, ok := versionQueries[status.Driver]; ok {
			var version string
			if err := conn.Raw(q).Scan(&version).Error; err != nil {
				r.logger.Warn("failed to read server version", "error", err)
			}
			status.Version = version
		}
		exists, err := r.tableExists(conn)
		if err != nil {
			status.ConnectionOK = false
			return err
		}
		status.TableExists = exists
		if !exists {
			return nil
		}
		return dbrepo.WrapRead(conn.Model(&Rate{}).Count(&status.RecordCount).Error)
	})
	return status, err
}
