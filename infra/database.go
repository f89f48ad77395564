package infra

import (
	"fmt"
	"time"

	"github.com/amirasaad/usdtbob/pkg/config"
	"github.com/amirasaad/usdtbob/pkg/domain"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector returns the gorm dialector for the configured driver.
func Dialector(cnf config.DB) (gorm.Dialector, error) {
	switch cnf.Driver {
	case config.DriverPostgres:
		return postgres.Open(cnf.DSN()), nil
	case config.DriverMySQL:
		return mysql.New(mysql.Config{
			DSN:                       cnf.DSN(),
			SkipInitializeWithVersion: true,
		}), nil
	case config.DriverSQLite:
		return sqlite.Open(cnf.DSN()), nil
	default:
		return nil, fmt.Errorf("%w: unsupported DATABASE_DRIVER %q", domain.ErrConfigIncomplete, cnf.Driver)
	}
}

// NewDBConnection opens the rate store without touching the network, so the
// process starts even when the database is down; connectivity problems
// surface on the first query.
func NewDBConnection(
	cnf config.DB,
	appEnv string,
) (*gorm.DB, error) {
	dialector, err := Dialector(cnf)
	if err != nil {
		return nil, err
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	// Every store call checks out its own connection; none is held between calls.
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(0)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}
