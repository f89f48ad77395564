package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/amirasaad/usdtbob/pkg/domain"
)

// MapGormErrorToDomain classifies connection level driver errors as
// ErrStoreUnavailable. Other errors are returned unchanged.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}
	if isConnectionError(err) {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return err
}

// WrapWrite maps the error of a failed write. Connection level failures keep
// their ErrStoreUnavailable classification, everything else is a write failure.
func WrapWrite(err error) error {
	if err == nil {
		return nil
	}
	mapped := MapGormErrorToDomain(err)
	if errors.Is(mapped, domain.ErrStoreUnavailable) {
		return mapped
	}
	return fmt.Errorf("%w: %w", domain.ErrStoreWrite, err)
}

// WrapRead maps the error of a failed read. Reads only fail when the store
// cannot be reached or answered, so every error is ErrStoreUnavailable.
func WrapRead(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
