package postgres

import (
	"context"
	"database/sql/driver"
	"net"
	"strings"

	domainerrors "logistics/internal/domain/errors"
	"logistics/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// translateError maps driver and GORM failures onto the domain taxonomy.
// action names the failed operation and only reaches logs.
func translateError(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainerrors.ErrNotFound.WrapMessage(action)
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrConflict.WithDetails(err.Error()).WrapMessage(action)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrReferentialIntegrity.WithDetails(err.Error()).WrapMessage(action)
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage(action)
	case isUnavailable(err):
		return domainerrors.ErrUnavailable.WithDetails(err.Error()).WrapMessage(action)
	default:
		return domainerrors.NewDatabaseExecuteError(err, action)
	}
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isNotNullConstraintViolation(err error) bool {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code == "23502" // not_null_violation
	}

	return strings.Contains(strings.ToLower(err.Error()), "not null constraint failed")
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

// isUnavailable reports failures a caller can retry: timeouts, cancelled
// requests and lost connections.
func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.Is(err, driver.ErrBadConn) {
		return true
	}

	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return true
	}

	if _, ok := errors.AsType[*pgconn.ConnectError](err); ok {
		return true
	}

	_, ok := errors.AsType[net.Error](err)

	return ok
}
