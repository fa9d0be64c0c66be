package postgres

import (
	"strings"

	"visitadoras/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the repositories translate.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateNotNullViolation    = "23502"
	sqlStateCheckViolation      = "23514"
	sqlStateInsufficientPriv    = "42501"
	sqlStateGeneratedAlways     = "428C9"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return pgErrorCode(err) == sqlStateUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return pgErrorCode(err) == sqlStateForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	if pgErrorCode(err) == sqlStateNotNullViolation {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") || strings.Contains(errMsg, "not null")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return pgErrorCode(err) == sqlStateCheckViolation
}

func isPermissionDenied(err error) bool {
	return pgErrorCode(err) == sqlStateInsufficientPriv
}

func isGeneratedColumnWrite(err error) bool {
	if pgErrorCode(err) == sqlStateGeneratedAlways {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "generated column")
}

// translateStoreError maps the constraint failures callers branch on to repository sentinels.
// Anything else is returned wrapped with its stack.
func translateStoreError(err error, msg string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return errors.Wrap(repository.ErrDuplicateKey, msg)
	case isPermissionDenied(err):
		return errors.Wrap(repository.ErrPermissionDenied, msg)
	case isGeneratedColumnWrite(err):
		return errors.Wrap(repository.ErrGeneratedColumn, msg)
	default:
		return errors.Wrap(err, msg)
	}
}
