package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE classes for the constraint violations this layer discriminates.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// pgError unwraps the driver-level error when it survived the gorm call
// chain. Returns nil when the dialector translated the error away.
func pgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}

	return nil
}

func isUniqueConstraintViolation(err error) bool {
	if pgErr := pgError(err); pgErr != nil {
		return pgErr.Code == pgUniqueViolation
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Last resort when neither the structured error nor gorm's translation
	// is available.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, pgUniqueViolation)
}

// violatesConstraint reports whether the unique violation names the given
// index. CreateIfAbsent uses this to tell the (user, course) natural-key
// conflict apart from a verification-code collision; the two resolve very
// differently. The driver's ConstraintName field is authoritative; message
// matching is only the fallback for translated errors that kept their text.
func violatesConstraint(err error, constraintName string) bool {
	if pgErr := pgError(err); pgErr != nil && pgErr.ConstraintName != "" {
		return strings.EqualFold(pgErr.ConstraintName, constraintName)
	}

	return strings.Contains(strings.ToLower(err.Error()), strings.ToLower(constraintName))
}

func isForeignKeyConstraintViolation(err error) bool {
	if pgErr := pgError(err); pgErr != nil {
		return pgErr.Code == pgForeignKeyViolation
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") ||
		strings.Contains(errMsg, pgForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	if pgErr := pgError(err); pgErr != nil {
		return pgErr.Code == pgNotNullViolation
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, pgNotNullViolation)
}
