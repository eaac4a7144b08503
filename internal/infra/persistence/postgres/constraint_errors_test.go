package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestViolatesConstraint_StructuredNameWinsOverMessage(t *testing.T) {
	// The driver's ConstraintName field is authoritative even when the
	// message text happens to mention the other index.
	err := &pgconn.PgError{
		Code:           pgUniqueViolation,
		Message:        `duplicate key value violates unique constraint "uq_certificates_user_course"`,
		ConstraintName: verificationCodeConstraint,
	}

	assert.True(t, violatesConstraint(err, verificationCodeConstraint))
	assert.False(t, violatesConstraint(err, userCourseConstraint))
}

func TestViolatesConstraint_FallsBackToMessageMatching(t *testing.T) {
	err := errors.New(`ERROR: duplicate key value violates unique constraint "uq_certificates_user_course" (SQLSTATE 23505)`)

	assert.True(t, violatesConstraint(err, userCourseConstraint))
	assert.False(t, violatesConstraint(err, verificationCodeConstraint))
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgUniqueViolation}))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(
		errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "create certificate")))

	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgUniqueViolation}))
}
