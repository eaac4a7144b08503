package postgres

import (
	"context"
	"testing"
	"time"

	"diploma/internal/domain/entity"
	"diploma/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepository(t *testing.T) (repository.CertificateRepository, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		// Matches the production session options in postgres.New.
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return NewCertificateRepository(gormDB), mock
}

func newStoredCertificate() *entity.CourseCertificate {
	return &entity.CourseCertificate{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		CourseID:         uuid.New(),
		VerificationCode: "k7fP2xGq9ZtRwX3lN0bYmA8dVcE",
		Snapshot: entity.CompletionSnapshot{
			CompletedLessons: 10,
			TotalLessons:     10,
			Percentage:       100,
		},
		IssuedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func certificateRows(certificate *entity.CourseCertificate) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "course_id", "verification_code",
		"completed_lessons", "total_lessons", "percentage", "issued_at",
	}).AddRow(
		certificate.ID.String(), certificate.UserID.String(), certificate.CourseID.String(),
		certificate.VerificationCode,
		certificate.Snapshot.CompletedLessons, certificate.Snapshot.TotalLessons,
		certificate.Snapshot.Percentage, certificate.IssuedAt,
	)
}

func uniqueViolation(constraintName string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           pgUniqueViolation,
		Message:        "duplicate key value violates unique constraint",
		ConstraintName: constraintName,
	}
}

func TestCertificateRepository_CreateIfAbsent_InsertsNewRow(t *testing.T) {
	repo, mock := newMockRepository(t)

	certificate := newStoredCertificate()
	mock.ExpectQuery(`INSERT INTO "course_certificates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(certificate.ID.String()))

	stored, created, err := repo.CreateIfAbsent(context.Background(), certificate)
	require.NoError(t, err)

	assert.True(t, created)
	assert.Equal(t, certificate.VerificationCode, stored.VerificationCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCertificateRepository_CreateIfAbsent_PairConflictReturnsExisting(t *testing.T) {
	repo, mock := newMockRepository(t)

	existing := newStoredCertificate()
	attempt := newStoredCertificate()
	attempt.UserID = existing.UserID
	attempt.CourseID = existing.CourseID
	attempt.VerificationCode = "a-different-freshly-rolled-code"

	mock.ExpectQuery(`INSERT INTO "course_certificates"`).
		WillReturnError(uniqueViolation(userCourseConstraint))
	mock.ExpectQuery(`SELECT (.+) FROM "course_certificates"`).
		WillReturnRows(certificateRows(existing))

	stored, created, err := repo.CreateIfAbsent(context.Background(), attempt)
	require.NoError(t, err)

	// Losing the race is not an error: the surviving row comes back
	// unchanged, with its original code.
	assert.False(t, created)
	assert.Equal(t, existing.ID, stored.ID)
	assert.Equal(t, existing.VerificationCode, stored.VerificationCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCertificateRepository_CreateIfAbsent_CodeCollision(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`INSERT INTO "course_certificates"`).
		WillReturnError(uniqueViolation(verificationCodeConstraint))

	_, _, err := repo.CreateIfAbsent(context.Background(), newStoredCertificate())

	// A code collision never triggers the pair re-read; the caller rolls a
	// fresh code and retries.
	assert.ErrorIs(t, err, repository.ErrVerificationCodeCollision)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCertificateRepository_CreateIfAbsent_TranslatedDuplicateWithoutPairRow(t *testing.T) {
	repo, mock := newMockRepository(t)

	// A dialector may swallow the driver error and hand back the bare
	// translated duplicate, losing the constraint name. When the follow-up
	// pair lookup then comes back empty, the only possible cause is a
	// verification code collision, which must surface as such rather than
	// as a load failure.
	mock.ExpectQuery(`INSERT INTO "course_certificates"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectQuery(`SELECT (.+) FROM "course_certificates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err := repo.CreateIfAbsent(context.Background(), newStoredCertificate())

	assert.ErrorIs(t, err, repository.ErrVerificationCodeCollision)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCertificateRepository_FindByCode_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM "course_certificates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByCode(context.Background(), "no-such-code")
	assert.ErrorIs(t, err, repository.ErrCertificateNotFound)
}
