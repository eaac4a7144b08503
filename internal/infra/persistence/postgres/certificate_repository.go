// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"diploma/internal/domain/entity"
	domainerrors "diploma/internal/domain/errors"
	"diploma/internal/domain/repository"
	"diploma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	userCourseConstraint       = "uq_certificates_user_course"
	verificationCodeConstraint = "uq_certificates_verification_code"
)

// certificateRepository implements the repository.CertificateRepository interface.
type certificateRepository struct {
	db *gorm.DB
}

// NewCertificateRepository is the constructor for certificateRepository.
func NewCertificateRepository(db *gorm.DB) repository.CertificateRepository {
	return &certificateRepository{
		db: db,
	}
}

// CreateIfAbsent persists a new certificate unless one already exists for the
// (user, course) pair. The unique index is the sole synchronization
// primitive: when the insert loses a race (or the pair already holds a
// certificate), the existing row is re-read and returned unchanged, so the
// caller never observes a duplicate and never sees the conflict as an error.
func (repo *certificateRepository) CreateIfAbsent(ctx context.Context, certificate *entity.CourseCertificate) (*entity.CourseCertificate, bool, error) {
	certificateM := fromCertificateDomain(certificate)

	err := repo.db.WithContext(ctx).Create(certificateM).Error
	if err == nil {
		return toCertificateDomain(certificateM), true, nil
	}

	if isUniqueConstraintViolation(err) {
		if violatesConstraint(err, verificationCodeConstraint) {
			// A different certificate already owns this code. The caller
			// regenerates and retries; the existing row is left untouched.
			return nil, false, repository.ErrVerificationCodeCollision
		}

		existing, findErr := repo.FindByUserAndCourse(ctx, certificate.UserID, certificate.CourseID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrCertificateNotFound) {
				// The pair holds no row, so the unique violation must have
				// been the verification code even though the error lost its
				// constraint name on the way up. Regenerating is always safe.
				return nil, false, repository.ErrVerificationCodeCollision
			}

			return nil, false, errors.Wrap(findErr, "failed to load existing certificate after conflict")
		}

		return existing, false, nil
	}

	if isForeignKeyConstraintViolation(err) {
		return nil, false, domainerrors.ErrCertificateIssueFailed.WrapMessage("invalid user or course reference")
	}
	if isNotNullConstraintViolation(err) {
		return nil, false, domainerrors.ErrCertificateIssueFailed.WrapMessage("missing required certificate information")
	}

	return nil, false, domainerrors.NewDatabaseExecuteError(err, "failed to create certificate")
}

// FindByID retrieves a certificate by its surrogate ID.
func (repo *certificateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CourseCertificate, error) {
	var certificateM model.CourseCertificateModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&certificateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCertificateNotFound
		}

		return nil, errors.Wrap(err, "failed to find certificate by ID")
	}

	return toCertificateDomain(&certificateM), nil
}

// FindByCode retrieves a certificate by its verification code.
func (repo *certificateRepository) FindByCode(ctx context.Context, code string) (*entity.CourseCertificate, error) {
	var certificateM model.CourseCertificateModel

	if err := repo.db.WithContext(ctx).
		Where("verification_code = ?", code).
		First(&certificateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCertificateNotFound
		}

		return nil, errors.Wrap(err, "failed to find certificate by code")
	}

	return toCertificateDomain(&certificateM), nil
}

// FindByUserAndCourse retrieves the certificate for a (user, course) pair.
func (repo *certificateRepository) FindByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*entity.CourseCertificate, error) {
	var certificateM model.CourseCertificateModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&certificateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCertificateNotFound
		}

		return nil, errors.Wrap(err, "failed to find certificate by user and course")
	}

	return toCertificateDomain(&certificateM), nil
}

// FindByUser retrieves all certificates for a user, newest first.
func (repo *certificateRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CourseCertificate, error) {
	var certificateModels []*model.CourseCertificateModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("issued_at DESC").
		Find(&certificateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find certificates by user")
	}

	certificates := make([]*entity.CourseCertificate, 0, len(certificateModels))
	for _, certificateM := range certificateModels {
		certificates = append(certificates, toCertificateDomain(certificateM))
	}

	return certificates, nil
}

// --- Mapper Functions ---

// toCertificateDomain converts a GORM CourseCertificateModel to a domain CourseCertificate entity.
func toCertificateDomain(data *model.CourseCertificateModel) *entity.CourseCertificate {
	if data == nil {
		return nil
	}

	return &entity.CourseCertificate{
		ID:               data.ID,
		UserID:           data.UserID,
		CourseID:         data.CourseID,
		VerificationCode: data.VerificationCode,
		Snapshot: entity.CompletionSnapshot{
			CompletedLessons: data.CompletedLessons,
			TotalLessons:     data.TotalLessons,
			Percentage:       data.Percentage,
		},
		IssuedAt: data.IssuedAt,
	}
}

// fromCertificateDomain converts a domain CourseCertificate entity to a GORM CourseCertificateModel.
func fromCertificateDomain(data *entity.CourseCertificate) *model.CourseCertificateModel {
	if data == nil {
		return nil
	}

	return &model.CourseCertificateModel{
		ID:               data.ID,
		UserID:           data.UserID,
		CourseID:         data.CourseID,
		VerificationCode: data.VerificationCode,
		CompletedLessons: data.Snapshot.CompletedLessons,
		TotalLessons:     data.Snapshot.TotalLessons,
		Percentage:       data.Snapshot.Percentage,
		IssuedAt:         data.IssuedAt,
	}
}
