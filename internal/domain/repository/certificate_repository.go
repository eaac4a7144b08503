// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"diploma/internal/domain/entity"
	"diploma/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for certificate persistence.
var (
	// ErrCertificateNotFound is returned when a certificate is not found.
	ErrCertificateNotFound = errors.New("certificate not found")
	// ErrVerificationCodeCollision is returned when the generated verification
	// code is already in use by another certificate. Callers retry with a
	// fresh code; codes are never reassigned.
	ErrVerificationCodeCollision = errors.New("verification code already in use")
)

// CertificateRepository defines the interface for certificate-related database
// operations. Certificates are immutable: there are no update or delete
// operations.
type CertificateRepository interface {
	// CreateIfAbsent persists a new certificate unless one already exists for
	// the same (user, course) pair. It is atomic with respect to that
	// uniqueness: concurrent callers racing on the same pair all receive the
	// single surviving row, with created=true for exactly one of them.
	// Returns ErrVerificationCodeCollision when the code, not the pair,
	// violates uniqueness.
	CreateIfAbsent(ctx context.Context, certificate *entity.CourseCertificate) (*entity.CourseCertificate, bool, error)

	// FindByID retrieves a certificate by its surrogate ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CourseCertificate, error)

	// FindByCode retrieves a certificate by its verification code.
	FindByCode(ctx context.Context, code string) (*entity.CourseCertificate, error)

	// FindByUserAndCourse retrieves the certificate for a (user, course) pair.
	FindByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*entity.CourseCertificate, error)

	// FindByUser retrieves all certificates for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CourseCertificate, error)
}
