// Package usecase defines the application-level interfaces of the project.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotEligibleError is returned when a learner requests a certificate before
// completing every required lesson. It carries the progress breakdown so the
// caller can tell the learner exactly how far along they are.
type NotEligibleError struct {
	Percentage     int `json:"percentage"`
	CompletedCount int `json:"completed_lessons"`
	TotalCount     int `json:"total_lessons"`
}

func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("course not completed: %d/%d lessons (%d%%)",
		e.CompletedCount, e.TotalCount, e.Percentage)
}

// CertificateView is the owner-facing representation of a certificate,
// enriched with display metadata resolved at response time.
type CertificateView struct {
	ID               uuid.UUID `json:"id"`
	CourseID         uuid.UUID `json:"course_id"`
	CourseTitle      string    `json:"course_title"`
	RecipientName    string    `json:"recipient_name"`
	VerificationCode string    `json:"verification_code"`
	VerifyURL        string    `json:"verify_url"`
	CompletedLessons int       `json:"completed_lessons"`
	TotalLessons     int       `json:"total_lessons"`
	Percentage       int       `json:"percentage"`
	IssuedAt         time.Time `json:"issued_at"`
}

// CertificateDocument is a rendered certificate ready to be served.
type CertificateDocument struct {
	Bytes       []byte
	ContentType string
	Filename    string
}

// CertificateUsecase defines the interface for certificate issuance and
// retrieval use cases
type CertificateUsecase interface {
	// IssueCertificate evaluates the user's completion of the course and
	// issues a certificate when every required lesson is completed. Issuance
	// is idempotent: repeated calls return the existing certificate, and the
	// created flag reports whether this call produced a new one. Returns
	// *NotEligibleError when the course is not fully completed.
	IssueCertificate(ctx context.Context, userID, courseID uuid.UUID) (*CertificateView, bool, error)

	// GetUserCertificates lists the user's certificates, newest first.
	GetUserCertificates(ctx context.Context, userID uuid.UUID) ([]*CertificateView, error)

	// RenderCertificateDocument returns the printable document for one of the
	// user's certificates, serving the pre-rendered copy when one is cached.
	RenderCertificateDocument(ctx context.Context, userID, certificateID uuid.UUID) (*CertificateDocument, error)

	// GenerateCertificateQR returns a PNG QR code pointing at the public
	// verification URL of one of the user's certificates.
	GenerateCertificateQR(ctx context.Context, userID, certificateID uuid.UUID) ([]byte, error)

	// PrerenderDocument renders the certificate's document and stores it in
	// the document cache. Called by the render worker after issuance so the
	// first download is served from cache.
	PrerenderDocument(ctx context.Context, certificateID uuid.UUID) error
}
