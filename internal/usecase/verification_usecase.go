package usecase

import (
	"context"
	"time"
)

// PublicCertificateView is the third-party-facing projection of a
// certificate. It intentionally omits the learner's email and any internal
// identifiers; a verifier only needs to see who completed what, and when.
type PublicCertificateView struct {
	RecipientName     string    `json:"recipient_name"`
	CourseTitle       string    `json:"course_title"`
	CourseDescription string    `json:"course_description,omitempty"`
	IssuerName        string    `json:"issuer_name"`
	CompletedLessons  int       `json:"completed_lessons"`
	TotalLessons      int       `json:"total_lessons"`
	IssuedAt          time.Time `json:"issued_at"`
}

// VerificationResult is the outcome of a public verification lookup.
// An unknown code is a negative result, not an error.
type VerificationResult struct {
	Valid       bool                   `json:"valid"`
	Certificate *PublicCertificateView `json:"certificate,omitempty"`
}

// VerificationUsecase defines the interface for public certificate
// verification. No authentication is involved; the verification code is the
// sole credential.
type VerificationUsecase interface {
	// VerifyCode looks up a certificate by its verification code. A code
	// with no matching certificate yields {Valid: false} and a nil error so
	// that probing responses are indistinguishable from lookups of revoked
	// or mistyped codes.
	VerifyCode(ctx context.Context, code string) (*VerificationResult, error)
}
