// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompletionSnapshot captures the completion metrics at the moment of
// issuance. It is copied onto the certificate row so that later changes to
// the course's lesson set can never alter an already-issued certificate.
type CompletionSnapshot struct {
	CompletedLessons int `json:"completed_lessons"` // Lessons the learner had completed at issuance.
	TotalLessons     int `json:"total_lessons"`     // Required lessons of the course at issuance.
	Percentage       int `json:"percentage"`        // floor(100 * completed / total) at issuance.
}

// CourseCertificate is the durable record proving that a user completed a
// course. At most one certificate exists per (UserID, CourseID) pair, and a
// certificate is never mutated or deleted after creation.
type CourseCertificate struct {
	ID               uuid.UUID          `json:"id"`                // The Global Unique Identifier (GUID) for the certificate.
	UserID           uuid.UUID          `json:"user_id"`           // The learner the certificate was issued to.
	CourseID         uuid.UUID          `json:"course_id"`         // The completed course.
	VerificationCode string             `json:"verification_code"` // Opaque URL-safe token for public verification; globally unique, never reused.
	Snapshot         CompletionSnapshot `json:"snapshot"`          // Completion metrics frozen at issuance.
	IssuedAt         time.Time          `json:"issued_at"`         // Timestamp of issuance, set once at creation.
}
