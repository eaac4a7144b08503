package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseCertificateModel is the GORM-specific struct for the
// 'course_certificates' table. Two unique indexes carry the subsystem's
// invariants: one certificate per (user, course) pair, and globally unique
// verification codes. Rows are insert-only; there is no updated_at and no
// soft delete.
type CourseCertificateModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_certificates_user_course,priority:1;index:idx_certificates_user_issued,priority:1"`
	CourseID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_certificates_user_course,priority:2"`
	VerificationCode string    `gorm:"size:64;not null;uniqueIndex:uq_certificates_verification_code"`
	CompletedLessons int       `gorm:"not null"`
	TotalLessons     int       `gorm:"not null"`
	Percentage       int       `gorm:"not null"`
	IssuedAt         time.Time `gorm:"not null;index:idx_certificates_user_issued,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (CourseCertificateModel) TableName() string {
	return "course_certificates"
}
