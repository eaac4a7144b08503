package service

import (
	"context"

	"github.com/google/uuid"
)

// UserDisplay is the public-facing identity of a learner.
type UserDisplay struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CourseDisplay is the public-facing identity of a course.
type CourseDisplay struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// IdentitySource resolves user and course IDs to display metadata. Owned by
// the platform; resolved at response time rather than stored, so renamed
// users and retitled courses stay current everywhere except the immutable
// completion snapshot.
type IdentitySource interface {
	// GetUserDisplay resolves a user ID to a display name and email.
	GetUserDisplay(ctx context.Context, userID uuid.UUID) (*UserDisplay, error)

	// GetCourseDisplay resolves a course ID to a title and description.
	// Returns ErrCourseNotFound when the course does not exist.
	GetCourseDisplay(ctx context.Context, courseID uuid.UUID) (*CourseDisplay, error)
}
