package service

import (
	"context"

	"diploma/internal/errors"

	"github.com/google/uuid"
)

// ErrCourseNotFound is returned when the referenced course does not exist.
var ErrCourseNotFound = errors.New("course not found")

// CourseContentSource exposes the lesson structure of courses. Owned by the
// learning platform; read-only here. Used only to enumerate the required
// lesson IDs that form the completion denominator.
type CourseContentSource interface {
	// GetRequiredLessonIDs returns every lesson ID belonging to the course
	// across all of its modules. Returns ErrCourseNotFound when the course
	// does not exist; an existing course with zero lessons returns an empty
	// slice and a nil error.
	GetRequiredLessonIDs(ctx context.Context, courseID uuid.UUID) ([]uuid.UUID, error)
}
