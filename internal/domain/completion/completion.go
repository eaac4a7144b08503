// Package completion decides whether a learner has completed a course.
// It is pure: no I/O, no clock, safe for concurrent use.
package completion

import (
	"diploma/internal/errors"

	"github.com/google/uuid"
)

// ErrNoContent is returned when a course has no required lessons. A course
// without lessons can never produce a certificate; treating the empty
// denominator as 100% would issue credentials for doing nothing.
var ErrNoContent = errors.New("course has no required lessons")

// Result holds the outcome of a completion evaluation.
type Result struct {
	Eligible         bool // True iff every required lesson is completed.
	CompletedLessons int  // Size of the intersection of required and completed.
	TotalLessons     int  // Number of required lessons.
	Percentage       int  // floor(100 * CompletedLessons / TotalLessons).
}

// Evaluate compares the required lesson set of a course against the lessons a
// learner has completed. Completed lessons that are no longer part of the
// course do not count. Eligibility is strict: all required lessons, not a
// threshold.
func Evaluate(requiredLessonIDs, completedLessonIDs []uuid.UUID) (Result, error) {
	required := make(map[uuid.UUID]struct{}, len(requiredLessonIDs))
	for _, id := range requiredLessonIDs {
		required[id] = struct{}{}
	}

	if len(required) == 0 {
		return Result{}, ErrNoContent
	}

	completed := 0
	seen := make(map[uuid.UUID]struct{}, len(completedLessonIDs))
	for _, id := range completedLessonIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := required[id]; ok {
			completed++
		}
	}

	total := len(required)

	return Result{
		Eligible:         completed == total,
		CompletedLessons: completed,
		TotalLessons:     total,
		Percentage:       completed * 100 / total,
	}, nil
}
