// Package service defines interfaces for domain services and external
// collaborators consumed by the certificate subsystem.
package service

import (
	"context"

	"github.com/google/uuid"
)

// ProgressSource reports which lessons a learner has completed. It is owned
// by the learning platform; this subsystem reads it fresh on every issuance
// attempt and never caches or writes it.
type ProgressSource interface {
	// GetCompletedLessonIDs returns the lesson IDs the user has completed for
	// the given course at query time.
	GetCompletedLessonIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error)
}
