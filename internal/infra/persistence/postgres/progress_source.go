package postgres

import (
	"context"

	"diploma/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// progressSource implements service.ProgressSource against the platform's
// lesson_progresses table. Progress is never cached: every issuance attempt
// re-reads the current state.
type progressSource struct {
	db *gorm.DB
}

// NewProgressSource is the constructor for progressSource.
func NewProgressSource(db *gorm.DB) service.ProgressSource {
	return &progressSource{
		db: db,
	}
}

// GetCompletedLessonIDs returns the IDs of the course's lessons that the
// user has completed (completed_at set).
func (src *progressSource) GetCompletedLessonIDs(ctx context.Context, userID, courseID uuid.UUID) ([]uuid.UUID, error) {
	var lessonIDs []uuid.UUID

	query := `
		SELECT lp.lesson_id
		FROM lesson_progresses lp
		JOIN lessons l ON l.id = lp.lesson_id AND l.deleted_at IS NULL
		JOIN course_modules cm ON cm.id = l.module_id AND cm.deleted_at IS NULL
		WHERE lp.user_id = ?
		  AND cm.course_id = ?
		  AND lp.completed_at IS NOT NULL
	`

	if err := src.db.WithContext(ctx).
		Raw(query, userID, courseID).
		Scan(&lessonIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list completed lessons")
	}

	return lessonIDs, nil
}
