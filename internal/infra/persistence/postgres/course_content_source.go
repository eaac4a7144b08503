package postgres

import (
	"context"

	"diploma/internal/domain/service"
	"diploma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// courseContentSource implements service.CourseContentSource against the
// platform's course tables. Read-only.
type courseContentSource struct {
	db *gorm.DB
}

// NewCourseContentSource is the constructor for courseContentSource.
func NewCourseContentSource(db *gorm.DB) service.CourseContentSource {
	return &courseContentSource{
		db: db,
	}
}

// GetRequiredLessonIDs returns every lesson ID of the course across all of
// its modules. The course's existence is checked first so that an empty
// course and a missing course stay distinguishable.
func (src *courseContentSource) GetRequiredLessonIDs(ctx context.Context, courseID uuid.UUID) ([]uuid.UUID, error) {
	var course model.CourseModel
	if err := src.db.WithContext(ctx).
		Select("id").
		Where("id = ?", courseID).
		First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course")
	}

	var lessonIDs []uuid.UUID
	if err := src.db.WithContext(ctx).
		Model(&model.LessonModel{}).
		Joins("JOIN course_modules ON course_modules.id = lessons.module_id AND course_modules.deleted_at IS NULL").
		Where("course_modules.course_id = ?", courseID).
		Pluck("lessons.id", &lessonIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list course lessons")
	}

	return lessonIDs, nil
}
