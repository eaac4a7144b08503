package model

import (
	"time"

	"github.com/google/uuid"
)

// LessonProgressModel maps the 'lesson_progresses' table, owned by the
// platform's progress tracker. A lesson counts as completed when
// completed_at is set. Read-only here; re-queried fresh on every issuance
// attempt.
type LessonProgressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_lesson_progresses_user_lesson,priority:1"`
	LessonID    uuid.UUID `gorm:"type:uuid;not null;index:idx_lesson_progresses_user_lesson,priority:2"`
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LessonProgressModel) TableName() string {
	return "lesson_progresses"
}
