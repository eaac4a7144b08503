package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The course content tables below are owned by the learning platform. The
// certificate subsystem maps them read-only: it enumerates required lessons
// and resolves display metadata, and never writes a row.

// CourseModel maps the 'courses' table.
type CourseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}

// CourseModuleModel maps the 'course_modules' table. Modules group lessons;
// ordering matters for the platform UI but not for completion evaluation.
type CourseModuleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"size:255;not null"`
	Position  int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CourseModuleModel) TableName() string {
	return "course_modules"
}

// LessonModel maps the 'lessons' table.
type LessonModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ModuleID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"size:255;not null"`
	Position  int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (LessonModel) TableName() string {
	return "lessons"
}
