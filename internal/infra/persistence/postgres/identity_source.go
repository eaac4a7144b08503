package postgres

import (
	"context"

	domainerrors "diploma/internal/domain/errors"
	"diploma/internal/domain/service"
	"diploma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// identitySource implements service.IdentitySource against the platform's
// users and courses tables. Read-only.
type identitySource struct {
	db *gorm.DB
}

// NewIdentitySource is the constructor for identitySource.
func NewIdentitySource(db *gorm.DB) service.IdentitySource {
	return &identitySource{
		db: db,
	}
}

// GetUserDisplay resolves a user ID to a display name and email.
func (src *identitySource) GetUserDisplay(ctx context.Context, userID uuid.UUID) (*service.UserDisplay, error) {
	var userM model.UserModel

	if err := src.db.WithContext(ctx).
		Select("name", "email").
		Where("id = ?", userID).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user display")
	}

	return &service.UserDisplay{
		Name:  userM.Name,
		Email: userM.Email,
	}, nil
}

// GetCourseDisplay resolves a course ID to a title and description.
func (src *identitySource) GetCourseDisplay(ctx context.Context, courseID uuid.UUID) (*service.CourseDisplay, error) {
	var courseM model.CourseModel

	if err := src.db.WithContext(ctx).
		Select("title", "description").
		Where("id = ?", courseID).
		First(&courseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course display")
	}

	return &service.CourseDisplay{
		Title:       courseM.Title,
		Description: courseM.Description,
	}, nil
}
