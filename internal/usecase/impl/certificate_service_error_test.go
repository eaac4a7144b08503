package impl

import (
	"context"
	"testing"

	domainerrors "diploma/internal/domain/errors"
	"diploma/internal/domain/repository"
	"diploma/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCertificateService_IssueCertificate_CourseNotFound(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	userID := uuid.New()
	courseID := uuid.New()

	m.courseContent.EXPECT().GetRequiredLessonIDs(ctx, courseID).Return(nil, service.ErrCourseNotFound)

	_, _, err := svc.IssueCertificate(ctx, userID, courseID)
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestCertificateService_IssueCertificate_EmptyCourse(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	userID := uuid.New()
	courseID := uuid.New()

	m.courseContent.EXPECT().GetRequiredLessonIDs(ctx, courseID).Return([]uuid.UUID{}, nil)
	m.progress.EXPECT().GetCompletedLessonIDs(ctx, userID, courseID).Return([]uuid.UUID{}, nil)

	_, _, err := svc.IssueCertificate(ctx, userID, courseID)
	assert.ErrorIs(t, err, domainerrors.ErrCourseHasNoLessons)
}

func TestCertificateService_IssueCertificate_ProgressFailure(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	userID := uuid.New()
	courseID := uuid.New()

	m.courseContent.EXPECT().GetRequiredLessonIDs(ctx, courseID).Return(lessonIDs(2), nil)
	m.progress.EXPECT().GetCompletedLessonIDs(ctx, userID, courseID).Return(nil, errors.New("connection refused"))

	_, _, err := svc.IssueCertificate(ctx, userID, courseID)
	assert.Error(t, err)
}

func TestCertificateService_IssueCertificate_ExhaustedCodeAttempts(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	userID := uuid.New()
	courseID := uuid.New()
	lessons := lessonIDs(1)

	m.courseContent.EXPECT().GetRequiredLessonIDs(ctx, courseID).Return(lessons, nil)
	m.progress.EXPECT().GetCompletedLessonIDs(ctx, userID, courseID).Return(lessons, nil)
	m.certificateRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything).
		Return(nil, false, repository.ErrVerificationCodeCollision).Times(codeRetryAttempts)

	_, _, err := svc.IssueCertificate(ctx, userID, courseID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrCertificateIssueFailed.ErrorCode(), appErr.ErrorCode())
}

func TestCertificateService_RenderCertificateDocument_NotFound(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	certificateID := uuid.New()

	m.certificateRepo.EXPECT().FindByID(ctx, certificateID).Return(nil, repository.ErrCertificateNotFound)

	_, err := svc.RenderCertificateDocument(ctx, uuid.New(), certificateID)
	assert.ErrorIs(t, err, domainerrors.ErrCertificateNotFound)
}

func TestCertificateService_RenderCertificateDocument_WrongOwner(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	owner := uuid.New()
	certificate := testCertificate(owner, uuid.New())

	m.certificateRepo.EXPECT().FindByID(ctx, certificate.ID).Return(certificate, nil)

	_, err := svc.RenderCertificateDocument(ctx, uuid.New(), certificate.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCertificateOwnershipViolation)
}

func TestCertificateService_RenderCertificateDocument_RenderFailure(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	userID := uuid.New()
	certificate := testCertificate(userID, uuid.New())
	key := "certificates/" + certificate.ID.String() + ".png"

	m.certificateRepo.EXPECT().FindByID(ctx, certificate.ID).Return(certificate, nil)
	m.renderer.EXPECT().FileExtension().Return("png")
	m.documents.EXPECT().Get(ctx, key).Return(nil, service.ErrDocumentNotFound)
	m.identity.EXPECT().GetUserDisplay(ctx, userID).Return(&service.UserDisplay{Name: "Taylor Kim"}, nil)
	m.identity.EXPECT().GetCourseDisplay(ctx, certificate.CourseID).Return(&service.CourseDisplay{Title: "Distributed Systems"}, nil)
	m.renderer.EXPECT().Render(mock.Anything).Return(nil, errors.New("font corrupted"))

	_, err := svc.RenderCertificateDocument(ctx, userID, certificate.ID)
	assert.ErrorIs(t, err, domainerrors.ErrRenderFailed)
}

func TestCertificateService_GenerateCertificateQR_WrongOwner(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	certificate := testCertificate(uuid.New(), uuid.New())

	m.certificateRepo.EXPECT().FindByID(ctx, certificate.ID).Return(certificate, nil)

	_, err := svc.GenerateCertificateQR(ctx, uuid.New(), certificate.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCertificateOwnershipViolation)
}
