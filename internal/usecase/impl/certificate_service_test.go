package impl

import (
	"context"
	"testing"

	"diploma/internal/domain/entity"
	"diploma/internal/domain/repository"
	"diploma/internal/domain/service"
	"diploma/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCertificateService_IssueCertificate_Success(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	userID := uuid.New()
	courseID := uuid.New()
	lessons := lessonIDs(3)

	m.courseContent.EXPECT().GetRequiredLessonIDs(ctx, courseID).Return(lessons, nil)
	m.progress.EXPECT().GetCompletedLessonIDs(ctx, userID, courseID).Return(lessons, nil)
	m.certificateRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, certificate *entity.CourseCertificate) (*entity.CourseCertificate, bool, error) {
			return certificate, true, nil
		})
	m.publisher.EXPECT().PublishCertificateIssued(ctx, mock.Anything).Return(nil)
	m.identity.EXPECT().GetUserDisplay(ctx, userID).Return(&service.UserDisplay{Name: "Taylor Kim", Email: "taylor@example.com"}, nil)
	m.identity.EXPECT().GetCourseDisplay(ctx, courseID).Return(&service.CourseDisplay{Title: "Distributed Systems"}, nil)

	view, created, err := svc.IssueCertificate(ctx, userID, courseID)
	require.NoError(t, err)

	assert.True(t, created)
	assert.Equal(t, "Taylor Kim", view.RecipientName)
	assert.Equal(t, "Distributed Systems", view.CourseTitle)
	assert.Equal(t, 3, view.CompletedLessons)
	assert.Equal(t, 3, view.TotalLessons)
	assert.Equal(t, 100, view.Percentage)
	assert.NotEmpty(t, view.VerificationCode)
	assert.Equal(t, "https://learn.example.com/verify/"+view.VerificationCode, view.VerifyURL)
}

func TestCertificateService_IssueCertificate_Idempotent(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	userID := uuid.New()
	courseID := uuid.New()
	lessons := lessonIDs(2)
	existing := testCertificate(userID, courseID)

	m.courseContent.EXPECT().GetRequiredLessonIDs(ctx, courseID).Return(lessons, nil)
	m.progress.EXPECT().GetCompletedLessonIDs(ctx, userID, courseID).Return(lessons, nil)
	// Storage reports the pair already has a certificate.
	m.certificateRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything).Return(existing, false, nil)
	m.identity.EXPECT().GetUserDisplay(ctx, userID).Return(&service.UserDisplay{Name: "Taylor Kim"}, nil)
	m.identity.EXPECT().GetCourseDisplay(ctx, courseID).Return(&service.CourseDisplay{Title: "Distributed Systems"}, nil)

	view, created, err := svc.IssueCertificate(ctx, userID, courseID)
	require.NoError(t, err)

	// No event is published for the replayed request.
	assert.False(t, created)
	assert.Equal(t, existing.ID, view.ID)
	assert.Equal(t, existing.VerificationCode, view.VerificationCode)
}

func TestCertificateService_IssueCertificate_NotEligible(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	userID := uuid.New()
	courseID := uuid.New()
	lessons := lessonIDs(4)

	m.courseContent.EXPECT().GetRequiredLessonIDs(ctx, courseID).Return(lessons, nil)
	m.progress.EXPECT().GetCompletedLessonIDs(ctx, userID, courseID).Return(lessons[:3], nil)

	view, created, err := svc.IssueCertificate(ctx, userID, courseID)
	assert.Nil(t, view)
	assert.False(t, created)

	var notEligible *usecase.NotEligibleError
	require.ErrorAs(t, err, &notEligible)
	assert.Equal(t, 3, notEligible.CompletedCount)
	assert.Equal(t, 4, notEligible.TotalCount)
	assert.Equal(t, 75, notEligible.Percentage)
}

func TestCertificateService_IssueCertificate_CodeCollisionRetries(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	userID := uuid.New()
	courseID := uuid.New()
	lessons := lessonIDs(1)

	m.courseContent.EXPECT().GetRequiredLessonIDs(ctx, courseID).Return(lessons, nil)
	m.progress.EXPECT().GetCompletedLessonIDs(ctx, userID, courseID).Return(lessons, nil)

	var codes []string
	m.certificateRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, certificate *entity.CourseCertificate) (*entity.CourseCertificate, bool, error) {
			codes = append(codes, certificate.VerificationCode)
			if len(codes) == 1 {
				return nil, false, repository.ErrVerificationCodeCollision
			}

			return certificate, true, nil
		}).Times(2)
	m.publisher.EXPECT().PublishCertificateIssued(ctx, mock.Anything).Return(nil)
	m.identity.EXPECT().GetUserDisplay(ctx, userID).Return(&service.UserDisplay{Name: "Taylor Kim"}, nil)
	m.identity.EXPECT().GetCourseDisplay(ctx, courseID).Return(&service.CourseDisplay{Title: "Distributed Systems"}, nil)

	view, created, err := svc.IssueCertificate(ctx, userID, courseID)
	require.NoError(t, err)

	assert.True(t, created)
	require.Len(t, codes, 2)
	// The collided code is abandoned, never reused.
	assert.NotEqual(t, codes[0], codes[1])
	assert.Equal(t, codes[1], view.VerificationCode)
}

func TestCertificateService_IssueCertificate_PublishFailureIsNotFatal(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	userID := uuid.New()
	courseID := uuid.New()
	lessons := lessonIDs(1)

	m.courseContent.EXPECT().GetRequiredLessonIDs(ctx, courseID).Return(lessons, nil)
	m.progress.EXPECT().GetCompletedLessonIDs(ctx, userID, courseID).Return(lessons, nil)
	m.certificateRepo.EXPECT().CreateIfAbsent(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, certificate *entity.CourseCertificate) (*entity.CourseCertificate, bool, error) {
			return certificate, true, nil
		})
	m.publisher.EXPECT().PublishCertificateIssued(ctx, mock.Anything).Return(assert.AnError)
	m.identity.EXPECT().GetUserDisplay(ctx, userID).Return(&service.UserDisplay{Name: "Taylor Kim"}, nil)
	m.identity.EXPECT().GetCourseDisplay(ctx, courseID).Return(&service.CourseDisplay{Title: "Distributed Systems"}, nil)

	view, created, err := svc.IssueCertificate(ctx, userID, courseID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotNil(t, view)
}

func TestCertificateService_GetUserCertificates(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	userID := uuid.New()
	first := testCertificate(userID, uuid.New())
	second := testCertificate(userID, uuid.New())

	m.certificateRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CourseCertificate{first, second}, nil)
	m.identity.EXPECT().GetUserDisplay(ctx, userID).Return(&service.UserDisplay{Name: "Taylor Kim"}, nil).Times(2)
	m.identity.EXPECT().GetCourseDisplay(ctx, first.CourseID).Return(&service.CourseDisplay{Title: "Course A"}, nil)
	m.identity.EXPECT().GetCourseDisplay(ctx, second.CourseID).Return(&service.CourseDisplay{Title: "Course B"}, nil)

	views, err := svc.GetUserCertificates(ctx, userID)
	require.NoError(t, err)

	require.Len(t, views, 2)
	assert.Equal(t, "Course A", views[0].CourseTitle)
	assert.Equal(t, "Course B", views[1].CourseTitle)
}

func TestCertificateService_GetUserCertificates_DeletedCourseDegrades(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	userID := uuid.New()
	certificate := testCertificate(userID, uuid.New())

	m.certificateRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CourseCertificate{certificate}, nil)
	m.identity.EXPECT().GetUserDisplay(ctx, userID).Return(&service.UserDisplay{Name: "Taylor Kim"}, nil)
	m.identity.EXPECT().GetCourseDisplay(ctx, certificate.CourseID).Return(nil, service.ErrCourseNotFound)

	views, err := svc.GetUserCertificates(ctx, userID)
	require.NoError(t, err)

	// The certificate stays listed even when its course is gone.
	require.Len(t, views, 1)
	assert.Empty(t, views[0].CourseTitle)
	assert.Equal(t, certificate.VerificationCode, views[0].VerificationCode)
}

func TestCertificateService_RenderCertificateDocument_CacheHit(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	userID := uuid.New()
	certificate := testCertificate(userID, uuid.New())
	cached := []byte("cached-png")

	m.certificateRepo.EXPECT().FindByID(ctx, certificate.ID).Return(certificate, nil)
	m.renderer.EXPECT().FileExtension().Return("png")
	m.renderer.EXPECT().ContentType().Return("image/png")
	m.documents.EXPECT().Get(ctx, "certificates/"+certificate.ID.String()+".png").Return(cached, nil)

	doc, err := svc.RenderCertificateDocument(ctx, userID, certificate.ID)
	require.NoError(t, err)

	assert.Equal(t, cached, doc.Bytes)
	assert.Equal(t, "image/png", doc.ContentType)
	assert.Equal(t, "certificate-"+certificate.ID.String()+".png", doc.Filename)
}

func TestCertificateService_RenderCertificateDocument_CacheMiss(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	userID := uuid.New()
	certificate := testCertificate(userID, uuid.New())
	rendered := []byte("fresh-png")
	key := "certificates/" + certificate.ID.String() + ".png"

	m.certificateRepo.EXPECT().FindByID(ctx, certificate.ID).Return(certificate, nil)
	m.renderer.EXPECT().FileExtension().Return("png")
	m.renderer.EXPECT().ContentType().Return("image/png")
	m.documents.EXPECT().Get(ctx, key).Return(nil, service.ErrDocumentNotFound)
	m.identity.EXPECT().GetUserDisplay(ctx, userID).Return(&service.UserDisplay{Name: "Taylor Kim"}, nil)
	m.identity.EXPECT().GetCourseDisplay(ctx, certificate.CourseID).Return(&service.CourseDisplay{Title: "Distributed Systems"}, nil)
	m.renderer.EXPECT().Render(mock.Anything).
		RunAndReturn(func(data *service.CertificateDocumentData) ([]byte, error) {
			assert.Equal(t, "Example Academy", data.IssuerName)
			assert.Equal(t, "Taylor Kim", data.RecipientName)
			assert.Equal(t, certificate.VerificationCode, data.VerificationCode)
			assert.Equal(t, "https://learn.example.com/verify/"+certificate.VerificationCode, data.VerifyURL)

			return rendered, nil
		})
	m.documents.EXPECT().Put(ctx, key, rendered, "image/png").Return(nil)

	doc, err := svc.RenderCertificateDocument(ctx, userID, certificate.ID)
	require.NoError(t, err)
	assert.Equal(t, rendered, doc.Bytes)
}

func TestCertificateService_GenerateCertificateQR(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	userID := uuid.New()
	certificate := testCertificate(userID, uuid.New())
	qrPNG := []byte("qr-png")

	m.certificateRepo.EXPECT().FindByID(ctx, certificate.ID).Return(certificate, nil)
	m.qrSvc.EXPECT().GenerateVerificationQR("https://learn.example.com/verify/"+certificate.VerificationCode).Return(qrPNG, nil)

	data, err := svc.GenerateCertificateQR(ctx, userID, certificate.ID)
	require.NoError(t, err)
	assert.Equal(t, qrPNG, data)
}

func TestCertificateService_PrerenderDocument(t *testing.T) {
	svc, m := createTestCertificateService(t)

	ctx := context.Background()
	certificate := testCertificate(uuid.New(), uuid.New())
	rendered := []byte("prerendered-png")
	key := "certificates/" + certificate.ID.String() + ".png"

	m.certificateRepo.EXPECT().FindByID(ctx, certificate.ID).Return(certificate, nil)
	m.identity.EXPECT().GetUserDisplay(ctx, certificate.UserID).Return(&service.UserDisplay{Name: "Taylor Kim"}, nil)
	m.identity.EXPECT().GetCourseDisplay(ctx, certificate.CourseID).Return(&service.CourseDisplay{Title: "Distributed Systems"}, nil)
	m.renderer.EXPECT().Render(mock.Anything).Return(rendered, nil)
	m.renderer.EXPECT().FileExtension().Return("png")
	m.renderer.EXPECT().ContentType().Return("image/png")
	m.documents.EXPECT().Put(ctx, key, rendered, "image/png").Return(nil)

	err := svc.PrerenderDocument(ctx, certificate.ID)
	assert.NoError(t, err)
}
