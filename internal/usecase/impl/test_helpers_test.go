package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"diploma/config"
	"diploma/internal/domain/entity"
	mockRepo "diploma/internal/mocks/repository"
	mockSvc "diploma/internal/mocks/service"
	"diploma/internal/usecase"

	"github.com/google/uuid"
)

// certificateServiceMocks bundles every collaborator of the certificate
// service so individual tests only touch the ones they care about.
type certificateServiceMocks struct {
	certificateRepo *mockRepo.MockCertificateRepository
	courseContent   *mockSvc.MockCourseContentSource
	progress        *mockSvc.MockProgressSource
	identity        *mockSvc.MockIdentitySource
	renderer        *mockSvc.MockCertificateRenderer
	qrSvc           *mockSvc.MockQRCodeService
	documents       *mockSvc.MockDocumentStore
	publisher       *mockSvc.MockEventPublisher
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Certificate = &config.CertificateConfig{
		IssuerName:          "Example Academy",
		VerificationBaseURL: "https://learn.example.com",
		CodeBytes:           20,
	}

	return cfg
}

func createTestCertificateService(t *testing.T) (usecase.CertificateUsecase, *certificateServiceMocks) {
	t.Helper()

	m := &certificateServiceMocks{
		certificateRepo: mockRepo.NewMockCertificateRepository(t),
		courseContent:   mockSvc.NewMockCourseContentSource(t),
		progress:        mockSvc.NewMockProgressSource(t),
		identity:        mockSvc.NewMockIdentitySource(t),
		renderer:        mockSvc.NewMockCertificateRenderer(t),
		qrSvc:           mockSvc.NewMockQRCodeService(t),
		documents:       mockSvc.NewMockDocumentStore(t),
		publisher:       mockSvc.NewMockEventPublisher(t),
	}

	service := NewCertificateService(
		m.certificateRepo,
		m.courseContent,
		m.progress,
		m.identity,
		m.renderer,
		m.qrSvc,
		m.documents,
		m.publisher,
		newTestConfig(),
		newDiscardLogger(),
	)

	return service, m
}

func createTestVerificationService(t *testing.T) (usecase.VerificationUsecase, *mockRepo.MockCertificateRepository, *mockSvc.MockIdentitySource) {
	t.Helper()

	certificateRepo := mockRepo.NewMockCertificateRepository(t)
	identity := mockSvc.NewMockIdentitySource(t)

	service := NewVerificationService(certificateRepo, identity, newTestConfig(), newDiscardLogger())

	return service, certificateRepo, identity
}

func testCertificate(userID, courseID uuid.UUID) *entity.CourseCertificate {
	return &entity.CourseCertificate{
		ID:               uuid.New(),
		UserID:           userID,
		CourseID:         courseID,
		VerificationCode: "k7fP2xGq9ZtRwX3lN0bYmA8dVcE",
		Snapshot: entity.CompletionSnapshot{
			CompletedLessons: 10,
			TotalLessons:     10,
			Percentage:       100,
		},
		IssuedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func lessonIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, uuid.New())
	}

	return ids
}
