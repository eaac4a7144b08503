// Package impl contains the implementations of the usecase interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"diploma/config"
	deliverycontext "diploma/internal/delivery/context"
	"diploma/internal/domain/completion"
	"diploma/internal/domain/entity"
	domainerrors "diploma/internal/domain/errors"
	"diploma/internal/domain/repository"
	"diploma/internal/domain/service"
	"diploma/internal/errors"
	"diploma/internal/usecase"
	"diploma/internal/util"

	"github.com/google/uuid"
)

// codeRetryAttempts bounds the retry loop on verification code collisions.
// A collision needs two identical 20-byte random values, so a second
// attempt is already astronomically unlikely.
const codeRetryAttempts = 3

type certificateService struct {
	certificateRepo repository.CertificateRepository
	courseContent   service.CourseContentSource
	progress        service.ProgressSource
	identity        service.IdentitySource
	renderer        service.CertificateRenderer
	qrSvc           service.QRCodeService
	documents       service.DocumentStore
	publisher       service.EventPublisher
	cfg             *config.CertificateConfig
	logger          *slog.Logger
}

// NewCertificateService creates a new certificate service instance
func NewCertificateService(
	certificateRepo repository.CertificateRepository,
	courseContent service.CourseContentSource,
	progress service.ProgressSource,
	identity service.IdentitySource,
	renderer service.CertificateRenderer,
	qrSvc service.QRCodeService,
	documents service.DocumentStore,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CertificateUsecase {
	return &certificateService{
		certificateRepo: certificateRepo,
		courseContent:   courseContent,
		progress:        progress,
		identity:        identity,
		renderer:        renderer,
		qrSvc:           qrSvc,
		documents:       documents,
		publisher:       publisher,
		cfg:             cfg.Certificate,
		logger:          logger,
	}
}

// log returns the request-scoped logger from context, or the service logger.
func (s *certificateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// IssueCertificate evaluates completion and issues a certificate when the
// course is fully completed. Concurrent requests for the same (user, course)
// pair are resolved by the storage layer's uniqueness guarantee: all callers
// converge on the single surviving certificate.
func (s *certificateService) IssueCertificate(ctx context.Context, userID, courseID uuid.UUID) (*usecase.CertificateView, bool, error) {
	required, err := s.courseContent.GetRequiredLessonIDs(ctx, courseID)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			return nil, false, domainerrors.ErrCourseNotFound
		}

		return nil, false, errors.Wrap(err, "fetch required lessons")
	}

	completed, err := s.progress.GetCompletedLessonIDs(ctx, userID, courseID)
	if err != nil {
		return nil, false, errors.Wrap(err, "fetch completed lessons")
	}

	result, err := completion.Evaluate(required, completed)
	if err != nil {
		if errors.Is(err, completion.ErrNoContent) {
			return nil, false, domainerrors.ErrCourseHasNoLessons
		}

		return nil, false, errors.Wrap(err, "evaluate completion")
	}

	if !result.Eligible {
		return nil, false, &usecase.NotEligibleError{
			Percentage:     result.Percentage,
			CompletedCount: result.CompletedLessons,
			TotalCount:     result.TotalLessons,
		}
	}

	certificate, created, err := s.createWithFreshCode(ctx, userID, courseID, result)
	if err != nil {
		return nil, false, err
	}

	if created {
		s.log(ctx).Info("certificate issued",
			slog.String("certificate_id", certificate.ID.String()),
			slog.String("user_id", userID.String()),
			slog.String("course_id", courseID.String()),
		)

		s.publishIssuedEvent(ctx, certificate)
	}

	view, err := s.buildView(ctx, certificate)
	if err != nil {
		return nil, false, err
	}

	return view, created, nil
}

// createWithFreshCode persists the certificate, regenerating the verification
// code if it happens to collide with an existing one. The (user, course)
// uniqueness is handled inside CreateIfAbsent and is not retried here.
func (s *certificateService) createWithFreshCode(
	ctx context.Context,
	userID, courseID uuid.UUID,
	result completion.Result,
) (*entity.CourseCertificate, bool, error) {
	for attempt := 0; attempt < codeRetryAttempts; attempt++ {
		code, err := util.GenerateVerificationCode(s.cfg.CodeBytes)
		if err != nil {
			return nil, false, errors.Wrap(err, "generate verification code")
		}

		certificate := &entity.CourseCertificate{
			ID:               uuid.New(),
			UserID:           userID,
			CourseID:         courseID,
			VerificationCode: code,
			Snapshot: entity.CompletionSnapshot{
				CompletedLessons: result.CompletedLessons,
				TotalLessons:     result.TotalLessons,
				Percentage:       result.Percentage,
			},
			IssuedAt: time.Now().UTC(),
		}

		stored, created, err := s.certificateRepo.CreateIfAbsent(ctx, certificate)
		if err != nil {
			if errors.Is(err, repository.ErrVerificationCodeCollision) {
				s.log(ctx).Warn("verification code collision, regenerating",
					slog.Int("attempt", attempt+1),
				)

				continue
			}

			return nil, false, err
		}

		return stored, created, nil
	}

	return nil, false, domainerrors.ErrCertificateIssueFailed.WrapMessage("exhausted verification code attempts")
}

// publishIssuedEvent emits the certificate.issued event. Publishing is best
// effort: the certificate row is already durable, so a broker outage only
// delays document pre-rendering.
func (s *certificateService) publishIssuedEvent(ctx context.Context, certificate *entity.CourseCertificate) {
	event := &service.CertificateIssuedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		CertificateID: certificate.ID.String(),
		UserID:        certificate.UserID.String(),
		CourseID:      certificate.CourseID.String(),
		IssuedAt:      certificate.IssuedAt.Format(time.RFC3339),
	}

	if err := s.publisher.PublishCertificateIssued(ctx, event); err != nil {
		s.log(ctx).Warn("failed to publish certificate issued event",
			slog.String("certificate_id", certificate.ID.String()),
			slog.Any("error", err),
		)
	}
}

// GetUserCertificates lists the user's certificates, newest first.
func (s *certificateService) GetUserCertificates(ctx context.Context, userID uuid.UUID) ([]*usecase.CertificateView, error) {
	certificates, err := s.certificateRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list certificates")
	}

	views := make([]*usecase.CertificateView, 0, len(certificates))
	for _, certificate := range certificates {
		view, err := s.buildView(ctx, certificate)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

// RenderCertificateDocument returns the printable document for one of the
// user's certificates. A cached pre-rendered copy is served when present;
// otherwise the document is rendered on demand and cached best effort.
func (s *certificateService) RenderCertificateDocument(ctx context.Context, userID, certificateID uuid.UUID) (*usecase.CertificateDocument, error) {
	certificate, err := s.ownedCertificate(ctx, userID, certificateID)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("certificate-%s.%s", certificate.ID, s.renderer.FileExtension())
	key := documentKey(certificate.ID, s.renderer.FileExtension())

	if cached, err := s.documents.Get(ctx, key); err == nil {
		return &usecase.CertificateDocument{
			Bytes:       cached,
			ContentType: s.renderer.ContentType(),
			Filename:    filename,
		}, nil
	} else if !errors.Is(err, service.ErrDocumentNotFound) {
		s.log(ctx).Warn("document cache read failed, rendering on demand",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}

	data, err := s.buildDocumentData(ctx, certificate)
	if err != nil {
		return nil, err
	}

	rendered, err := s.renderer.Render(data)
	if err != nil {
		s.log(ctx).Error("certificate rendering failed",
			slog.String("certificate_id", certificate.ID.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrRenderFailed
	}

	if err := s.documents.Put(ctx, key, rendered, s.renderer.ContentType()); err != nil {
		s.log(ctx).Warn("failed to cache rendered document",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}

	return &usecase.CertificateDocument{
		Bytes:       rendered,
		ContentType: s.renderer.ContentType(),
		Filename:    filename,
	}, nil
}

// GenerateCertificateQR returns a PNG QR code pointing at the certificate's
// public verification URL.
func (s *certificateService) GenerateCertificateQR(ctx context.Context, userID, certificateID uuid.UUID) ([]byte, error) {
	certificate, err := s.ownedCertificate(ctx, userID, certificateID)
	if err != nil {
		return nil, err
	}

	qr, err := s.qrSvc.GenerateVerificationQR(s.verifyURL(certificate.VerificationCode))
	if err != nil {
		return nil, errors.Wrap(err, "generate verification qr")
	}

	return qr, nil
}

// PrerenderDocument renders and caches the document for a freshly issued
// certificate. Unlike the download path the cache write is mandatory here;
// warming the cache is the entire point of the call.
func (s *certificateService) PrerenderDocument(ctx context.Context, certificateID uuid.UUID) error {
	certificate, err := s.certificateRepo.FindByID(ctx, certificateID)
	if err != nil {
		if errors.Is(err, repository.ErrCertificateNotFound) {
			return domainerrors.ErrCertificateNotFound
		}

		return errors.Wrap(err, "fetch certificate")
	}

	data, err := s.buildDocumentData(ctx, certificate)
	if err != nil {
		return err
	}

	rendered, err := s.renderer.Render(data)
	if err != nil {
		return domainerrors.ErrRenderFailed.WrapMessage("prerender certificate document")
	}

	key := documentKey(certificate.ID, s.renderer.FileExtension())
	if err := s.documents.Put(ctx, key, rendered, s.renderer.ContentType()); err != nil {
		return errors.Wrapf(err, "cache document %q", key)
	}

	s.log(ctx).Info("certificate document prerendered",
		slog.String("certificate_id", certificate.ID.String()),
		slog.Int("bytes", len(rendered)),
	)

	return nil
}

// ownedCertificate loads a certificate and enforces that it belongs to the
// requesting user.
func (s *certificateService) ownedCertificate(ctx context.Context, userID, certificateID uuid.UUID) (*entity.CourseCertificate, error) {
	certificate, err := s.certificateRepo.FindByID(ctx, certificateID)
	if err != nil {
		if errors.Is(err, repository.ErrCertificateNotFound) {
			return nil, domainerrors.ErrCertificateNotFound
		}

		return nil, errors.Wrap(err, "fetch certificate")
	}

	if certificate.UserID != userID {
		return nil, domainerrors.ErrCertificateOwnershipViolation
	}

	return certificate, nil
}

// buildDocumentData assembles everything the renderer needs for one page.
func (s *certificateService) buildDocumentData(ctx context.Context, certificate *entity.CourseCertificate) (*service.CertificateDocumentData, error) {
	user, err := s.identity.GetUserDisplay(ctx, certificate.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "resolve recipient")
	}

	course := s.courseDisplayOrFallback(ctx, certificate.CourseID)

	return &service.CertificateDocumentData{
		IssuerName:        s.cfg.IssuerName,
		RecipientName:     user.Name,
		CourseTitle:       course.Title,
		CourseDescription: course.Description,
		IssuedAt:          certificate.IssuedAt,
		VerificationCode:  certificate.VerificationCode,
		VerifyURL:         s.verifyURL(certificate.VerificationCode),
		CompletedLessons:  certificate.Snapshot.CompletedLessons,
		TotalLessons:      certificate.Snapshot.TotalLessons,
	}, nil
}

// buildView assembles the owner-facing projection of a certificate.
func (s *certificateService) buildView(ctx context.Context, certificate *entity.CourseCertificate) (*usecase.CertificateView, error) {
	user, err := s.identity.GetUserDisplay(ctx, certificate.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "resolve recipient")
	}

	course := s.courseDisplayOrFallback(ctx, certificate.CourseID)

	return &usecase.CertificateView{
		ID:               certificate.ID,
		CourseID:         certificate.CourseID,
		CourseTitle:      course.Title,
		RecipientName:    user.Name,
		VerificationCode: certificate.VerificationCode,
		VerifyURL:        s.verifyURL(certificate.VerificationCode),
		CompletedLessons: certificate.Snapshot.CompletedLessons,
		TotalLessons:     certificate.Snapshot.TotalLessons,
		Percentage:       certificate.Snapshot.Percentage,
		IssuedAt:         certificate.IssuedAt,
	}, nil
}

// courseDisplayOrFallback resolves course metadata. A certificate outlives
// its course: when the course was deleted the certificate stays valid and
// the title degrades to empty rather than failing the whole response.
func (s *certificateService) courseDisplayOrFallback(ctx context.Context, courseID uuid.UUID) *service.CourseDisplay {
	course, err := s.identity.GetCourseDisplay(ctx, courseID)
	if err != nil {
		s.log(ctx).Warn("course display unavailable",
			slog.String("course_id", courseID.String()),
			slog.Any("error", err),
		)

		return &service.CourseDisplay{}
	}

	return course
}

func (s *certificateService) verifyURL(code string) string {
	return fmt.Sprintf("%s/verify/%s", s.cfg.VerificationBaseURL, code)
}

// documentKey is the bucket key for a certificate's pre-rendered document.
// Shared with the render worker so pre-rendered and on-demand copies land on
// the same object.
func documentKey(certificateID uuid.UUID, extension string) string {
	return fmt.Sprintf("certificates/%s.%s", certificateID, extension)
}
