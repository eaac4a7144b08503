package impl

import (
	"context"
	"log/slog"

	"diploma/config"
	deliverycontext "diploma/internal/delivery/context"
	"diploma/internal/domain/repository"
	"diploma/internal/domain/service"
	"diploma/internal/errors"
	"diploma/internal/usecase"
)

type verificationService struct {
	certificateRepo repository.CertificateRepository
	identity        service.IdentitySource
	cfg             *config.CertificateConfig
	logger          *slog.Logger
}

// NewVerificationService creates a new verification service instance
func NewVerificationService(
	certificateRepo repository.CertificateRepository,
	identity service.IdentitySource,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.VerificationUsecase {
	return &verificationService{
		certificateRepo: certificateRepo,
		identity:        identity,
		cfg:             cfg.Certificate,
		logger:          logger,
	}
}

func (s *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// VerifyCode looks up a certificate by its verification code. The code is
// the sole credential: no authentication, no enumeration of certificates.
// An unknown code is a negative result, never an error, so a prober learns
// nothing beyond "this exact code is not valid".
func (s *verificationService) VerifyCode(ctx context.Context, code string) (*usecase.VerificationResult, error) {
	if code == "" {
		return &usecase.VerificationResult{Valid: false}, nil
	}

	certificate, err := s.certificateRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCertificateNotFound) {
			return &usecase.VerificationResult{Valid: false}, nil
		}

		return nil, errors.Wrap(err, "look up verification code")
	}

	user, err := s.identity.GetUserDisplay(ctx, certificate.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "resolve recipient")
	}

	// A deleted course must not invalidate an issued certificate; the title
	// and description degrade to empty instead.
	title := ""
	description := ""
	if course, err := s.identity.GetCourseDisplay(ctx, certificate.CourseID); err == nil {
		title = course.Title
		description = course.Description
	} else {
		s.log(ctx).Warn("course display unavailable during verification",
			slog.String("course_id", certificate.CourseID.String()),
			slog.Any("error", err),
		)
	}

	return &usecase.VerificationResult{
		Valid: true,
		Certificate: &usecase.PublicCertificateView{
			RecipientName:     user.Name,
			CourseTitle:       title,
			CourseDescription: description,
			IssuerName:        s.cfg.IssuerName,
			CompletedLessons:  certificate.Snapshot.CompletedLessons,
			TotalLessons:      certificate.Snapshot.TotalLessons,
			IssuedAt:          certificate.IssuedAt,
		},
	}, nil
}
