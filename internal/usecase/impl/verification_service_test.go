package impl

import (
	"context"
	"testing"

	"diploma/internal/domain/repository"
	"diploma/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationService_VerifyCode_Valid(t *testing.T) {
	svc, certificateRepo, identity := createTestVerificationService(t)

	ctx := context.Background()
	certificate := testCertificate(uuid.New(), uuid.New())

	certificateRepo.EXPECT().FindByCode(ctx, certificate.VerificationCode).Return(certificate, nil)
	identity.EXPECT().GetUserDisplay(ctx, certificate.UserID).Return(&service.UserDisplay{Name: "Taylor Kim", Email: "taylor@example.com"}, nil)
	identity.EXPECT().GetCourseDisplay(ctx, certificate.CourseID).Return(&service.CourseDisplay{
		Title:       "Distributed Systems",
		Description: "Consensus, replication and failure models",
	}, nil)

	result, err := svc.VerifyCode(ctx, certificate.VerificationCode)
	require.NoError(t, err)

	assert.True(t, result.Valid)
	require.NotNil(t, result.Certificate)
	assert.Equal(t, "Taylor Kim", result.Certificate.RecipientName)
	assert.Equal(t, "Distributed Systems", result.Certificate.CourseTitle)
	assert.Equal(t, "Consensus, replication and failure models", result.Certificate.CourseDescription)
	assert.Equal(t, "Example Academy", result.Certificate.IssuerName)
	assert.Equal(t, 10, result.Certificate.CompletedLessons)
	assert.Equal(t, 10, result.Certificate.TotalLessons)
	assert.Equal(t, certificate.IssuedAt, result.Certificate.IssuedAt)
}

func TestVerificationService_VerifyCode_UnknownCode(t *testing.T) {
	svc, certificateRepo, _ := createTestVerificationService(t)

	ctx := context.Background()

	certificateRepo.EXPECT().FindByCode(ctx, "no-such-code").Return(nil, repository.ErrCertificateNotFound)

	result, err := svc.VerifyCode(ctx, "no-such-code")
	require.NoError(t, err)

	// An unknown code is a negative result, not an error.
	assert.False(t, result.Valid)
	assert.Nil(t, result.Certificate)
}

func TestVerificationService_VerifyCode_EmptyCode(t *testing.T) {
	svc, _, _ := createTestVerificationService(t)

	result, err := svc.VerifyCode(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestVerificationService_VerifyCode_RepositoryFailure(t *testing.T) {
	svc, certificateRepo, _ := createTestVerificationService(t)

	ctx := context.Background()

	certificateRepo.EXPECT().FindByCode(ctx, "some-code").Return(nil, errors.New("connection refused"))

	_, err := svc.VerifyCode(ctx, "some-code")
	assert.Error(t, err)
}

func TestVerificationService_VerifyCode_DeletedCourseStaysValid(t *testing.T) {
	svc, certificateRepo, identity := createTestVerificationService(t)

	ctx := context.Background()
	certificate := testCertificate(uuid.New(), uuid.New())

	certificateRepo.EXPECT().FindByCode(ctx, certificate.VerificationCode).Return(certificate, nil)
	identity.EXPECT().GetUserDisplay(ctx, certificate.UserID).Return(&service.UserDisplay{Name: "Taylor Kim"}, nil)
	identity.EXPECT().GetCourseDisplay(ctx, certificate.CourseID).Return(nil, service.ErrCourseNotFound)

	result, err := svc.VerifyCode(ctx, certificate.VerificationCode)
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Certificate.CourseTitle)
}
