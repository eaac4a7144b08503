package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"diploma/config"
	domainerrors "diploma/internal/domain/errors"
	"diploma/internal/domain/service"
	"diploma/internal/errors"
	mockusecase "diploma/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPushHandlerTest(t *testing.T) (*PushHandler, *mockusecase.MockCertificateUsecase) {
	mockUC := mockusecase.NewMockCertificateUsecase(t)
	h := &PushHandler{
		verifyPushAuth: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		certificateUC:  mockUC,
	}

	return h, mockUC
}

func pushRequest(t *testing.T, event *service.CertificateIssuedEvent, attributes map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	payload, err := json.Marshal(event)
	assert.NoError(t, err)

	msg := PubSubMessage{
		Subscription: "projects/local/subscriptions/certificate-issued-sub",
	}
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = event.CertificateID

	body, err := json.Marshal(msg)
	assert.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testIssuedEvent(certificateID uuid.UUID) *service.CertificateIssuedEvent {
	return &service.CertificateIssuedEvent{
		RequestID:     "req-123",
		CertificateID: certificateID.String(),
		UserID:        uuid.New().String(),
		CourseID:      uuid.New().String(),
		IssuedAt:      "2026-02-01T12:00:00Z",
	}
}

func TestPushHandler_HandlePush_Success(t *testing.T) {
	h, mockUC := newPushHandlerTest(t)

	certificateID := uuid.New()
	mockUC.EXPECT().PrerenderDocument(mock.Anything, certificateID).Return(nil)

	c, rec := pushRequest(t, testIssuedEvent(certificateID), map[string]string{
		"request_id": "attr-req-id",
	})
	err := h.HandlePush(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MissingCertificateIsNotRetried(t *testing.T) {
	h, mockUC := newPushHandlerTest(t)

	certificateID := uuid.New()
	mockUC.EXPECT().PrerenderDocument(mock.Anything, certificateID).
		Return(domainerrors.ErrCertificateNotFound)

	c, rec := pushRequest(t, testIssuedEvent(certificateID), nil)
	err := h.HandlePush(c)
	assert.NoError(t, err)
	// 200 acknowledges the message so Pub/Sub stops redelivering it
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MissingRecipientIsNotRetried(t *testing.T) {
	h, mockUC := newPushHandlerTest(t)

	certificateID := uuid.New()
	mockUC.EXPECT().PrerenderDocument(mock.Anything, certificateID).
		Return(errors.Wrap(domainerrors.ErrUserNotFound, "resolve recipient"))

	c, rec := pushRequest(t, testIssuedEvent(certificateID), nil)
	err := h.HandlePush(c)
	assert.NoError(t, err)
	// A deleted recipient will still be deleted on redelivery
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_TransientFailureIsRetried(t *testing.T) {
	h, mockUC := newPushHandlerTest(t)

	certificateID := uuid.New()
	mockUC.EXPECT().PrerenderDocument(mock.Anything, certificateID).
		Return(errors.New("connection refused"))

	c, rec := pushRequest(t, testIssuedEvent(certificateID), nil)
	err := h.HandlePush(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_MalformedBody(t *testing.T) {
	h, _ := newPushHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader([]byte("{not json")))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.HandlePush(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_BadCertificateID(t *testing.T) {
	h, _ := newPushHandlerTest(t)

	event := &service.CertificateIssuedEvent{
		CertificateID: "not-a-uuid",
		UserID:        uuid.New().String(),
		CourseID:      uuid.New().String(),
	}

	c, rec := pushRequest(t, event, nil)
	err := h.HandlePush(c)
	assert.NoError(t, err)
	// Unparseable IDs can never succeed, so the message is acknowledged
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewPushHandler_VerifyAuthGating(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "production"
	cfg.PubSub = &config.PubSubConfig{Provider: "google"}

	h := NewPushHandler(PushHandlerParams{
		Config:        cfg,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		CertificateUC: mockusecase.NewMockCertificateUsecase(t),
	})
	assert.True(t, h.verifyPushAuth)

	cfg.Env.Env = "develop"
	h = NewPushHandler(PushHandlerParams{
		Config:        cfg,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		CertificateUC: mockusecase.NewMockCertificateUsecase(t),
	})
	assert.False(t, h.verifyPushAuth)
}
