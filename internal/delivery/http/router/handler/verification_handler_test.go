package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockusecase "diploma/internal/mocks/usecase"
	"diploma/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newVerificationHandlerTest(t *testing.T) (*VerificationHandler, *mockusecase.MockVerificationUsecase) {
	mockUC := mockusecase.NewMockVerificationUsecase(t)
	h := &VerificationHandler{
		verificationUC: mockUC,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	return h, mockUC
}

func verifyRequest(code string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/verify/"+code, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/verify/:code")
	c.SetParamNames("code")
	c.SetParamValues(code)

	return c, rec
}

func TestVerificationHandler_VerifyCode_Valid(t *testing.T) {
	h, mockUC := newVerificationHandlerTest(t)

	issuedAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	mockUC.EXPECT().VerifyCode(mock.Anything, "k7fP2xGq9ZtRwX3lN0bYmA8dVcE").Return(&usecase.VerificationResult{
		Valid: true,
		Certificate: &usecase.PublicCertificateView{
			RecipientName:    "Ada Lovelace",
			CourseTitle:      "Distributed Systems",
			IssuerName:       "Example Academy",
			CompletedLessons: 10,
			TotalLessons:     10,
			IssuedAt:         issuedAt,
		},
	}, nil)

	c, rec := verifyRequest("k7fP2xGq9ZtRwX3lN0bYmA8dVcE")
	err := h.VerifyCode(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"valid":true`)
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "Distributed Systems")
	assert.Contains(t, body, "Example Academy")
}

func TestVerificationHandler_VerifyCode_Unknown(t *testing.T) {
	h, mockUC := newVerificationHandlerTest(t)

	mockUC.EXPECT().VerifyCode(mock.Anything, "not-a-real-code").Return(&usecase.VerificationResult{
		Valid: false,
	}, nil)

	c, rec := verifyRequest("not-a-real-code")
	err := h.VerifyCode(c)
	assert.NoError(t, err)

	// Unknown codes still answer 200; the body carries valid=false.
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"valid":false`)
	assert.NotContains(t, body, "certificate")
}
