package handler

import (
	"log/slog"
	"net/http"

	"diploma/internal/delivery/http/middleware"
	"diploma/internal/delivery/http/response"
	"diploma/internal/errors"
	"diploma/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CertificateHandlerParams holds dependencies for CertificateHandler, injected by Fx.
type CertificateHandlerParams struct {
	fx.In

	CertificateUC usecase.CertificateUsecase
	Logger        *slog.Logger
}

// CertificateHandler holds dependencies for certificate-related handlers
type CertificateHandler struct {
	certificateUC usecase.CertificateUsecase
	logger        *slog.Logger
}

// NewCertificateHandler is the constructor for CertificateHandler
func NewCertificateHandler(params CertificateHandlerParams) *CertificateHandler {
	return &CertificateHandler{
		certificateUC: params.CertificateUC,
		logger:        params.Logger,
	}
}

// IssueCertificateRequest represents the request body for issuing a certificate
type IssueCertificateRequest struct {
	CourseID string `json:"course_id" validate:"required,uuid"`
}

// IssueCertificate handles certificate issuance for the authenticated user.
// Replayed requests are idempotent: the existing certificate comes back with
// the same 201 as the first call, so clients never need to branch on replay.
func (h *CertificateHandler) IssueCertificate(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req IssueCertificateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid certificate input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return response.BadRequest(c, "INVALID_COURSE_ID", "Course ID must be a valid UUID")
	}

	certificate, _, err := h.certificateUC.IssueCertificate(c.Request().Context(), userID, courseID)
	if err != nil {
		var notEligible *usecase.NotEligibleError
		if errors.As(err, &notEligible) {
			return response.BadRequestWithDetails(c, "NOT_ELIGIBLE", "Course is not fully completed", notEligible)
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, certificate)
}

// GetUserCertificates handles listing the authenticated user's certificates
func (h *CertificateHandler) GetUserCertificates(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	certificates, err := h.certificateUC.GetUserCertificates(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, certificates)
}

// DownloadDocument serves the printable certificate document as a file download
func (h *CertificateHandler) DownloadDocument(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	certificateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_CERTIFICATE_ID", "Certificate ID must be a valid UUID")
	}

	document, err := h.certificateUC.RenderCertificateDocument(c.Request().Context(), userID, certificateID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+document.Filename+`"`)

	return c.Blob(http.StatusOK, document.ContentType, document.Bytes)
}

// GetVerificationQR serves the QR code image for a certificate's verification URL
func (h *CertificateHandler) GetVerificationQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	certificateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_CERTIFICATE_ID", "Certificate ID must be a valid UUID")
	}

	qr, err := h.certificateUC.GenerateCertificateQR(c.Request().Context(), userID, certificateID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", qr)
}
