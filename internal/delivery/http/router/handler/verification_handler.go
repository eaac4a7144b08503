package handler

import (
	"log/slog"
	"net/http"

	"diploma/internal/delivery/http/response"
	"diploma/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VerificationHandlerParams holds dependencies for VerificationHandler, injected by Fx.
type VerificationHandlerParams struct {
	fx.In

	VerificationUC usecase.VerificationUsecase
	Logger         *slog.Logger
}

// VerificationHandler holds dependencies for the public verification endpoint
type VerificationHandler struct {
	verificationUC usecase.VerificationUsecase
	logger         *slog.Logger
}

// NewVerificationHandler is the constructor for VerificationHandler
func NewVerificationHandler(params VerificationHandlerParams) *VerificationHandler {
	return &VerificationHandler{
		verificationUC: params.VerificationUC,
		logger:         params.Logger,
	}
}

// VerifyCode handles public certificate verification. The endpoint requires
// no authentication: possession of the code is the credential. Unknown codes
// return 200 with valid=false so the response shape never reveals whether a
// code is close to a real one.
func (h *VerificationHandler) VerifyCode(c echo.Context) error {
	result, err := h.verificationUC.VerifyCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
