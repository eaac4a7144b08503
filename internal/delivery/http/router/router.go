// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"diploma/internal/delivery/http/middleware"
	"diploma/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CertificateHandler  *handler.CertificateHandler
	VerificationHandler *handler.VerificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	certificateHandler  *handler.CertificateHandler
	verificationHandler *handler.VerificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		certificateHandler:  params.CertificateHandler,
		verificationHandler: params.VerificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public verification endpoint. No authentication: the verification code
	// is the sole credential.
	e.GET("/verify/:code", r.verificationHandler.VerifyCode)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	// Certificate routes for the authenticated learner
	certificatesGroup := apiV1.Group("/certificates")
	{
		certificatesGroup.POST("", r.certificateHandler.IssueCertificate)
		certificatesGroup.GET("", r.certificateHandler.GetUserCertificates)
		certificatesGroup.GET("/:id/document", r.certificateHandler.DownloadDocument)
		certificatesGroup.GET("/:id/qr", r.certificateHandler.GetVerificationQR)
	}
}
