package service

import (
	"context"
)

// CertificateIssuedEvent is emitted exactly once per freshly created
// certificate (never on idempotent re-issuance). Consumers pre-render the
// document and warm the download cache.
type CertificateIssuedEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	CertificateID string `json:"certificate_id"`
	UserID        string `json:"user_id"`
	CourseID      string `json:"course_id"`
	IssuedAt      string `json:"issued_at"` // RFC 3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCertificateIssued publishes a certificate-issued event for async processing
	PublishCertificateIssued(ctx context.Context, event *CertificateIssuedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
