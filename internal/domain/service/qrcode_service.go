package service

import "image"

// QRCodeService defines the interface for verification QR code generation.
type QRCodeService interface {
	// GenerateVerificationQR encodes the verify URL as a standalone PNG.
	GenerateVerificationQR(verifyURL string) ([]byte, error)

	// VerificationQRImage encodes the verify URL as an image for embedding
	// into a rendered certificate document.
	VerificationQRImage(verifyURL string, size int) (image.Image, error)
}
