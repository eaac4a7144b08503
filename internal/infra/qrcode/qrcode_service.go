// Package qrcode implements QR code generation for certificate verification links.
package qrcode

import (
	"image"

	qrlib "github.com/skip2/go-qrcode"

	"diploma/config"
	"diploma/internal/domain/service"
	"diploma/internal/errors"
)

const defaultSize = 256

// qrCodeService renders verification URLs as QR codes.
type qrCodeService struct {
	size  int
	level qrlib.RecoveryLevel
}

// NewQRCodeService is the constructor for qrCodeService.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	level := qrlib.Medium

	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = parseRecoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
	}

	return &qrCodeService{size: size, level: level}
}

// GenerateVerificationQR encodes the verify URL as a PNG image.
func (s *qrCodeService) GenerateVerificationQR(verifyURL string) ([]byte, error) {
	if verifyURL == "" {
		return nil, errors.New("verify URL must not be empty")
	}

	png, err := qrlib.Encode(verifyURL, s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "encode verification qr code")
	}

	return png, nil
}

// VerificationQRImage returns the QR code as an image for embedding into
// rendered documents. The size overrides the configured default so the
// renderer can fit the code to its layout.
func (s *qrCodeService) VerificationQRImage(verifyURL string, size int) (image.Image, error) {
	if verifyURL == "" {
		return nil, errors.New("verify URL must not be empty")
	}
	if size <= 0 {
		size = s.size
	}

	qr, err := qrlib.New(verifyURL, s.level)
	if err != nil {
		return nil, errors.Wrap(err, "build verification qr code")
	}

	return qr.Image(size), nil
}

func parseRecoveryLevel(level string) qrlib.RecoveryLevel {
	switch level {
	case "L", "l", "low":
		return qrlib.Low
	case "Q", "q", "high":
		return qrlib.High
	case "H", "h", "highest":
		return qrlib.Highest
	default:
		return qrlib.Medium
	}
}
