// Package qrcode renders verification QR codes for generated reports.
package qrcode

import (
	"net/url"

	"visitadoras/config"
	"visitadoras/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultQRSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

// NewFromConfig builds the service from the qrcode config section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return NewQRCodeService(defaultQRSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateURLQR encodes an absolute URL as a PNG QR code.
func (s *qrcodeService) GenerateURLQR(rawURL string) ([]byte, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("invalid QR code url: %q", rawURL)
	}

	qrCode, err := qrcode.New(parsed.String(), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
