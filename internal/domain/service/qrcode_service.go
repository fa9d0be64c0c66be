package service

// QRCodeService renders QR codes embedded in generated reports.
type QRCodeService interface {
	// GenerateURLQR encodes a URL as a PNG QR code.
	GenerateURLQR(url string) ([]byte, error)
}
