package services

import (
	"github.com/skip2/go-qrcode"
)

const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

type QRService struct{}

func NewQRService() *QRService {
	return &QRService{}
}

// GeneratePNG renders content as a QR code PNG. Size is clamped to a sane
// range so callers cannot request arbitrarily large images.
func (s *QRService) GeneratePNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultQRSize
	}
	if size > maxQRSize {
		size = maxQRSize
	}
	return qrcode.Encode(content, qrcode.Medium, size)
}
