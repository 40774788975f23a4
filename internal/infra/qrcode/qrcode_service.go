package qrcode

import (
	"net/url"
	"strings"

	"pos/config"
	"pos/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize       = 256
	orderNumberPrefix = "ORD-"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a receipt QR code service from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	srv := &qrcodeService{
		size:                 defaultSize,
		errorCorrectionLevel: qrcode.Medium,
	}
	if cfg == nil || cfg.QRCode == nil {
		return srv
	}

	if cfg.QRCode.Size > 0 {
		srv.size = cfg.QRCode.Size
	}
	srv.errorCorrectionLevel = recoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
	srv.baseURL = cfg.QRCode.BaseURL

	return srv
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L", "LOW":
		return qrcode.Low
	case "Q", "HIGH":
		return qrcode.High
	case "H", "HIGHEST":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateReceiptQR encodes the receipt link of an order as a PNG.
// Without a base URL the bare order number is encoded.
func (s *qrcodeService) GenerateReceiptQR(orderNumber string) ([]byte, error) {
	if !strings.HasPrefix(orderNumber, orderNumberPrefix) {
		return nil, errors.Errorf("invalid order number %q", orderNumber)
	}

	qrCode, err := qrcode.New(s.receiptContent(orderNumber), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) receiptContent(orderNumber string) string {
	if s.baseURL == "" {
		return orderNumber
	}

	link, err := url.JoinPath(s.baseURL, orderNumber)
	if err != nil {
		return orderNumber
	}

	return link
}

// ParseReceiptQR accepts either a receipt link or a bare order number
func (s *qrcodeService) ParseReceiptQR(qrData string) (string, error) {
	content := strings.TrimSpace(qrData)
	if strings.HasPrefix(content, orderNumberPrefix) {
		return content, nil
	}

	link, err := url.Parse(content)
	if err != nil || link.Host == "" {
		return "", errors.Errorf("unrecognized receipt QR content %q", qrData)
	}

	segments := strings.Split(strings.Trim(link.Path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if strings.HasPrefix(segments[i], orderNumberPrefix) {
			return segments[i], nil
		}
	}

	return "", errors.Errorf("receipt QR %q carries no order number", qrData)
}
