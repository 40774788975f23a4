package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"pos/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(baseURL string) *qrcodeService {
	return NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
		Size:                 128,
		ErrorCorrectionLevel: "M",
		BaseURL:              baseURL,
	}}).(*qrcodeService)
}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	srv := NewQRCodeService(nil).(*qrcodeService)

	assert.Equal(t, defaultSize, srv.size)
	assert.Equal(t, qrcode.Medium, srv.errorCorrectionLevel)
	assert.Empty(t, srv.baseURL)
}

func TestQRCodeService_GenerateReceiptQR(t *testing.T) {
	srv := newTestService("http://localhost:8080/api/v1/orders/")

	pngBytes, err := srv.GenerateReceiptQR("ORD-1760499000000")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(pngBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestQRCodeService_GenerateReceiptQR_InvalidOrderNumber(t *testing.T) {
	srv := newTestService("")

	_, err := srv.GenerateReceiptQR("12345")
	assert.Error(t, err)
}

func TestQRCodeService_ReceiptContentRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{name: "with base url", baseURL: "http://localhost:8080/api/v1/orders/", want: "http://localhost:8080/api/v1/orders/ORD-1760499000000"},
		{name: "bare order number", baseURL: "", want: "ORD-1760499000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestService(tt.baseURL)

			content := srv.receiptContent("ORD-1760499000000")
			assert.Equal(t, tt.want, content)

			orderNumber, err := srv.ParseReceiptQR(content)
			require.NoError(t, err)
			assert.Equal(t, "ORD-1760499000000", orderNumber)
		})
	}
}

func TestQRCodeService_ParseReceiptQR_Invalid(t *testing.T) {
	srv := newTestService("")

	for _, data := range []string{"", "hello", "https://example.com/orders/", "not a url at all"} {
		t.Run(data, func(t *testing.T) {
			_, err := srv.ParseReceiptQR(data)
			assert.Error(t, err)
		})
	}
}
