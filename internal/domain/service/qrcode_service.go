package service

// QRCodeService defines the interface for receipt QR code generation and parsing
type QRCodeService interface {
	// GenerateReceiptQR renders a PNG QR code pointing at the receipt of an order
	GenerateReceiptQR(orderNumber string) ([]byte, error)

	// ParseReceiptQR extracts the order number from scanned QR content
	ParseReceiptQR(qrData string) (string, error)
}
