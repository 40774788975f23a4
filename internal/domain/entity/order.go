package entity

import (
	"math"
	"slices"
	"time"
)

// PaymentMethod represents how an order was paid.
type PaymentMethod string

const (
	// PaymentCash is paid in cash; the received amount is tracked.
	PaymentCash PaymentMethod = "cash"
	// PaymentEWallet is paid through an e-wallet.
	PaymentEWallet PaymentMethod = "ewallet"
	// PaymentBankTransfer is paid by bank transfer.
	PaymentBankTransfer PaymentMethod = "transfer"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentEWallet, PaymentBankTransfer:
		return true
	default:
		return false
	}
}

// Order is an immutable receipt of a finalized transaction.
type Order struct {
	OrderNumber    string        `json:"orderNumber"`              // Unique number derived from the commit timestamp.
	Timestamp      time.Time     `json:"timestamp"`                // Instant of finalization.
	Items          []CartLine    `json:"items"`                    // Cart lines frozen at checkout.
	Subtotal       int64         `json:"subtotal"`                 // Sum of price times quantity.
	TaxAmount      int64         `json:"taxAmount"`                // Tax computed from settings at checkout.
	TotalAmount    int64         `json:"totalAmount"`              // Subtotal plus tax.
	PaymentMethod  PaymentMethod `json:"paymentMethod"`            // Cash, e-wallet or bank transfer.
	AmountReceived int64         `json:"amountReceived,omitempty"` // Cash handed over, cash orders only.
	Change         int64         `json:"change,omitempty"`         // Cash returned, cash orders only.
	Cashier        string        `json:"cashier,omitempty"`        // Cashier label at checkout.
}

// Clone deep-copies the order so the copy shares no line storage.
func (o Order) Clone() Order {
	o.Items = slices.Clone(o.Items)

	return o
}

// ItemsSold sums the quantities of every line.
func (o Order) ItemsSold() int {
	return Cart(o.Items).ItemCount()
}

// Orders is the sales history, oldest first.
type Orders []Order

// Clone deep-copies every order.
func (os Orders) Clone() Orders {
	if os == nil {
		return nil
	}

	out := make(Orders, len(os))
	for i, o := range os {
		out[i] = o.Clone()
	}

	return out
}

// IndexOf returns the position of the order with the given number, or -1.
func (os Orders) IndexOf(orderNumber string) int {
	return slices.IndexFunc(os, func(o Order) bool {
		return o.OrderNumber == orderNumber
	})
}

// Totals is the price breakdown of a cart at a given tax setting.
type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	TaxAmount   int64 `json:"taxAmount"`
	TotalAmount int64 `json:"totalAmount"`
}

// ComputeTotals applies the tax settings to a subtotal.
func ComputeTotals(subtotal int64, settings Settings) Totals {
	var tax int64
	if settings.TaxEnabled {
		tax = int64(math.Round(float64(subtotal) * settings.TaxRate / 100))
	}

	return Totals{
		Subtotal:    subtotal,
		TaxAmount:   tax,
		TotalAmount: subtotal + tax,
	}
}
