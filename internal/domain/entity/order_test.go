package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		settings Settings
		want     Totals
	}{
		{
			name:     "tax disabled",
			subtotal: 100000,
			settings: Settings{TaxEnabled: false, TaxRate: 10},
			want:     Totals{Subtotal: 100000, TaxAmount: 0, TotalAmount: 100000},
		},
		{
			name:     "ten percent",
			subtotal: 100000,
			settings: Settings{TaxEnabled: true, TaxRate: 10},
			want:     Totals{Subtotal: 100000, TaxAmount: 10000, TotalAmount: 110000},
		},
		{
			name:     "fractional tax rounds half up",
			subtotal: 25050,
			settings: Settings{TaxEnabled: true, TaxRate: 11},
			want:     Totals{Subtotal: 25050, TaxAmount: 2756, TotalAmount: 27806},
		},
		{
			name:     "empty cart",
			subtotal: 0,
			settings: Settings{TaxEnabled: true, TaxRate: 11},
			want:     Totals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotals(tt.subtotal, tt.settings))
		})
	}
}

func TestOrders_CloneIsDeep(t *testing.T) {
	orders := Orders{{
		OrderNumber: "ORD-1",
		Items:       []CartLine{{ItemID: 1, Name: "Tempered Glass", Price: 25000, Quantity: 2}},
	}}

	cloned := orders.Clone()
	cloned[0].Items[0].Quantity = 99

	assert.Equal(t, 2, orders[0].Items[0].Quantity)
	assert.Equal(t, 2, orders[0].ItemsSold())
}

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, PaymentCash.IsValid())
	assert.True(t, PaymentEWallet.IsValid())
	assert.True(t, PaymentBankTransfer.IsValid())
	assert.False(t, PaymentMethod("card").IsValid())
}
