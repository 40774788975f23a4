package entity

// Settings is the process-wide shop configuration.
type Settings struct {
	TaxEnabled   bool    `json:"taxEnabled"`
	TaxRate      float64 `json:"taxRate"` // Percentage, 0 to 100.
	CashierLabel string  `json:"cashierLabel"`
	StoreName    string  `json:"storeName"`
}

// IsValid checks the tax rate bounds.
func (s Settings) IsValid() bool {
	return s.TaxRate >= 0 && s.TaxRate <= 100
}

// DefaultSettings is used when no stored settings exist.
func DefaultSettings() Settings {
	return Settings{
		TaxEnabled:   false,
		TaxRate:      11,
		CashierLabel: "Kasir 1",
		StoreName:    "Toko Servis",
	}
}
