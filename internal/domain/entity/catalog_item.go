// Package entity contains the core business objects of the project.
package entity

import "slices"

// ItemKind represents the variant of a sellable catalog entry.
type ItemKind string

const (
	// KindProduct is a physical good tracked by stock.
	KindProduct ItemKind = "product"
	// KindService is a labor item with an informational duration.
	KindService ItemKind = "service"
)

// String returns the string representation of the ItemKind.
func (k ItemKind) String() string {
	return string(k)
}

// IsValid checks if the ItemKind is a valid value.
func (k ItemKind) IsValid() bool {
	switch k {
	case KindProduct, KindService:
		return true
	default:
		return false
	}
}

// CatalogItem represents a sellable unit, either a product or a service.
type CatalogItem struct {
	ID              int64    `json:"id"`                        // Unique identifier assigned at creation.
	SKU             string   `json:"sku,omitempty"`             // Optional human-readable code, not guaranteed unique.
	Name            string   `json:"name"`                      // Display name.
	Price           int64    `json:"price"`                     // Price in the smallest currency unit.
	Kind            ItemKind `json:"kind"`                      // Product or service.
	Stock           int      `json:"stock"`                     // Available stock, products only.
	DurationMinutes int      `json:"durationMinutes,omitempty"` // Informational duration, services only.
	Image           string   `json:"image,omitempty"`           // URL or embedded data of the item image.
}

// IsProduct reports whether the item tracks stock.
func (i CatalogItem) IsProduct() bool {
	return i.Kind == KindProduct
}

// Catalog is the ordered list of sellable items.
type Catalog []CatalogItem

// Clone returns a copy that shares no backing array with c.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}

	return slices.Clone(c)
}

// IndexOf returns the position of the item with the given id, or -1.
func (c Catalog) IndexOf(id int64) int {
	return slices.IndexFunc(c, func(item CatalogItem) bool {
		return item.ID == id
	})
}

// Find returns the item with the given id.
func (c Catalog) Find(id int64) (CatalogItem, bool) {
	idx := c.IndexOf(id)
	if idx < 0 {
		return CatalogItem{}, false
	}

	return c[idx], true
}

// NextID returns the id a newly created item receives.
func (c Catalog) NextID() int64 {
	var maxID int64
	for _, item := range c {
		maxID = max(maxID, item.ID)
	}

	return maxID + 1
}

// DefaultCatalog is seeded when no stored catalog exists.
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: 1, SKU: "ACC-TG-001", Name: "Tempered Glass", Price: 25000, Kind: KindProduct, Stock: 50},
		{ID: 2, SKU: "ACC-CBL-002", Name: "Kabel Data USB-C", Price: 35000, Kind: KindProduct, Stock: 30},
		{ID: 3, SKU: "ACC-CHG-003", Name: "Charger 20W", Price: 120000, Kind: KindProduct, Stock: 15},
		{ID: 4, SKU: "ACC-CSE-004", Name: "Softcase Silikon", Price: 30000, Kind: KindProduct, Stock: 40},
		{ID: 5, SKU: "SRV-LCD-001", Name: "Ganti LCD", Price: 350000, Kind: KindService, DurationMinutes: 90},
		{ID: 6, SKU: "SRV-BAT-002", Name: "Ganti Baterai", Price: 150000, Kind: KindService, DurationMinutes: 45},
		{ID: 7, SKU: "SRV-SFW-003", Name: "Instal Ulang Software", Price: 100000, Kind: KindService, DurationMinutes: 60},
		{ID: 8, SKU: "SRV-CLN-004", Name: "Pembersihan Mesin", Price: 75000, Kind: KindService, DurationMinutes: 30},
	}
}
