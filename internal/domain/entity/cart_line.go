package entity

import "slices"

// CartLine is a catalog item snapshot staged for purchase.
// Name and price are captured when the item first enters the cart.
type CartLine struct {
	ItemID   int64    `json:"itemId"`
	SKU      string   `json:"sku,omitempty"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Kind     ItemKind `json:"kind"`
	Quantity int      `json:"quantity"`
}

// NewCartLine snapshots item at quantity 1.
func NewCartLine(item CatalogItem) CartLine {
	return CartLine{
		ItemID:   item.ID,
		SKU:      item.SKU,
		Name:     item.Name,
		Price:    item.Price,
		Kind:     item.Kind,
		Quantity: 1,
	}
}

// LineTotal returns price times quantity.
func (l CartLine) LineTotal() int64 {
	return l.Price * int64(l.Quantity)
}

// Cart is the ordered list of staged lines. A line is identified by its item id.
type Cart []CartLine

// Clone returns a copy that shares no backing array with c.
func (c Cart) Clone() Cart {
	if c == nil {
		return nil
	}

	return slices.Clone(c)
}

// IndexOf returns the position of the line for itemID, or -1.
func (c Cart) IndexOf(itemID int64) int {
	return slices.IndexFunc(c, func(line CartLine) bool {
		return line.ItemID == itemID
	})
}

// Subtotal sums every line total.
func (c Cart) Subtotal() int64 {
	var subtotal int64
	for _, line := range c {
		subtotal += line.LineTotal()
	}

	return subtotal
}

// ItemCount sums the quantities of every line.
func (c Cart) ItemCount() int {
	count := 0
	for _, line := range c {
		count += line.Quantity
	}

	return count
}
