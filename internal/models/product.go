package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product represents a product in the store catalog.
type Product struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Variants []ProductVariant `json:"variants"`
}

// HasStock reports whether any variant of the product can be ordered.
func (p Product) HasStock() bool {
	for _, v := range p.Variants {
		if v.InStock() {
			return true
		}
	}
	return false
}

// ProductVariant represents a sellable variant of a product.
type ProductVariant struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	SKU               string `json:"sku"`
	Price             string `json:"price"` // decimal amount as returned by the platform, e.g. "19.99"
	InventoryQuantity int    `json:"inventoryQuantity"`
}

// InStock reports whether the variant has sellable inventory.
func (v ProductVariant) InStock() bool {
	return v.InventoryQuantity > 0
}

// UnitPrice parses the platform's price string into a decimal amount.
func (v ProductVariant) UnitPrice() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("variant %s has malformed price %q: %w", v.ID, v.Price, err)
	}
	return d, nil
}
