package generator

import (
	"fmt"

	"orderseed/internal/models"
)

// PickCustomer selects one customer uniformly from the fetched page.
func (g *Generator) PickCustomer(customers []models.Customer) (models.Customer, error) {
	if len(customers) == 0 {
		return models.Customer{}, fmt.Errorf("store has no customers: %w", ErrNoCandidates)
	}
	return customers[g.index(len(customers))], nil
}

// PickProductVariant selects a product holding sellable inventory, then one
// of its in-stock variants, both uniformly. Products whose variants are all
// out of stock never reach the draw, so the returned variant always has
// positive inventory.
func (g *Generator) PickProductVariant(products []models.Product) (models.Product, models.ProductVariant, error) {
	var sellable []models.Product
	for _, p := range products {
		if p.HasStock() {
			sellable = append(sellable, p)
		}
	}
	if len(sellable) == 0 {
		return models.Product{}, models.ProductVariant{}, fmt.Errorf("no products with sellable inventory: %w", ErrNoCandidates)
	}

	product := sellable[g.index(len(sellable))]

	var variants []models.ProductVariant
	for _, v := range product.Variants {
		if v.InStock() {
			variants = append(variants, v)
		}
	}
	// HasStock guarantees at least one in-stock variant.
	return product, variants[g.index(len(variants))], nil
}
