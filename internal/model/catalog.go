package model

import "github.com/google/uuid"

// PaintProduct represents one paint SKU the contractor buys: a named
// product with sheen, gallon and 5-gallon pricing, and a coverage rate.
type PaintProduct struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Sheen           string  `json:"sheen"`
	PricePerGallon  float64 `json:"price_per_gallon"`
	PricePer5Gallon float64 `json:"price_per_5gallon"` // 0 = not sold in pails
	CoverageSqFt    float64 `json:"coverage_sqft"`     // sq ft per gallon
}

// NewPaintProduct creates a product with a generated ID.
func NewPaintProduct(name, sheen string, perGallon, per5Gallon, coverage float64) PaintProduct {
	return PaintProduct{
		ID:              uuid.New().String()[:8],
		Name:            name,
		Sheen:           sheen,
		PricePerGallon:  perGallon,
		PricePer5Gallon: per5Gallon,
		CoverageSqFt:    coverage,
	}
}

// ToPaintOption converts a catalog product into a quote paint tier with
// neutral markup and labor multipliers.
func (p PaintProduct) ToPaintOption() PaintOption {
	opt := NewPaintOption(p.Name, p.PricePerGallon, p.CoverageSqFt)
	opt.Notes = p.Sheen
	return opt
}

// Catalog holds the contractor's saved paint products.
type Catalog struct {
	Products []PaintProduct `json:"products"`
}

// DefaultCatalog returns a catalog populated with common tiers.
func DefaultCatalog() Catalog {
	return Catalog{
		Products: []PaintProduct{
			NewPaintProduct("Builder Grade Flat", "Flat", 32, 140, 400),
			NewPaintProduct("Premium Eggshell", "Eggshell", 45, 200, 350),
			NewPaintProduct("Designer Matte", "Matte", 68, 310, 300),
			NewPaintProduct("Semi-Gloss Trim", "Semi-Gloss", 52, 235, 400),
			NewPaintProduct("Bonding Primer", "Primer", 28, 120, 300),
		},
	}
}

// FindProductByID returns a pointer to the product with the given ID, or nil.
func (c *Catalog) FindProductByID(id string) *PaintProduct {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i]
		}
	}
	return nil
}

// FindProductByName returns a pointer to the first product with the given
// name, or nil.
func (c *Catalog) FindProductByName(name string) *PaintProduct {
	for i := range c.Products {
		if c.Products[i].Name == name {
			return &c.Products[i]
		}
	}
	return nil
}

// ProductNames returns the catalog product names in order.
func (c *Catalog) ProductNames() []string {
	names := make([]string, len(c.Products))
	for i, p := range c.Products {
		names[i] = p.Name
	}
	return names
}
