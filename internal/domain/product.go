package domain

import (
	"fmt"
	"time"
)

// Product kind discriminator, carried on the wire as the "type" field.
const (
	KindFood       = "food"
	KindElectronic = "electronic"
	KindClothing   = "clothing"
)

// Fixed category names, stamped by the constructors.
const (
	CategoryFood       = "Food"
	CategoryElectronic = "Electronics"
	CategoryClothing   = "Clothing"
)

// Category tax rates applied after the profit markup.
const (
	TaxRateFood       = 0.05
	TaxRateElectronic = 0.19
	TaxRateClothing   = 0.10
)

const (
	DefaultWarrantyMonths = 12
	DefaultBrand          = "Generic"
	DefaultSize           = "M"
	DefaultMaterial       = "Cotton"
)

// Product is a discriminated union over the three catalog variants.
// Variant-specific fields are only populated for the matching kind.
// Products are immutable once created; edits are delete plus recreate.
type Product struct {
	Kind             string  `json:"type"`
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	AcquisitionPrice float64 `json:"acquisitionPrice"`
	Category         string  `json:"category"`

	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	WarrantyMonths int        `json:"warrantyMonths,omitempty"`
	Brand          string     `json:"brand,omitempty"`
	Size           string     `json:"size,omitempty"`
	Material       string     `json:"material,omitempty"`
}

// NewFoodProduct builds a food product. expiration may be nil.
func NewFoodProduct(id, name string, acquisitionPrice float64, expiration *time.Time) Product {
	return Product{
		Kind:             KindFood,
		ID:               id,
		Name:             name,
		AcquisitionPrice: acquisitionPrice,
		Category:         CategoryFood,
		ExpirationDate:   expiration,
	}
}

func NewElectronicProduct(id, name string, acquisitionPrice float64, warrantyMonths int, brand string) Product {
	if warrantyMonths <= 0 {
		warrantyMonths = DefaultWarrantyMonths
	}
	if brand == "" {
		brand = DefaultBrand
	}
	return Product{
		Kind:             KindElectronic,
		ID:               id,
		Name:             name,
		AcquisitionPrice: acquisitionPrice,
		Category:         CategoryElectronic,
		WarrantyMonths:   warrantyMonths,
		Brand:            brand,
	}
}

func NewClothingProduct(id, name string, acquisitionPrice float64, size, material string) Product {
	if size == "" {
		size = DefaultSize
	}
	if material == "" {
		material = DefaultMaterial
	}
	return Product{
		Kind:             KindClothing,
		ID:               id,
		Name:             name,
		AcquisitionPrice: acquisitionPrice,
		Category:         CategoryClothing,
		Size:             size,
		Material:         material,
	}
}

// TaxRate returns the category tax multiplier for the product kind.
func (p Product) TaxRate() float64 {
	switch p.Kind {
	case KindFood:
		return TaxRateFood
	case KindElectronic:
		return TaxRateElectronic
	case KindClothing:
		return TaxRateClothing
	}
	return 0
}

func (p Product) Info() string {
	return fmt.Sprintf("%s - Category: %s", p.Name, p.Category)
}
