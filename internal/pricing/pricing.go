// Package pricing maps a product to its final sale price: a fixed 20%
// profit markup, the category tax applied exactly once, then the
// variant-specific adjustment.
package pricing

import (
	"math"
	"time"

	"github.com/talkincode/catalogd/internal/domain"
)

const (
	// ProfitMargin is the fixed markup over the acquisition price.
	ProfitMargin = 0.20

	// Food close to expiry is marked down 30%.
	expiryMarkdown     = 0.70
	expiryWindowDays   = 3
	warrantySurcharge  = 1.05
	baseWarrantyMonths = 12
)

// Base returns the acquisition price with the profit markup, before tax.
func Base(p domain.Product) float64 {
	return p.AcquisitionPrice * (1 + ProfitMargin)
}

// FinalPrice computes the sale price of a product at the given instant.
// The result is rounded half away from zero to the nearest integer.
//
// Food with an expiration between 1 and 3 ceil-days away is marked down
// 30%; already expired or more than 3 days out sells at full price.
// Electronics with more than 12 months of warranty carry a 5% surcharge.
func FinalPrice(p domain.Product, now time.Time) float64 {
	price := Base(p) * (1 + p.TaxRate())

	switch p.Kind {
	case domain.KindFood:
		if p.ExpirationDate != nil {
			days := daysUntil(*p.ExpirationDate, now)
			if days > 0 && days <= expiryWindowDays {
				price *= expiryMarkdown
			}
		}
	case domain.KindElectronic:
		if p.WarrantyMonths > baseWarrantyMonths {
			price *= warrantySurcharge
		}
	}

	return math.Round(price)
}

// Total sums the final prices of the given products.
func Total(products []domain.Product, now time.Time) float64 {
	var total float64
	for _, p := range products {
		total += FinalPrice(p, now)
	}
	return total
}

// Discounted applies a percentage discount to a price, floored at zero.
func Discounted(price, discountPercent float64) float64 {
	discounted := price - price*discountPercent/100
	return math.Max(discounted, 0)
}

func daysUntil(t, now time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}
