package checkout

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shopori/cart-service/pkg/config"
	"github.com/shopori/cart-service/pkg/db/models"
)

// Totals is the full price breakdown for the current cart and shipping city.
// GrandTotal is always re-derived from the other two, never cached.
type Totals struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	GrandTotal   decimal.Decimal `json:"grandTotal"`
}

// Calculator computes order totals from cart lines and the two-tier city
// shipping table.
type Calculator struct {
	primaryCity string
	primaryCost decimal.Decimal
	otherCost   decimal.Decimal
}

// NewCalculator builds a calculator from the configured shipping tiers.
func NewCalculator(cfg config.ShippingConfig) *Calculator {
	return &Calculator{
		primaryCity: strings.TrimSpace(cfg.PrimaryCity),
		primaryCost: cfg.PrimaryCost,
		otherCost:   cfg.OtherCost,
	}
}

// ShippingCost returns the tier for the given city. The primary city ships
// at the lower rate; every other city, including an empty one, pays the
// flat rate. Matching ignores case and surrounding whitespace.
func (c *Calculator) ShippingCost(city string) decimal.Decimal {
	if strings.EqualFold(strings.TrimSpace(city), c.primaryCity) {
		return c.primaryCost
	}
	return c.otherCost
}

// ComputeTotals derives the subtotal from the stored line snapshots and adds
// the city's shipping tier.
func (c *Calculator) ComputeTotals(items []models.CartItem, city string) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		subtotal = subtotal.Add(item.Price.Mul(qty))
	}
	shipping := c.ShippingCost(city)
	return Totals{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		GrandTotal:   subtotal.Add(shipping),
	}
}
