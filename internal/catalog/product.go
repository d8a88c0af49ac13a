package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the storefront product detail as served by the remote catalog.
// DiscountPrice, when present, is the effective sale price.
type Product struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice,omitempty"`
	StockQuantity int              `json:"stockQuantity"`
	Images        []string         `json:"images"`
	Colors        []string         `json:"colors"`
	Sizes         []string         `json:"sizes"`
	Variants      []Variant        `json:"variants"`
	SellerEmail   string           `json:"sellerEmail"`
	SellerName    string           `json:"sellerName"`
}

// Variant is one (color, size) combination with its own price and stock.
// Either axis may be empty when the product does not vary on it.
type Variant struct {
	Color         string           `json:"color"`
	Size          string           `json:"size"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice,omitempty"`
	StockQuantity int              `json:"stockQuantity"`
	Images        []string         `json:"images"`
}

// Selection is the buyer's chosen variant axes. Empty strings mean
// "not chosen".
type Selection struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

// Pricing is the resolved effective price and stock for a selection.
type Pricing struct {
	Price         decimal.Decimal
	StockQuantity int
}

// HasColors reports whether the product requires a color choice: either the
// top-level color list or any variant carries a non-empty color.
func (p *Product) HasColors() bool {
	if len(p.Colors) > 0 {
		return true
	}
	for _, v := range p.Variants {
		if v.Color != "" {
			return true
		}
	}
	return false
}

// HasSizes reports whether the product requires a size choice.
func (p *Product) HasSizes() bool {
	if len(p.Sizes) > 0 {
		return true
	}
	for _, v := range p.Variants {
		if v.Size != "" {
			return true
		}
	}
	return false
}

// EffectivePrice returns the discount price when one is set, otherwise the
// base price.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

func (v Variant) effectivePrice() decimal.Decimal {
	if v.DiscountPrice != nil {
		return *v.DiscountPrice
	}
	return v.Price
}
