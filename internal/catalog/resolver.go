package catalog

import (
	pkgerrors "github.com/shopori/cart-service/pkg/errors"
)

// Messages surfaced verbatim to the buyer when a required variant axis
// is missing. Clients render these as-is.
const (
	MsgSelectColor = "Please select color."
	MsgSelectSize  = "Please select size."
)

// ValidateSelection checks that every variant axis the product offers has
// been chosen. Color is checked before size, so a product missing both
// reports the color message first.
func ValidateSelection(p *Product, sel Selection) error {
	if p.HasColors() && sel.Color == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, MsgSelectColor)
	}
	if p.HasSizes() && sel.Size == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, MsgSelectSize)
	}
	return nil
}

// ResolvePricing finds the effective price and stock for a selection.
//
// A variant matches when every axis the buyer has picked equals the
// variant's value; axes left unpicked match anything. The variant list is
// scanned in order and the first match wins. Duplicate (color, size) rows
// are legal in the feed; later duplicates are simply never reached. When no
// variant matches, or the product has no variants at all, the product-level
// price and stock apply.
func ResolvePricing(p *Product, sel Selection) Pricing {
	for _, v := range p.Variants {
		if matchesAxis(sel.Color, v.Color) && matchesAxis(sel.Size, v.Size) {
			return Pricing{Price: v.effectivePrice(), StockQuantity: v.StockQuantity}
		}
	}
	return Pricing{Price: p.EffectivePrice(), StockQuantity: p.StockQuantity}
}

func matchesAxis(selected, variant string) bool {
	return selected == "" || selected == variant
}
