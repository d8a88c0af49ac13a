package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/shopori/cart-service/pkg/errors"
)

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func testProduct() *Product {
	return &Product{
		Name:          "Canvas Sneaker",
		Price:         decimal.RequireFromString("1200"),
		StockQuantity: 40,
		Colors:        []string{"red", "blue"},
		Sizes:         []string{"40", "41"},
		Variants: []Variant{
			{Color: "red", Size: "40", Price: decimal.RequireFromString("1250"), StockQuantity: 5},
			{Color: "red", Size: "41", Price: decimal.RequireFromString("1300"), DiscountPrice: decPtr("1100"), StockQuantity: 0},
			{Color: "red", Size: "41", Price: decimal.RequireFromString("999"), StockQuantity: 99},
			{Color: "blue", Size: "40", Price: decimal.RequireFromString("1400"), StockQuantity: 2},
		},
	}
}

func TestValidateSelection(t *testing.T) {
	p := testProduct()

	err := ValidateSelection(p, Selection{})
	if err == nil {
		t.Fatal("expected error for missing color")
	}
	if got := pkgerrors.As(err); got == nil || got.Message() != MsgSelectColor {
		t.Fatalf("expected %q, got %v", MsgSelectColor, err)
	}

	err = ValidateSelection(p, Selection{Color: "red"})
	if got := pkgerrors.As(err); got == nil || got.Message() != MsgSelectSize {
		t.Fatalf("expected %q, got %v", MsgSelectSize, err)
	}

	if err := ValidateSelection(p, Selection{Color: "red", Size: "40"}); err != nil {
		t.Fatalf("complete selection should pass, got %v", err)
	}
}

func TestValidateSelectionNoAxes(t *testing.T) {
	p := &Product{Name: "Plain Mug", Price: decimal.RequireFromString("300")}
	if err := ValidateSelection(p, Selection{}); err != nil {
		t.Fatalf("product without axes needs no selection, got %v", err)
	}
}

func TestResolvePricingFirstMatchWins(t *testing.T) {
	p := testProduct()

	got := ResolvePricing(p, Selection{Color: "red", Size: "41"})
	if !got.Price.Equal(decimal.RequireFromString("1100")) {
		t.Fatalf("expected first duplicate's discount price 1100, got %s", got.Price)
	}
	if got.StockQuantity != 0 {
		t.Fatalf("expected stock 0 from first match, got %d", got.StockQuantity)
	}
}

func TestResolvePricingVariantWithoutDiscount(t *testing.T) {
	p := testProduct()

	got := ResolvePricing(p, Selection{Color: "blue", Size: "40"})
	if !got.Price.Equal(decimal.RequireFromString("1400")) {
		t.Fatalf("expected variant base price 1400, got %s", got.Price)
	}
	if got.StockQuantity != 2 {
		t.Fatalf("expected stock 2, got %d", got.StockQuantity)
	}
}

func TestResolvePricingFallsBackToProduct(t *testing.T) {
	p := testProduct()

	got := ResolvePricing(p, Selection{Color: "blue", Size: "41"})
	if !got.Price.Equal(p.Price) {
		t.Fatalf("expected product price %s, got %s", p.Price, got.Price)
	}
	if got.StockQuantity != p.StockQuantity {
		t.Fatalf("expected product stock %d, got %d", p.StockQuantity, got.StockQuantity)
	}
}

func TestResolvePricingProductDiscountFallback(t *testing.T) {
	p := testProduct()
	p.DiscountPrice = decPtr("999")

	got := ResolvePricing(p, Selection{Color: "blue", Size: "41"})
	if !got.Price.Equal(decimal.RequireFromString("999")) {
		t.Fatalf("expected product discount price 999, got %s", got.Price)
	}
}

func TestResolvePricingPartialSelection(t *testing.T) {
	p := &Product{
		Price:         decimal.RequireFromString("500"),
		StockQuantity: 10,
		Variants: []Variant{
			{Color: "red", Price: decimal.RequireFromString("400"), StockQuantity: 3},
			{Color: "blue", Price: decimal.RequireFromString("420"), StockQuantity: 5},
		},
	}

	// An unpicked axis matches any variant value.
	got := ResolvePricing(p, Selection{Color: "blue"})
	if !got.Price.Equal(decimal.RequireFromString("420")) || got.StockQuantity != 5 {
		t.Fatalf("expected blue variant pricing, got %+v", got)
	}

	// No picks at all resolves to the first variant in list order.
	got = ResolvePricing(p, Selection{})
	if !got.Price.Equal(decimal.RequireFromString("400")) || got.StockQuantity != 3 {
		t.Fatalf("expected first variant pricing, got %+v", got)
	}
}

func TestHasAxesFromVariants(t *testing.T) {
	p := &Product{
		Variants: []Variant{{Color: "red", Price: decimal.RequireFromString("400")}},
	}
	if !p.HasColors() {
		t.Fatal("variant color should require a color pick")
	}
	if p.HasSizes() {
		t.Fatal("no size axis present, none should be required")
	}
}

func TestResolvePricingNoVariants(t *testing.T) {
	p := &Product{Price: decimal.RequireFromString("500"), StockQuantity: 7}

	got := ResolvePricing(p, Selection{})
	if !got.Price.Equal(decimal.RequireFromString("500")) || got.StockQuantity != 7 {
		t.Fatalf("expected product-level pricing, got %+v", got)
	}
}
