package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusSeed is the initial status stamped on every submitted order. The
// backend owns all later transitions.
const StatusSeed = "Processing"

// ShippingForm is the buyer-entered delivery information sent with an order.
type ShippingForm struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	District string `json:"district"`
	Country  string `json:"country"`
}

// OrderItem is one cart line flattened for the order payload.
type OrderItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Color     string          `json:"color,omitempty"`
	Size      string          `json:"size,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderPayload is the single order-creation request sent to the backend.
// CreatedAt stays nil; the server assigns the authoritative timestamp.
type OrderPayload struct {
	UserID       uuid.UUID       `json:"userId"`
	Items        []OrderItem     `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	GrandTotal   decimal.Decimal `json:"grandTotal"`
	Status       string          `json:"status"`
	CreatedAt    *time.Time      `json:"createdAt"`
	Shipping     ShippingForm    `json:"shipping"`
	DeliveryNote string          `json:"deliveryNote,omitempty"`
}

// OrderReceipt is the backend's acknowledgment of a created order.
type OrderReceipt struct {
	OrderID string `json:"orderId"`
}
