package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shopori/cart-service/internal/cart"
	pkgerrors "github.com/shopori/cart-service/pkg/errors"
	"github.com/shopori/cart-service/pkg/logger"
)

var (
	errCartRequired       = errors.New("cart service required")
	errOrdersRequired     = errors.New("order client required")
	errCalculatorRequired = errors.New("calculator required")
	errLogRequired        = errors.New("checkout logger required")
)

type orderClient interface {
	CreateOrder(ctx context.Context, payload OrderPayload) (*OrderReceipt, error)
	CheckFirstOrder(ctx context.Context, userID uuid.UUID) (bool, error)
}

type submissionRecorder interface {
	IncSubmission(outcome string)
}

// Service quotes totals and submits orders.
type Service interface {
	Quote(ctx context.Context, userID uuid.UUID, city string) (*Totals, error)
	Submit(ctx context.Context, userID uuid.UUID, input SubmitInput) (*OrderReceipt, error)
	IsFirstOrder(ctx context.Context, userID uuid.UUID) (bool, error)
}

type service struct {
	cart       cart.Service
	orders     orderClient
	calculator *Calculator
	metrics    submissionRecorder
	logger     *logger.Logger
}

// NewService builds the checkout service. The metrics recorder may be nil.
func NewService(cartSvc cart.Service, orders orderClient, calculator *Calculator, rec submissionRecorder, logg *logger.Logger) (Service, error) {
	if cartSvc == nil {
		return nil, errCartRequired
	}
	if orders == nil {
		return nil, errOrdersRequired
	}
	if calculator == nil {
		return nil, errCalculatorRequired
	}
	if logg == nil {
		return nil, errLogRequired
	}
	return &service{
		cart:       cartSvc,
		orders:     orders,
		calculator: calculator,
		metrics:    rec,
		logger:     logg,
	}, nil
}

func (s *service) recordSubmission(outcome string) {
	if s.metrics != nil {
		s.metrics.IncSubmission(outcome)
	}
}

// SubmitInput is the buyer's checkout submission.
type SubmitInput struct {
	Shipping     ShippingForm
	DeliveryNote string
}

// Quote recomputes the full breakdown for the buyer's current cart and the
// selected city. Totals are derived fresh on every call.
func (s *service) Quote(ctx context.Context, userID uuid.UUID, city string) (*Totals, error) {
	items, err := s.cart.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	totals := s.calculator.ComputeTotals(items, city)
	return &totals, nil
}

// Submit places a single order for everything in the cart. Preconditions
// fail fast before any network call. The cart is cleared only after the
// backend confirms the order; any failure leaves it untouched.
func (s *service) Submit(ctx context.Context, userID uuid.UUID, input SubmitInput) (*OrderReceipt, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to place an order")
	}

	items, err := s.cart.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	totals := s.calculator.ComputeTotals(items, input.Shipping.City)

	payload := OrderPayload{
		UserID:       userID,
		Items:        make([]OrderItem, 0, len(items)),
		Subtotal:     totals.Subtotal,
		ShippingCost: totals.ShippingCost,
		GrandTotal:   totals.GrandTotal,
		Status:       StatusSeed,
		Shipping:     input.Shipping,
		DeliveryNote: input.DeliveryNote,
	}
	for _, item := range items {
		payload.Items = append(payload.Items, OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Color:     item.Color,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	receipt, err := s.orders.CreateOrder(ctx, payload)
	if err != nil {
		s.recordSubmission("failure")
		return nil, err
	}
	s.recordSubmission("success")

	if err := s.cart.Clear(ctx, userID); err != nil {
		// Order is already placed; surface the stale cart in logs only.
		s.logger.Error(ctx, fmt.Sprintf("clearing cart after order %s", receipt.OrderID), err)
	}
	return receipt, nil
}

func (s *service) IsFirstOrder(ctx context.Context, userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in required")
	}
	return s.orders.CheckFirstOrder(ctx, userID)
}
