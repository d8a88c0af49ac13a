package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shopori/cart-service/internal/catalog"
	"github.com/shopori/cart-service/pkg/db/models"
	dbtypes "github.com/shopori/cart-service/pkg/db/types"
	pkgerrors "github.com/shopori/cart-service/pkg/errors"
	"github.com/shopori/cart-service/pkg/logger"
)

var (
	errRepoRequired     = errors.New("cart repository required")
	errProductsRequired = errors.New("product loader required")
	errLoggerRequired   = errors.New("cart logger required")
)

type productLoader interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
}

// Service owns all cart mutations. Every successful mutation is persisted
// synchronously and then broadcast to subscribed observers.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	Add(ctx context.Context, userID uuid.UUID, input AddInput) (*models.CartItem, error)
	AdjustQuantity(ctx context.Context, key Key, delta int) (*models.CartItem, error)
	Remove(ctx context.Context, key Key) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	repo     Repository
	products productLoader
	notifier Observer
	logger   *logger.Logger
}

// NewService builds the cart service. The notifier may be nil when no
// observers are wired.
func NewService(repo Repository, products productLoader, notifier Observer, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, errRepoRequired
	}
	if products == nil {
		return nil, errProductsRequired
	}
	if logg == nil {
		return nil, errLoggerRequired
	}
	return &service{
		repo:     repo,
		products: products,
		notifier: notifier,
		logger:   logg,
	}, nil
}

// AddInput is the payload for adding one product to the cart.
type AddInput struct {
	ProductID uuid.UUID
	Selection catalog.Selection
	Quantity  int
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list cart items")
	}
	return items, nil
}

// Add resolves the product's effective price and stock for the buyer's
// selection and stores them as an immutable snapshot on the new line. A line
// with the same compound key already in the cart is rejected, never merged.
func (s *service) Add(ctx context.Context, userID uuid.UUID, input AddInput) (*models.CartItem, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if input.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	product, err := s.products.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if err := catalog.ValidateSelection(product, input.Selection); err != nil {
		return nil, err
	}

	pricing := catalog.ResolvePricing(product, input.Selection)
	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	item := &models.CartItem{
		ID:            uuid.New(),
		UserID:        userID,
		ProductID:     input.ProductID,
		Color:         input.Selection.Color,
		Size:          input.Selection.Size,
		Name:          product.Name,
		Quantity:      quantity,
		Price:         pricing.Price,
		StockQuantity: pricing.StockQuantity,
		ProductImages: dbtypes.ImageList(product.Images),
		SellerEmail:   product.SellerEmail,
		SellerName:    product.SellerName,
	}

	if err := s.repo.Add(ctx, item); err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist cart item")
	}

	s.broadcast(ctx, userID, ChangeAdded)
	return item, nil
}

// AdjustQuantity shifts a line's quantity by delta, clamped to a floor of 1.
// The line is addressed by its full compound key so two variants of the same
// product adjust independently.
func (s *service) AdjustQuantity(ctx context.Context, key Key, delta int) (*models.CartItem, error) {
	if key.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if key.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	current, err := s.repo.Find(ctx, key)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart item")
	}
	if current == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}

	next := current.Quantity + delta
	if next < 1 {
		next = 1
	}
	if next == current.Quantity {
		return current, nil
	}

	updated, err := s.repo.SetQuantity(ctx, key, next)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update cart quantity")
	}

	s.broadcast(ctx, key.UserID, ChangeAdjusted)
	return updated, nil
}

// Remove deletes a line by key. Removing a key that is not in the cart is a
// no-op, not an error.
func (s *service) Remove(ctx context.Context, key Key) error {
	if key.UserID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if key.ProductID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if err := s.repo.Remove(ctx, key); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove cart item")
	}
	s.broadcast(ctx, key.UserID, ChangeRemoved)
	return nil
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := s.repo.Clear(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
	}
	s.broadcast(ctx, userID, ChangeCleared)
	return nil
}

func (s *service) broadcast(ctx context.Context, userID uuid.UUID, kind ChangeKind) {
	if s.notifier == nil {
		return
	}
	count := 0
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		s.logger.Warn(ctx, fmt.Sprintf("counting cart items after %s: %v", kind, err))
	} else {
		count = len(items)
	}
	s.notifier.CartChanged(ctx, ChangeEvent{UserID: userID, Kind: kind, ItemCount: count})
}
