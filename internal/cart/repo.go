package cart

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopori/cart-service/pkg/db/models"
	pkgerrors "github.com/shopori/cart-service/pkg/errors"
)

// Key is the compound identity of one cart line. Two lines are the same
// line only when all four components match.
type Key struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Color     string
	Size      string
}

// Repository persists cart lines for the local buyer store.
type Repository interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	Find(ctx context.Context, key Key) (*models.CartItem, error)
	Add(ctx context.Context, item *models.CartItem) error
	SetQuantity(ctx context.Context, key Key, quantity int) (*models.CartItem, error)
	Remove(ctx context.Context, key Key) error
	Clear(ctx context.Context, userID uuid.UUID) error
	WithTx(tx *gorm.DB) Repository
}

type repository struct {
	db *gorm.DB
}

// NewRepository binds the cart repository to the provided DB handle.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) List(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	// Stable display order: oldest line first, line id as tiebreaker.
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) Find(ctx context.Context, key Key) (*models.CartItem, error) {
	var item models.CartItem
	err := r.scopeKey(ctx, key).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Add inserts a new line. A unique index violation on the compound key
// surfaces as CodeConflict so callers reject duplicates instead of merging.
func (r *repository) Add(ctx context.Context, item *models.CartItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	err := r.db.WithContext(ctx).Create(item).Error
	if err != nil && isUniqueViolation(err) {
		return pkgerrors.New(pkgerrors.CodeConflict, "item already in cart")
	}
	return err
}

func (r *repository) SetQuantity(ctx context.Context, key Key, quantity int) (*models.CartItem, error) {
	res := r.scopeKey(ctx, key).Model(&models.CartItem{}).Update("quantity", quantity)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return r.Find(ctx, key)
}

func (r *repository) Remove(ctx context.Context, key Key) error {
	return r.scopeKey(ctx, key).Delete(&models.CartItem{}).Error
}

func (r *repository) Clear(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}

func (r *repository) scopeKey(ctx context.Context, key Key) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND color = ? AND size = ?",
			key.UserID, key.ProductID, key.Color, key.Size)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// The sqlite driver reports constraint failures as plain errors,
	// not gorm.ErrDuplicatedKey.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
