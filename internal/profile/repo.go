package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopori/cart-service/pkg/db/models"
)

// Repository caches buyer contact details locally for shipping-form prefill.
type Repository interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.BuyerProfile, error)
	Upsert(ctx context.Context, profile *models.BuyerProfile) error
	WithTx(tx *gorm.DB) Repository
}

type repository struct {
	db *gorm.DB
}

// NewRepository binds the profile repository to the provided DB handle.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

// Get returns the cached profile, or nil when none has been stored yet.
// A missing profile is a normal state, not an error.
func (r *repository) Get(ctx context.Context, userID uuid.UUID) (*models.BuyerProfile, error) {
	var p models.BuyerProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert replaces the cached profile wholesale. Last write wins.
func (r *repository) Upsert(ctx context.Context, profile *models.BuyerProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(profile).Error
}
