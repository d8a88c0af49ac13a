package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dbtypes "github.com/shopori/cart-service/pkg/db/types"
)

// CartItem is one persisted cart line. Price, stock and images are snapshots
// resolved once when the item was added; they are never refreshed from the
// catalog afterwards, so the cart reflects prices as selected.
//
// Uniqueness is the compound (user_id, product_id, color, size) key.
type CartItem struct {
	ID            uuid.UUID        `gorm:"column:id;type:text;primaryKey" json:"id"`
	UserID        uuid.UUID        `gorm:"column:user_id;type:text;not null;uniqueIndex:idx_cart_items_key,priority:1" json:"userId"`
	ProductID     uuid.UUID        `gorm:"column:product_id;type:text;not null;uniqueIndex:idx_cart_items_key,priority:2" json:"productId"`
	Color         string           `gorm:"column:color;not null;default:'';uniqueIndex:idx_cart_items_key,priority:3" json:"color"`
	Size          string           `gorm:"column:size;not null;default:'';uniqueIndex:idx_cart_items_key,priority:4" json:"size"`
	Name          string           `gorm:"column:name;not null" json:"name"`
	Quantity      int              `gorm:"column:quantity;not null;default:1" json:"quantity"`
	Price         decimal.Decimal  `gorm:"column:price;type:text;not null" json:"price"`
	StockQuantity int              `gorm:"column:stock_quantity;not null" json:"stockQuantity"`
	ProductImages dbtypes.ImageList `gorm:"column:product_images;type:text" json:"productImages"`
	SellerEmail   string           `gorm:"column:seller_email" json:"sellerEmail"`
	SellerName    string           `gorm:"column:seller_name" json:"sellerName"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
