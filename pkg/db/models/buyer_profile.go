package models

import (
	"time"

	"github.com/google/uuid"
)

// BuyerProfile caches the buyer's contact details locally so the shipping
// form can be prefilled. One row per buyer.
type BuyerProfile struct {
	UserID    uuid.UUID `gorm:"column:user_id;type:text;primaryKey" json:"userId"`
	FullName  string    `gorm:"column:full_name" json:"fullName"`
	Phone     string    `gorm:"column:phone" json:"phone"`
	Email     string    `gorm:"column:email" json:"email"`
	Address   string    `gorm:"column:address" json:"address"`
	City      string    `gorm:"column:city" json:"city"`
	District  string    `gorm:"column:district" json:"district"`
	Country   string    `gorm:"column:country" json:"country"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (BuyerProfile) TableName() string {
	return "buyer_profiles"
}
