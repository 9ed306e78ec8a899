package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItem struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CartID    string  `gorm:"size:36;not null;index:idx_cart_product,unique" json:"cartId"`
	ProductID string  `gorm:"size:36;not null;index:idx_cart_product,unique" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	Qty       int             `gorm:"not null" json:"qty"`
	BasePrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"basePrice"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"subtotal"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}
