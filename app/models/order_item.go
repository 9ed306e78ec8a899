package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID   string  `gorm:"size:36;not null;index" json:"orderId"`
	Order     Order   `gorm:"foreignKey:OrderID" json:"-"`
	ProductID string  `gorm:"size:36;not null;index" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	// Name, SKU and price are snapshotted at purchase time; later product
	// edits never rewrite past orders.
	ProductName string          `gorm:"size:255;not null" json:"productName"`
	ProductSku  string          `gorm:"size:100" json:"productSku"`
	Qty         int             `gorm:"not null" json:"qty"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"totalPrice"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
