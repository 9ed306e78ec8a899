package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Cart struct {
	ID     string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID string `gorm:"size:36;not null;uniqueIndex" json:"userId"`

	CartItems []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`

	BaseTotalPrice decimal.Decimal `gorm:"type:decimal(16,2)" json:"baseTotalPrice"`
	GrandTotal     decimal.Decimal `gorm:"type:decimal(16,2)" json:"grandTotal"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
