package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Wishlist struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID    string  `gorm:"size:36;not null;index:idx_wishlist_user_product,unique" json:"userId"`
	ProductID string  `gorm:"size:36;not null;index:idx_wishlist_user_product,unique" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (w *Wishlist) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return
}
