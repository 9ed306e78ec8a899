package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxCompareItems caps a compare list at a size that still renders as a
// side-by-side table.
const MaxCompareItems = 4

type CompareItem struct {
	ID        string  `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID    string  `gorm:"size:36;not null;index:idx_compare_user_product,unique" json:"userId"`
	ProductID string  `gorm:"size:36;not null;index:idx_compare_user_product,unique" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (c *CompareItem) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
