package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID            string           `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name          string           `gorm:"size:255;not null" json:"name"`
	Slug          string           `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Sku           string           `gorm:"size:100;uniqueIndex" json:"sku"`
	Description   string           `gorm:"type:text" json:"description"`
	Price         decimal.Decimal  `gorm:"type:decimal(16,2);not null" json:"price"`
	OriginalPrice *decimal.Decimal `gorm:"type:decimal(16,2)" json:"originalPrice,omitempty"`

	// DiscountPercent is derived from Price/OriginalPrice on every write
	// that touches either field; zero when OriginalPrice is absent.
	DiscountPercent int `gorm:"default:0" json:"discountPercent"`

	CategoryID string   `gorm:"size:36;not null;index" json:"categoryId"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	BrandID    *string  `gorm:"size:36;index" json:"brandId,omitempty"`
	Brand      *Brand   `gorm:"foreignKey:BrandID" json:"brand,omitempty"`

	StockQuantity int  `gorm:"not null;default:0" json:"stockQuantity"`
	InStock       bool `gorm:"default:false" json:"inStock"`

	IsActive   bool `gorm:"default:true" json:"isActive"`
	IsFeatured bool `gorm:"default:false" json:"isFeatured"`
	IsNew      bool `gorm:"default:false" json:"isNew"`
	IsHot      bool `gorm:"default:false" json:"isHot"`

	Images         []ProductImage         `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	Specifications []ProductSpecification `gorm:"foreignKey:ProductID" json:"specifications,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

type ProductImage struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string `gorm:"size:36;not null;index" json:"productId"`
	URL       string `gorm:"size:255;not null" json:"url"`
	Alt       string `gorm:"size:255" json:"alt"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`
	IsPrimary bool   `gorm:"default:false" json:"isPrimary"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (pi *ProductImage) BeforeCreate(tx *gorm.DB) (err error) {
	if pi.ID == "" {
		pi.ID = uuid.New().String()
	}
	return
}

type ProductSpecification struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID string `gorm:"size:36;not null;index" json:"productId"`
	GroupName string `gorm:"size:100;not null" json:"groupName"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Value     string `gorm:"size:255;not null" json:"value"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ps *ProductSpecification) BeforeCreate(tx *gorm.DB) (err error) {
	if ps.ID == "" {
		ps.ID = uuid.New().String()
	}
	return
}
