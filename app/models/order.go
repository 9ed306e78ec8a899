package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

type Order struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderNumber string `gorm:"size:50;unique;not null" json:"orderNumber"`
	UserID      string `gorm:"size:36;index" json:"userId"`
	User        User   `gorm:"foreignKey:UserID" json:"-"`

	// Customer contact is captured at order time and decoupled from the
	// user record, so later profile edits do not rewrite order history.
	CustomerName  string `gorm:"size:200;not null" json:"customerName"`
	CustomerEmail string `gorm:"size:100;not null" json:"customerEmail"`
	CustomerPhone string `gorm:"size:20" json:"customerPhone,omitempty"`

	Status        string `gorm:"size:20;default:'pending';not null" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending';not null" json:"paymentStatus"`

	Subtotal     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"subtotal"`
	ShippingCost decimal.Decimal `gorm:"type:decimal(16,2)" json:"shippingCost"`
	Tax          decimal.Decimal `gorm:"type:decimal(16,2)" json:"tax"`
	Discount     decimal.Decimal `gorm:"type:decimal(16,2)" json:"discount"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"totalAmount"`

	ShippingStreet  string `gorm:"size:255;not null" json:"shippingStreet"`
	ShippingCity    string `gorm:"size:100;not null" json:"shippingCity"`
	ShippingZipCode string `gorm:"size:20;not null" json:"shippingZipCode"`
	ShippingCountry string `gorm:"size:100;not null" json:"shippingCountry"`

	TrackingNumber string `gorm:"size:100" json:"trackingNumber,omitempty"`
	Notes          string `gorm:"type:text" json:"notes,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`

	ShippedAt   *time.Time `json:"shippedAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
