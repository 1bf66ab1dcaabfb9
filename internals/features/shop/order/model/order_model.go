package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	productModel "gedungku_backend/internals/features/shop/product/model"
)

const (
	OrderStatusPending        = "PENDING"
	OrderStatusAccepted       = "ACCEPTED"
	OrderStatusOutForDelivery = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      = "DELIVERED"
	OrderStatusCancelled      = "CANCELLED"
)

type OrderModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	NetAmount float64   `gorm:"type:numeric(12,2);not null" json:"netAmount"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	Status    string    `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Products []OrderProductModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	Events   []OrderEventModel   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"events,omitempty"`
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderProductModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Product *productModel.ProductModel `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderProductModel) TableName() string {
	return "order_products"
}

type OrderEventModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Status    string    `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (OrderEventModel) TableName() string {
	return "order_events"
}

// PaymentModel menyimpan hasil pembuatan transaksi Snap midtrans untuk sebuah order.
type PaymentModel struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	OrderID         uint           `gorm:"not null;index" json:"order_id"`
	SnapToken       string         `gorm:"size:255;not null" json:"snap_token"`
	RedirectURL     string         `gorm:"type:text" json:"redirect_url"`
	GatewayResponse datatypes.JSON `gorm:"type:jsonb" json:"gateway_response,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (PaymentModel) TableName() string {
	return "order_payments"
}
