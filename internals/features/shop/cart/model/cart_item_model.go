package model

import (
	"time"

	"github.com/google/uuid"

	productModel "gedungku_backend/internals/features/shop/product/model"
)

type CartItemModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID uint      `gorm:"not null;index" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Product *productModel.ProductModel `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}
