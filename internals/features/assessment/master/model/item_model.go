package model

import (
	"time"
)

// ItemModel: katalog item kerusakan. Unik per (subcategory_id, name) —
// submission yang menyebut nama item baru menumbuhkan katalog ini.
type ItemModel struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SubcategoryID uint      `gorm:"not null;index;uniqueIndex:idx_items_subcategory_name" json:"subcategory_id"`
	Name          string    `gorm:"size:255;not null;uniqueIndex:idx_items_subcategory_name" json:"name"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ItemModel) TableName() string {
	return "items"
}
