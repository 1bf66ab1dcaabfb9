package model

import (
	"time"
)

// CategoryModel: kategori komponen gedung (Struktural, Arsitektural, Utilitas).
// Data referensi global, bukan per gedung.
type CategoryModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null;unique" json:"name"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	DisplayOrder int       `gorm:"not null;default:0" json:"displayOrder"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Subcategories []SubcategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories,omitempty"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
