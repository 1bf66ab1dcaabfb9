package model

import (
	"time"
)

type SubcategoryModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CategoryID   uint      `gorm:"not null;index;uniqueIndex:idx_subcategories_category_name" json:"category_id"`
	Name         string    `gorm:"size:100;not null;uniqueIndex:idx_subcategories_category_name" json:"name"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	DisplayOrder int       `gorm:"not null;default:0" json:"displayOrder"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Items    []ItemModel    `gorm:"foreignKey:SubcategoryID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (SubcategoryModel) TableName() string {
	return "subcategories"
}
