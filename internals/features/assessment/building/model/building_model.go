package model

import (
	"time"

	"github.com/google/uuid"

	masterModel "gedungku_backend/internals/features/assessment/master/model"
)

// Status akhir rekomendasi penanganan gedung.
const (
	FinalStatusPemeliharaan = "Pemeliharaan"
	FinalStatusRenovasi     = "Renovasi"
	FinalStatusPembongkaran = "Pembongkaran"
)

// BuildingModel: akar pohon penilaian. Satu submission = satu building baru;
// revisi dilakukan dengan submit ulang, bukan update parsial.
type BuildingModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	NameBuilding string    `gorm:"size:255;not null" json:"name_building"`
	FinalStatus  string    `gorm:"type:varchar(20);not null" json:"final_status"`
	FuzzyScore   *float64  `json:"fuzzy_score"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Assessments []AssessmentModel `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE" json:"assessments,omitempty"`
}

func (BuildingModel) TableName() string {
	return "buildings"
}

// AssessmentModel: nilai agregat satu kategori untuk satu building.
type AssessmentModel struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BuildingID    uint      `gorm:"not null;index" json:"building_id"`
	CategoryID    uint      `gorm:"not null" json:"category_id"`
	CategoryValue float64   `json:"category_value"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Category               *masterModel.CategoryModel   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubcategoryAssessments []SubcategoryAssessmentModel `gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE" json:"subcategory_assessments,omitempty"`
}

func (AssessmentModel) TableName() string {
	return "assessments"
}

type SubcategoryAssessmentModel struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	AssessmentID     uint      `gorm:"not null;index" json:"assessment_id"`
	SubcategoryID    uint      `gorm:"not null" json:"subcategory_id"`
	SubcategoryValue float64   `json:"subcategory_value"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`

	Subcategory     *masterModel.SubcategoryModel `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`
	ItemAssessments []ItemAssessmentModel         `gorm:"foreignKey:SubcategoryAssessmentID;constraint:OnDelete:CASCADE" json:"item_assessments,omitempty"`
}

func (SubcategoryAssessmentModel) TableName() string {
	return "subcategory_assessments"
}

// ItemAssessmentModel: daun pohon — nilai kerusakan satu item plus label
// kondisi (diisi server bila caller tidak mengirim).
type ItemAssessmentModel struct {
	ID                      uint      `gorm:"primaryKey" json:"id"`
	SubcategoryAssessmentID uint      `gorm:"not null;index" json:"subcategory_assessment_id"`
	ItemID                  uint      `gorm:"not null" json:"item_id"`
	DamageValue             float64   `gorm:"not null" json:"damage_value"`
	Condition               string    `gorm:"size:50;not null" json:"condition"`
	Notes                   *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt               time.Time `gorm:"autoCreateTime" json:"created_at"`

	Item *masterModel.ItemModel `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

func (ItemAssessmentModel) TableName() string {
	return "item_assessments"
}
