package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AddressModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	LineOne   string    `gorm:"size:255;not null" json:"lineOne"`
	LineTwo   *string   `gorm:"size:255" json:"lineTwo,omitempty"`
	City      string    `gorm:"size:100;not null" json:"city"`
	Country   string    `gorm:"size:100;not null" json:"country"`
	Pincode   string    `gorm:"size:10;not null" json:"pincode"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AddressModel) TableName() string {
	return "addresses"
}

// FormattedAddress membentuk alamat satu baris untuk snapshot order.
func (a AddressModel) FormattedAddress() string {
	lineTwo := ""
	if a.LineTwo != nil {
		lineTwo = *a.LineTwo
	}
	return fmt.Sprintf("%s, %s, %s, %s-%s", a.LineOne, lineTwo, a.City, a.Country, a.Pincode)
}
