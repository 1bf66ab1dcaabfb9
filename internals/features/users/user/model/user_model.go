package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name                   string    `gorm:"size:100;not null" json:"name"`
	Email                  string    `gorm:"size:255;unique;not null" json:"email"`
	Password               string    `gorm:"not null" json:"-"`
	Role                   string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive               bool      `gorm:"not null;default:true" json:"is_active"`
	DefaultShippingAddress *uint     `json:"defaultShippingAddress,omitempty"`
	DefaultBillingAddress  *uint     `json:"defaultBillingAddress,omitempty"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Addresses []AddressModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}
