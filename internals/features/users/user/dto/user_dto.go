package dto

type CreateAddressRequest struct {
	LineOne string  `json:"lineOne" validate:"required"`
	LineTwo *string `json:"lineTwo"`
	City    string  `json:"city" validate:"required"`
	Country string  `json:"country" validate:"required"`
	Pincode string  `json:"pincode" validate:"required,len=6"`
}

type UpdateAddressRequest struct {
	LineOne *string `json:"lineOne"`
	LineTwo *string `json:"lineTwo"`
	City    *string `json:"city"`
	Country *string `json:"country"`
	Pincode *string `json:"pincode" validate:"omitempty,len=6"`
}

type UpdateUserRequest struct {
	Name                   *string `json:"name"`
	DefaultShippingAddress *uint   `json:"defaultShippingAddress"`
	DefaultBillingAddress  *uint   `json:"defaultBillingAddress"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}
