package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormattedAddress(t *testing.T) {
	lineTwo := "Blok C No. 7"
	addr := AddressModel{
		LineOne: "Jl. Merdeka 45",
		LineTwo: &lineTwo,
		City:    "Bandung",
		Country: "Indonesia",
		Pincode: "40115",
	}
	assert.Equal(t, "Jl. Merdeka 45, Blok C No. 7, Bandung, Indonesia-40115", addr.FormattedAddress())
}

func TestFormattedAddressWithoutLineTwo(t *testing.T) {
	addr := AddressModel{
		LineOne: "Jl. Merdeka 45",
		City:    "Bandung",
		Country: "Indonesia",
		Pincode: "40115",
	}
	assert.Equal(t, "Jl. Merdeka 45, , Bandung, Indonesia-40115", addr.FormattedAddress())
}
