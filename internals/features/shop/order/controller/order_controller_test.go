package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cartModel "gedungku_backend/internals/features/shop/cart/model"
	productModel "gedungku_backend/internals/features/shop/product/model"
)

func TestCartTotal(t *testing.T) {
	items := []cartModel.CartItemModel{
		{Quantity: 2, Product: &productModel.ProductModel{Price: 150000}},
		{Quantity: 1, Product: &productModel.ProductModel{Price: 75500.50}},
		{Quantity: 3, Product: nil}, // produk gagal di-preload tidak ikut dihitung
	}

	assert.InDelta(t, 375500.50, cartTotal(items), 0.001)
	assert.Zero(t, cartTotal(nil))
}
