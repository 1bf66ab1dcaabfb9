package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gedungku_backend/internals/features/shop/cart/model"
	productModel "gedungku_backend/internals/features/shop/product/model"
	helper "gedungku_backend/internals/helpers"
)

type CartController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db, Validate: validator.New()}
}

type addItemRequest struct {
	ProductID uint `json:"productId" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

type changeQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// POST /api/carts
// Kalau produk sudah ada di cart user, quantity di-update (merge), bukan baris baru.
func (ctrl *CartController) AddItem(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var product productModel.ProductModel
	if err := ctrl.DB.First(&product, "id = ?", req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	var existing model.CartItemModel
	err = ctrl.DB.
		Where("user_id = ? AND product_id = ?", userID, product.ID).
		First(&existing).Error
	switch {
	case err == nil:
		existing.Quantity = req.Quantity
		if err := ctrl.DB.Save(&existing).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui cart")
		}
		return helper.JsonUpdated(c, "Change quantity successfully", existing)
	case errors.Is(err, gorm.ErrRecordNotFound):
		cart := model.CartItemModel{
			UserID:    userID,
			ProductID: product.ID,
			Quantity:  req.Quantity,
		}
		if err := ctrl.DB.Create(&cart).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan ke cart")
		}
		return helper.JsonCreated(c, "Add to cart successfully", cart)
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil cart")
	}
}

// PUT /api/carts/:id
func (ctrl *CartController) ChangeQuantity(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	cartID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid cart ID")
	}

	var req changeQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctrl.DB.Model(&model.CartItemModel{}).
		Where("id = ? AND user_id = ?", cartID, userID).
		Update("quantity", req.Quantity)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui cart")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Cart not found")
	}

	return helper.JsonUpdated(c, "Change quantity successfully", fiber.Map{
		"id":       cartID,
		"quantity": req.Quantity,
	})
}

// DELETE /api/carts/:id
func (ctrl *CartController) DeleteItem(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	cartID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid cart ID")
	}

	res := ctrl.DB.
		Where("id = ? AND user_id = ?", cartID, userID).
		Delete(&model.CartItemModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus cart")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Cart not found")
	}

	return helper.JsonDeleted(c, "Delete cart successfully", nil)
}

// GET /api/carts
func (ctrl *CartController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var items []model.CartItemModel
	if err := ctrl.DB.
		Preload("Product").
		Where("user_id = ?", userID).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil cart")
	}

	return helper.JsonOK(c, "Fetch all cart successfully", items)
}
