package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gedungku_backend/internals/features/users/user/dto"
	"gedungku_backend/internals/features/users/user/model"
	helper "gedungku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// PUT /api/users
// Update nama & alamat default (shipping/billing). Alamat harus milik user sendiri.
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.DefaultShippingAddress != nil {
		if err := ctrl.ensureOwnAddress(c, userID, *req.DefaultShippingAddress); err != nil {
			return err
		}
	}
	if req.DefaultBillingAddress != nil {
		if err := ctrl.ensureOwnAddress(c, userID, *req.DefaultBillingAddress); err != nil {
			return err
		}
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.DefaultShippingAddress != nil {
		updates["default_shipping_address"] = *req.DefaultShippingAddress
	}
	if req.DefaultBillingAddress != nil {
		updates["default_billing_address"] = *req.DefaultBillingAddress
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui user")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.JsonUpdated(c, "Update user successfully", user)
}

func (ctrl *UserController) ensureOwnAddress(c *fiber.Ctx, userID uuid.UUID, addressID uint) error {
	var address model.AddressModel
	if err := ctrl.DB.First(&address, "id = ?", addressID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Address not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil alamat")
	}
	if address.UserID != userID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Address does not belong to user")
	}
	return nil
}

// GET /api/a/users (admin)
func (ctrl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 5, 100)

	var total int64
	if err := ctrl.DB.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []model.UserModel
	if err := ctrl.DB.
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Fetch all user successfully", users, &pagination)
}

// GET /api/a/users/:id (admin)
func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var user model.UserModel
	if err := ctrl.DB.Preload("Addresses").First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.JsonOK(c, "Fetch user successfully", user)
}

// PUT /api/a/users/:id/role (admin)
func (ctrl *UserController) ChangeRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.ChangeRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctrl.DB.Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("role", req.Role)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah role")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonUpdated(c, "Change role user successfully", fiber.Map{
		"id":   id,
		"role": req.Role,
	})
}
