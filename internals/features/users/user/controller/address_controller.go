package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gedungku_backend/internals/features/users/user/dto"
	"gedungku_backend/internals/features/users/user/model"
	helper "gedungku_backend/internals/helpers"
)

type AddressController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAddressController(db *gorm.DB) *AddressController {
	return &AddressController{DB: db, Validate: validator.New()}
}

// POST /api/users/addresses
func (ctrl *AddressController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req dto.CreateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	address := model.AddressModel{
		UserID:  userID,
		LineOne: req.LineOne,
		LineTwo: req.LineTwo,
		City:    req.City,
		Country: req.Country,
		Pincode: req.Pincode,
	}
	if err := ctrl.DB.Create(&address).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan alamat")
	}

	return helper.JsonCreated(c, "Address created successfully", address)
}

// PUT /api/users/addresses/:id
func (ctrl *AddressController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	addressID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid address ID")
	}

	var req dto.UpdateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var address model.AddressModel
	if err := ctrl.DB.
		Where("id = ? AND user_id = ?", addressID, userID).
		First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Address not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil alamat")
	}

	if req.LineOne != nil {
		address.LineOne = *req.LineOne
	}
	if req.LineTwo != nil {
		address.LineTwo = req.LineTwo
	}
	if req.City != nil {
		address.City = *req.City
	}
	if req.Country != nil {
		address.Country = *req.Country
	}
	if req.Pincode != nil {
		address.Pincode = *req.Pincode
	}

	if err := ctrl.DB.Save(&address).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui alamat")
	}

	return helper.JsonUpdated(c, "Address updated successfully", address)
}

// DELETE /api/users/addresses/:id
func (ctrl *AddressController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	addressID, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid address ID")
	}

	res := ctrl.DB.
		Where("id = ? AND user_id = ?", addressID, userID).
		Delete(&model.AddressModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus alamat")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Address not found")
	}

	return helper.JsonDeleted(c, "Address deleted successfully", nil)
}

// GET /api/users/addresses
func (ctrl *AddressController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var addresses []model.AddressModel
	if err := ctrl.DB.Where("user_id = ?", userID).Find(&addresses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil alamat")
	}

	return helper.JsonOK(c, "Addresses fetched successfully", addresses)
}
