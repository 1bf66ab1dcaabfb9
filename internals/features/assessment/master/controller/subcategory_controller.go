package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gedungku_backend/internals/features/assessment/master/dto"
	"gedungku_backend/internals/features/assessment/master/model"
	helper "gedungku_backend/internals/helpers"
)

type SubcategoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubcategoryController(db *gorm.DB) *SubcategoryController {
	return &SubcategoryController{DB: db, Validate: validator.New()}
}

// GET /api/master/subcategories?categoryId=
func (ctrl *SubcategoryController) List(c *fiber.Ctx) error {
	query := ctrl.DB.Preload("Category").Order("display_order ASC")
	if categoryID := c.QueryInt("categoryId"); categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var subcategories []model.SubcategoryModel
	if err := query.Find(&subcategories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil subkategori")
	}

	return helper.JsonOK(c, "Subcategories retrieved successfully", subcategories)
}

// GET /api/master/subcategories/:id
func (ctrl *SubcategoryController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subcategory ID")
	}

	var subcategory model.SubcategoryModel
	if err := ctrl.DB.Preload("Category").First(&subcategory, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subcategory not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil subkategori")
	}

	return helper.JsonOK(c, "Subcategory retrieved successfully", subcategory)
}

// POST /api/a/master/subcategories (admin)
func (ctrl *SubcategoryController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubcategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Subcategory name and categoryId are required")
	}

	var category model.CategoryModel
	if err := ctrl.DB.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}

	subcategory := model.SubcategoryModel{
		Name:         req.Name,
		CategoryID:   req.CategoryID,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	}
	if err := ctrl.DB.Create(&subcategory).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan subkategori")
	}

	return helper.JsonCreated(c, "Subcategory created successfully", subcategory)
}

// PUT /api/a/master/subcategories/:id (admin)
func (ctrl *SubcategoryController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subcategory ID")
	}

	var req dto.UpdateSubcategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var subcategory model.SubcategoryModel
	if err := ctrl.DB.First(&subcategory, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subcategory not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil subkategori")
	}

	if req.CategoryID != nil && *req.CategoryID != subcategory.CategoryID {
		var category model.CategoryModel
		if err := ctrl.DB.First(&category, "id = ?", *req.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
		}
		subcategory.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		subcategory.Name = *req.Name
	}
	if req.Description != nil {
		subcategory.Description = req.Description
	}
	if req.DisplayOrder != nil {
		subcategory.DisplayOrder = *req.DisplayOrder
	}

	if err := ctrl.DB.Save(&subcategory).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui subkategori")
	}

	return helper.JsonUpdated(c, "Subcategory updated successfully", subcategory)
}

// DELETE /api/a/master/subcategories/:id (admin)
func (ctrl *SubcategoryController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subcategory ID")
	}

	res := ctrl.DB.Delete(&model.SubcategoryModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus subkategori")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subcategory not found")
	}

	return helper.JsonDeleted(c, "Subcategory deleted successfully", nil)
}
