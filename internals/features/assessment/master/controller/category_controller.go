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

type CategoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db, Validate: validator.New()}
}

// GET /api/master/categories
func (ctrl *CategoryController) List(c *fiber.Ctx) error {
	var categories []model.CategoryModel
	if err := ctrl.DB.
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Order("display_order ASC").
		Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}

	return helper.JsonOK(c, "Categories retrieved successfully", categories)
}

// GET /api/master/categories/:id
func (ctrl *CategoryController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	var category model.CategoryModel
	if err := ctrl.DB.
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}

	return helper.JsonOK(c, "Category retrieved successfully", category)
}

// POST /api/a/master/categories (admin)
func (ctrl *CategoryController) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Category name is required")
	}

	category := model.CategoryModel{
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	}
	if err := ctrl.DB.Create(&category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kategori")
	}

	return helper.JsonCreated(c, "Category created successfully", category)
}

// PUT /api/a/master/categories/:id (admin)
func (ctrl *CategoryController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var category model.CategoryModel
	if err := ctrl.DB.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}

	if err := ctrl.DB.Save(&category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kategori")
	}

	return helper.JsonUpdated(c, "Category updated successfully", category)
}

// DELETE /api/a/master/categories/:id (admin)
func (ctrl *CategoryController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	res := ctrl.DB.Delete(&model.CategoryModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
	}

	return helper.JsonDeleted(c, "Category deleted successfully", nil)
}
