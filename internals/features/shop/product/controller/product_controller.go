package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"gedungku_backend/internals/features/shop/product/dto"
	"gedungku_backend/internals/features/shop/product/model"
	helper "gedungku_backend/internals/helpers"
)

type ProductController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db, Validate: validator.New()}
}

// POST /api/a/products (admin)
func (ctrl *ProductController) Create(c *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	product := model.ProductModel{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Tags:        pq.StringArray(req.Tags),
	}
	if err := ctrl.DB.Create(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan produk")
	}

	return helper.JsonCreated(c, "Product created successfully", product)
}

// PUT /api/a/products/:id (admin)
func (ctrl *ProductController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var product model.ProductModel
	if err := ctrl.DB.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Tags != nil {
		product.Tags = pq.StringArray(req.Tags)
	}

	if err := ctrl.DB.Save(&product).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui produk")
	}

	return helper.JsonUpdated(c, "Product updated successfully", product)
}

// DELETE /api/a/products/:id (admin)
func (ctrl *ProductController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	res := ctrl.DB.Delete(&model.ProductModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus produk")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
	}

	return helper.JsonDeleted(c, "Product deleted successfully", nil)
}

// GET /api/products
func (ctrl *ProductController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 5, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ProductModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung produk")
	}

	var products []model.ProductModel
	if err := ctrl.DB.
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&products).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Fetch all products successfully", products, &pagination)
}

// GET /api/products/search?q=
func (ctrl *ProductController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))

	var products []model.ProductModel
	query := ctrl.DB
	if q != "" {
		like := "%" + q + "%"
		query = query.Where(
			"name ILIKE ? OR description ILIKE ? OR array_to_string(tags, ',') ILIKE ?",
			like, like, like,
		)
	}
	if err := query.Find(&products).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari produk")
	}

	return helper.JsonOK(c, "Fetch all product search successfully", products)
}

// GET /api/products/:id
func (ctrl *ProductController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var product model.ProductModel
	if err := ctrl.DB.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Product not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	return helper.JsonOK(c, "Fetch product successfully", product)
}
