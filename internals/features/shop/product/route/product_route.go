package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	productController "gedungku_backend/internals/features/shop/product/controller"
	authMw "gedungku_backend/internals/middlewares/auth"
)

// ProductUserRoutes: katalog produk (auth user biasa)
func ProductUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := productController.NewProductController(db)

	products := router.Group("/products", authMw.AuthMiddleware(db))
	products.Get("/", ctrl.List)
	products.Get("/search", ctrl.Search)
	products.Get("/:id", ctrl.GetByID)
}

// ProductAdminRoutes: kelola produk
func ProductAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := productController.NewProductController(db)

	products := router.Group("/products")
	products.Post("/", ctrl.Create)
	products.Put("/:id", ctrl.Update)
	products.Delete("/:id", ctrl.Delete)
}
