package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	masterController "gedungku_backend/internals/features/assessment/master/controller"
	authMw "gedungku_backend/internals/middlewares/auth"
)

// MasterUserRoutes: baca katalog kategori/subkategori (auth user biasa)
func MasterUserRoutes(router fiber.Router, db *gorm.DB) {
	categoryCtrl := masterController.NewCategoryController(db)
	subcategoryCtrl := masterController.NewSubcategoryController(db)

	master := router.Group("/master", authMw.AuthMiddleware(db))
	master.Get("/categories", categoryCtrl.List)
	master.Get("/categories/:id", categoryCtrl.GetByID)
	master.Get("/subcategories", subcategoryCtrl.List)
	master.Get("/subcategories/:id", subcategoryCtrl.GetByID)
}

// MasterAdminRoutes: kelola katalog
func MasterAdminRoutes(router fiber.Router, db *gorm.DB) {
	categoryCtrl := masterController.NewCategoryController(db)
	subcategoryCtrl := masterController.NewSubcategoryController(db)

	master := router.Group("/master")
	master.Post("/categories", categoryCtrl.Create)
	master.Put("/categories/:id", categoryCtrl.Update)
	master.Delete("/categories/:id", categoryCtrl.Delete)
	master.Post("/subcategories", subcategoryCtrl.Create)
	master.Put("/subcategories/:id", subcategoryCtrl.Update)
	master.Delete("/subcategories/:id", subcategoryCtrl.Delete)
}
