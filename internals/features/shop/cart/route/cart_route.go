package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cartController "gedungku_backend/internals/features/shop/cart/controller"
	authMw "gedungku_backend/internals/middlewares/auth"
)

func CartUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := cartController.NewCartController(db)

	carts := router.Group("/carts", authMw.AuthMiddleware(db))
	carts.Post("/", ctrl.AddItem)
	carts.Get("/", ctrl.List)
	carts.Put("/:id", ctrl.ChangeQuantity)
	carts.Delete("/:id", ctrl.DeleteItem)
}
