package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orderController "gedungku_backend/internals/features/shop/order/controller"
	authMw "gedungku_backend/internals/middlewares/auth"
)

func OrderUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := orderController.NewOrderController(db)

	orders := router.Group("/orders", authMw.AuthMiddleware(db))
	orders.Post("/", ctrl.Create)
	orders.Get("/", ctrl.ListMine)
	orders.Get("/:id", ctrl.GetByID)
	orders.Put("/:id/cancel", ctrl.Cancel)
	orders.Post("/:id/pay", ctrl.Pay)
}

func OrderAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := orderController.NewOrderController(db)

	orders := router.Group("/orders")
	orders.Get("/", ctrl.ListAll)
	orders.Put("/:id/status", ctrl.ChangeStatus)

	router.Get("/users/:id/orders", ctrl.ListUserOrders)
}
