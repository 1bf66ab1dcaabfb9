package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "gedungku_backend/internals/features/users/user/controller"
	authMw "gedungku_backend/internals/middlewares/auth"
)

// UserUserRoutes: endpoint untuk user login biasa (prefix /api/users)
func UserUserRoutes(router fiber.Router, db *gorm.DB) {
	addressCtrl := userController.NewAddressController(db)
	userCtrl := userController.NewUserController(db)

	users := router.Group("/users", authMw.AuthMiddleware(db))
	users.Put("/", userCtrl.UpdateMe)
	users.Post("/addresses", addressCtrl.Create)
	users.Get("/addresses", addressCtrl.List)
	users.Put("/addresses/:id", addressCtrl.Update)
	users.Delete("/addresses/:id", addressCtrl.Delete)
}

// UserAdminRoutes: manajemen user (prefix /api/a)
func UserAdminRoutes(router fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)

	users := router.Group("/users")
	users.Get("/", userCtrl.List)
	users.Get("/:id", userCtrl.GetByID)
	users.Put("/:id/role", userCtrl.ChangeRole)
}
