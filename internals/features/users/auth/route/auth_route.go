package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "gedungku_backend/internals/features/users/auth/controller"
	authMw "gedungku_backend/internals/middlewares/auth"
	rateLimiter "gedungku_backend/internals/middlewares"
)

func AuthRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := router.Group("/auth")
	auth.Post("/signup", rateLimiter.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", rateLimiter.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", rateLimiter.LoginRateLimiter(), ctrl.LoginGoogle)

	auth.Get("/me", authMw.AuthMiddleware(db), ctrl.Me)
	auth.Post("/logout", authMw.AuthMiddleware(db), ctrl.Logout)
}
