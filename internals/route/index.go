package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentRoute "gedungku_backend/internals/features/assessment/building/route"
	masterRoute "gedungku_backend/internals/features/assessment/master/route"
	cartRoute "gedungku_backend/internals/features/shop/cart/route"
	orderRoute "gedungku_backend/internals/features/shop/order/route"
	productRoute "gedungku_backend/internals/features/shop/product/route"
	authRoute "gedungku_backend/internals/features/users/auth/route"
	userRoute "gedungku_backend/internals/features/users/user/route"
	"gedungku_backend/internals/middlewares"
	authMiddleware "gedungku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// /api — limiter global; proteksi JWT dipasang per grup fitur
	// (signup/login harus tetap bisa diakses tanpa token)
	log.Println("[INFO] Setting up API group...")
	api := app.Group("/api", middlewares.GlobalRateLimiter())

	// /api/a — khusus admin (JWT + role admin)
	log.Println("[INFO] Setting up ADMIN group...")
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireAdmin(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Auth routes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserUserRoutes(api, db)
	userRoute.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Product routes...")
	productRoute.ProductUserRoutes(api, db)
	productRoute.ProductAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Cart routes...")
	cartRoute.CartUserRoutes(api, db)

	log.Println("[INFO] Mounting Order routes...")
	orderRoute.OrderUserRoutes(api, db)
	orderRoute.OrderAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Master data routes...")
	masterRoute.MasterUserRoutes(api, db)
	masterRoute.MasterAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Assessment routes...")
	assessmentRoute.AssessmentUserRoutes(api, db)
}
