package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gedungku_backend/internals/features/assessment/building/controller"
	authMw "gedungku_backend/internals/middlewares/auth"
)

// AssessmentUserRoutes: seluruh endpoint assessment butuh login.
// Mount point: /api/fuzzy/assessments.
func AssessmentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssessmentController(db)

	assessments := api.Group("/fuzzy/assessments", authMw.AuthMiddleware(db))
	assessments.Post("/", ctrl.Save)
	assessments.Get("/", ctrl.List)
	assessments.Get("/search", ctrl.Search)
	assessments.Get("/filter/date", ctrl.FilterByDate)
	assessments.Get("/:buildingId", ctrl.GetByID)
	assessments.Delete("/:buildingId", ctrl.Delete)
}
