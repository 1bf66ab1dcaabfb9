package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gedungku_backend/internals/features/assessment/building/dto"
	"gedungku_backend/internals/features/assessment/building/service"
	helper "gedungku_backend/internals/helpers"
)

type AssessmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{DB: db, Validate: validator.New()}
}

// POST /api/fuzzy/assessments
// Satu submission = satu building baru, seluruh pohon dibuat atomik.
func (ctrl *AssessmentController) Save(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req dto.SaveAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.NameBuilding == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "nameBuilding wajib diisi")
	}
	if req.FinalStatus == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "finalStatus wajib diisi")
	}
	if req.FuzzyScore == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "fuzzyScore wajib diisi")
	}
	if len(req.Categories) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "categories tidak boleh kosong")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	buildingID, err := service.SaveAssessmentTree(ctrl.DB, userID, req)
	if err != nil {
		log.Println("[ERROR] simpan assessment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan assessment")
	}

	building, err := service.LoadBuildingTree(ctrl.DB, userID, buildingID)
	if err != nil {
		log.Println("[ERROR] muat ulang assessment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat assessment")
	}

	return helper.JsonCreated(c, "Assessment saved successfully", dto.ToBuildingResponse(building))
}

// GET /api/fuzzy/assessments — semua building milik user, terbaru dulu.
func (ctrl *AssessmentController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	buildings, err := service.LoadBuildingTrees(ctrl.DB, userID, func(q *gorm.DB) *gorm.DB {
		return q.Order("created_at DESC")
	})
	if err != nil {
		log.Println("[ERROR] list assessment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assessment")
	}

	return helper.JsonOK(c, "Assessments fetched successfully", dto.ToBuildingResponses(buildings))
}

// GET /api/fuzzy/assessments/search?q=
// Substring case-insensitive pada nama gedung ATAU status akhir.
func (ctrl *AssessmentController) Search(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	q := c.Query("q")
	if q == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter q wajib diisi")
	}

	pattern := "%" + q + "%"
	buildings, err := service.LoadBuildingTrees(ctrl.DB, userID, func(query *gorm.DB) *gorm.DB {
		return query.Where("name_building ILIKE ? OR final_status ILIKE ?", pattern, pattern)
	})
	if err != nil {
		log.Println("[ERROR] cari assessment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari assessment")
	}

	return helper.JsonOK(c, "Assessments searched successfully", dto.ToBuildingResponses(buildings))
}

// GET /api/fuzzy/assessments/filter/date?day=|month=|year=
func (ctrl *AssessmentController) FilterByDate(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	start, end, err := service.ResolveDateWindow(c.Query("day"), c.Query("month"), c.Query("year"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	buildings, err := service.LoadBuildingTrees(ctrl.DB, userID, func(q *gorm.DB) *gorm.DB {
		return q.Where("created_at BETWEEN ? AND ?", start, end).Order("created_at DESC")
	})
	if err != nil {
		log.Println("[ERROR] filter assessment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memfilter assessment")
	}

	return helper.JsonOK(c, "Assessments filtered successfully", dto.ToBuildingResponses(buildings))
}

// GET /api/fuzzy/assessments/:buildingId
// Milik orang lain dan tidak ada sama-sama 404.
func (ctrl *AssessmentController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	buildingID, err := c.ParamsInt("buildingId")
	if err != nil || buildingID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid building ID")
	}

	building, err := service.LoadBuildingTree(ctrl.DB, userID, uint(buildingID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assessment not found")
		}
		log.Println("[ERROR] ambil assessment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assessment")
	}

	return helper.JsonOK(c, "Assessment fetched successfully", dto.ToBuildingResponse(building))
}

// DELETE /api/fuzzy/assessments/:buildingId — cascade ke seluruh pohon.
func (ctrl *AssessmentController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	buildingID, err := c.ParamsInt("buildingId")
	if err != nil || buildingID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid building ID")
	}

	if err := service.DeleteBuildingTree(ctrl.DB, userID, uint(buildingID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assessment not found")
		}
		log.Println("[ERROR] hapus assessment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus assessment")
	}

	return helper.JsonDeleted(c, "Assessment deleted successfully", nil)
}
