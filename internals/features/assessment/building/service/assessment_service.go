package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gedungku_backend/internals/features/assessment/building/dto"
	buildingModel "gedungku_backend/internals/features/assessment/building/model"
	masterModel "gedungku_backend/internals/features/assessment/master/model"
)

// SaveAssessmentTree menyimpan satu submission penilaian secara atomik.
// Semua baris (building, assessment per kategori, subcategory assessment,
// item assessment) dibuat dalam satu transaksi; gagal di titik mana pun
// berarti tidak ada yang tersimpan. Mengembalikan id building baru.
func SaveAssessmentTree(db *gorm.DB, userID uuid.UUID, req dto.SaveAssessmentRequest) (uint, error) {
	var buildingID uint

	err := db.Transaction(func(tx *gorm.DB) error {
		building := buildingModel.BuildingModel{
			UserID:       userID,
			NameBuilding: req.NameBuilding,
			FinalStatus:  req.FinalStatus,
			FuzzyScore:   req.FuzzyScore,
		}
		if err := tx.Create(&building).Error; err != nil {
			return err
		}
		buildingID = building.ID

		for _, cat := range req.Categories {
			assessment := buildingModel.AssessmentModel{
				BuildingID:    building.ID,
				CategoryID:    cat.CategoryID,
				CategoryValue: cat.CategoryValue,
			}
			if err := tx.Create(&assessment).Error; err != nil {
				return err
			}

			for _, sub := range cat.Subcategories {
				subAssessment := buildingModel.SubcategoryAssessmentModel{
					AssessmentID:     assessment.ID,
					SubcategoryID:    sub.SubcategoryID,
					SubcategoryValue: sub.SubcategoryValue,
				}
				if err := tx.Create(&subAssessment).Error; err != nil {
					return err
				}

				for _, it := range sub.Items {
					item, err := findOrCreateItem(tx, sub.SubcategoryID, it.ItemName)
					if err != nil {
						return err
					}

					condition := it.Condition
					if condition == "" {
						condition = ClassifyDamage(it.DamageValue)
					}

					itemAssessment := buildingModel.ItemAssessmentModel{
						SubcategoryAssessmentID: subAssessment.ID,
						ItemID:                  item.ID,
						DamageValue:             it.DamageValue,
						Condition:               condition,
						Notes:                   it.Notes,
					}
					if err := tx.Create(&itemAssessment).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})

	return buildingID, err
}

// findOrCreateItem: upsert katalog item dengan kunci (subcategory_id, name).
// ON CONFLICT DO NOTHING lalu select ulang — aman saat dua submission
// menyebut nama item baru yang sama bersamaan.
func findOrCreateItem(tx *gorm.DB, subcategoryID uint, name string) (masterModel.ItemModel, error) {
	item := masterModel.ItemModel{SubcategoryID: subcategoryID, Name: name}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&item).Error; err != nil {
		return item, err
	}
	if item.ID != 0 {
		return item, nil
	}
	err := tx.Where("subcategory_id = ? AND name = ?", subcategoryID, name).
		First(&item).Error
	return item, err
}

// withTreePreloads memuat seluruh pohon dengan urutan stabil per level.
func withTreePreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Assessments", func(db *gorm.DB) *gorm.DB {
			return db.Order("assessments.id ASC")
		}).
		Preload("Assessments.Category").
		Preload("Assessments.SubcategoryAssessments", func(db *gorm.DB) *gorm.DB {
			return db.Order("subcategory_assessments.id ASC")
		}).
		Preload("Assessments.SubcategoryAssessments.Subcategory").
		Preload("Assessments.SubcategoryAssessments.ItemAssessments", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_assessments.id ASC")
		}).
		Preload("Assessments.SubcategoryAssessments.ItemAssessments.Item")
}

// LoadBuildingTree mengambil satu building milik user, lengkap dengan
// pohonnya. Building orang lain dan building yang tidak ada sama-sama
// mengembalikan gorm.ErrRecordNotFound.
func LoadBuildingTree(db *gorm.DB, userID uuid.UUID, buildingID uint) (buildingModel.BuildingModel, error) {
	var building buildingModel.BuildingModel
	err := withTreePreloads(db).
		Where("id = ? AND user_id = ?", buildingID, userID).
		First(&building).Error
	return building, err
}

// LoadBuildingTrees menjalankan query list yang sudah discope ke user,
// dengan preload pohon yang sama. scope boleh menambah filter/order.
func LoadBuildingTrees(db *gorm.DB, userID uuid.UUID, scope func(*gorm.DB) *gorm.DB) ([]buildingModel.BuildingModel, error) {
	q := withTreePreloads(db).Where("user_id = ?", userID)
	if scope != nil {
		q = scope(q)
	}
	var buildings []buildingModel.BuildingModel
	err := q.Find(&buildings).Error
	return buildings, err
}

// DeleteBuildingTree menghapus building milik user beserta seluruh anaknya
// (FK cascade). RowsAffected 0 berarti bukan milik user / tidak ada.
func DeleteBuildingTree(db *gorm.DB, userID uuid.UUID, buildingID uint) error {
	res := db.Where("id = ? AND user_id = ?", buildingID, userID).
		Delete(&buildingModel.BuildingModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* ===============================
   Jendela filter tanggal
=================================*/

var ErrInvalidDateFilter = errors.New("filter tanggal tidak valid")

// ResolveDateWindow menerjemahkan query day/month/year menjadi rentang UTC
// inklusif [start, end]. Prioritas: day > month > year; tanpa satu pun
// parameter, atau format salah, kembali ErrInvalidDateFilter.
//   day   = YYYY-MM-DD  → satu hari penuh
//   month = YYYY-MM     → satu bulan penuh
//   year  = YYYY        → satu tahun penuh
// Akhir rentang 23:59:59.999 mengikuti presisi timestamp milidetik.
func ResolveDateWindow(day, month, year string) (time.Time, time.Time, error) {
	switch {
	case day != "":
		start, err := time.ParseInLocation("2006-01-02", day, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: day harus YYYY-MM-DD", ErrInvalidDateFilter)
		}
		return start, endOfWindow(start.AddDate(0, 0, 1)), nil
	case month != "":
		start, err := time.ParseInLocation("2006-01", month, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: month harus YYYY-MM", ErrInvalidDateFilter)
		}
		return start, endOfWindow(start.AddDate(0, 1, 0)), nil
	case year != "":
		start, err := time.ParseInLocation("2006", year, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: year harus YYYY", ErrInvalidDateFilter)
		}
		return start, endOfWindow(start.AddDate(1, 0, 0)), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: kirim day, month, atau year", ErrInvalidDateFilter)
	}
}

func endOfWindow(nextStart time.Time) time.Time {
	return nextStart.Add(-time.Millisecond)
}
