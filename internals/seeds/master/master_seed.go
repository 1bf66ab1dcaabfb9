package master

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	masterModel "gedungku_backend/internals/features/assessment/master/model"
)

type seedSubcategory struct {
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"display_order"`
}

type seedCategory struct {
	Name          string            `json:"name"`
	Description   *string           `json:"description"`
	DisplayOrder  int               `json:"display_order"`
	Subcategories []seedSubcategory `json:"subcategories"`
}

// SeedMasterFromJSON memuat katalog kategori/subkategori dari file JSON.
// Idempoten: upsert by name, jalankan berulang aman.
func SeedMasterFromJSON(db *gorm.DB, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Println("[SEED] gagal membaca", path, ":", err)
		return
	}

	var categories []seedCategory
	if err := sonic.Unmarshal(raw, &categories); err != nil {
		log.Println("[SEED] gagal parse", path, ":", err)
		return
	}

	for _, sc := range categories {
		var category masterModel.CategoryModel
		err := db.Where("name = ?", sc.Name).First(&category).Error
		if err == gorm.ErrRecordNotFound {
			category = masterModel.CategoryModel{
				Name:         sc.Name,
				Description:  sc.Description,
				DisplayOrder: sc.DisplayOrder,
			}
			if err := db.Create(&category).Error; err != nil {
				log.Println("[SEED] gagal membuat kategori", sc.Name, ":", err)
				continue
			}
		} else if err != nil {
			log.Println("[SEED] gagal cek kategori", sc.Name, ":", err)
			continue
		}

		for _, ss := range sc.Subcategories {
			var sub masterModel.SubcategoryModel
			err := db.Where("category_id = ? AND name = ?", category.ID, ss.Name).
				First(&sub).Error
			if err == gorm.ErrRecordNotFound {
				sub = masterModel.SubcategoryModel{
					CategoryID:   category.ID,
					Name:         ss.Name,
					Description:  ss.Description,
					DisplayOrder: ss.DisplayOrder,
				}
				if err := db.Create(&sub).Error; err != nil {
					log.Println("[SEED] gagal membuat subkategori", ss.Name, ":", err)
				}
			} else if err != nil {
				log.Println("[SEED] gagal cek subkategori", ss.Name, ":", err)
			}
		}
	}

	log.Println("[SEED] katalog master selesai di-seed ✅")
}
