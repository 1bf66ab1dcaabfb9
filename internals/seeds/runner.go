package seeds

import (
	"gorm.io/gorm"

	master "gedungku_backend/internals/seeds/master"
)

func RunAllSeeds(db *gorm.DB) {

	//* Katalog master assessment (kategori + subkategori)
	master.SeedMasterFromJSON(db, "internals/seeds/master/data_master.json")

}
