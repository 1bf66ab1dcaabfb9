package service

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gedungku_backend/internals/features/assessment/building/dto"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func floatPtr(v float64) *float64 { return &v }

func TestSaveAssessmentTreeFullTree(t *testing.T) {
	db, mock := newMockGorm(t)
	userID := uuid.New()

	req := dto.SaveAssessmentRequest{
		NameBuilding: "Gedung A",
		FinalStatus:  "Renovasi",
		FuzzyScore:   floatPtr(0.42),
		Categories: []dto.CategoryAssessmentData{
			{
				CategoryID:    1,
				CategoryValue: 0.4,
				Subcategories: []dto.SubcategoryAssessmentData{
					{
						SubcategoryID:    2,
						SubcategoryValue: 0.35,
						Items: []dto.ItemAssessmentData{
							{ItemName: "Retak rambut", DamageValue: 0.25},
						},
					},
				},
			},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "buildings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery(`INSERT INTO "assessments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(20))
	mock.ExpectQuery(`INSERT INTO "subcategory_assessments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(30))
	mock.ExpectQuery(`INSERT INTO "items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(40))
	mock.ExpectQuery(`INSERT INTO "item_assessments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(50))
	mock.ExpectCommit()

	buildingID, err := SaveAssessmentTree(db, userID, req)
	require.NoError(t, err)
	assert.Equal(t, uint(10), buildingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAssessmentTreeRollsBackOnFailure(t *testing.T) {
	db, mock := newMockGorm(t)
	userID := uuid.New()

	req := dto.SaveAssessmentRequest{
		NameBuilding: "Gedung B",
		FinalStatus:  "Pemeliharaan",
		FuzzyScore:   floatPtr(0.05),
		Categories: []dto.CategoryAssessmentData{
			{CategoryID: 1, CategoryValue: 0.05},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "buildings"`).
		WillReturnError(errors.New("koneksi putus"))
	mock.ExpectRollback()

	_, err := SaveAssessmentTree(db, userID, req)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Saat baris item sudah ada, ON CONFLICT DO NOTHING tidak mengembalikan id;
// service harus select ulang, bukan membuat duplikat.
func TestFindOrCreateItemExisting(t *testing.T) {
	db, mock := newMockGorm(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT .* FROM "items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "subcategory_id", "name"}).
			AddRow(7, 2, "Retak rambut"))

	item, err := findOrCreateItem(db, 2, "Retak rambut")
	require.NoError(t, err)
	assert.Equal(t, uint(7), item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBuildingTree(t *testing.T) {
	t.Run("milik user", func(t *testing.T) {
		db, mock := newMockGorm(t)
		userID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "buildings"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, DeleteBuildingTree(db, userID, 10))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bukan milik user atau tidak ada", func(t *testing.T) {
		db, mock := newMockGorm(t)
		userID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "buildings"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := DeleteBuildingTree(db, userID, 99)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestResolveDateWindow(t *testing.T) {
	t.Run("day", func(t *testing.T) {
		start, end, err := ResolveDateWindow("2024-03-15", "", "")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 999_000_000, time.UTC), end)
	})

	t.Run("month", func(t *testing.T) {
		start, end, err := ResolveDateWindow("", "2024-03", "")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 999_000_000, time.UTC), end)
	})

	t.Run("bulan kabisat", func(t *testing.T) {
		start, end, err := ResolveDateWindow("", "2024-02", "")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999_000_000, time.UTC), end)
	})

	t.Run("year", func(t *testing.T) {
		start, end, err := ResolveDateWindow("", "", "2023")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2023, 12, 31, 23, 59, 59, 999_000_000, time.UTC), end)
	})

	t.Run("day menang atas month dan year", func(t *testing.T) {
		start, _, err := ResolveDateWindow("2024-03-15", "2020-01", "1999")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("awal bulan masuk jendela", func(t *testing.T) {
		start, end, err := ResolveDateWindow("", "2024-03", "")
		require.NoError(t, err)
		created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		assert.False(t, created.Before(start))
		assert.False(t, created.After(end))
	})

	t.Run("tanpa parameter", func(t *testing.T) {
		_, _, err := ResolveDateWindow("", "", "")
		assert.ErrorIs(t, err, ErrInvalidDateFilter)
	})

	t.Run("format salah", func(t *testing.T) {
		for _, args := range [][3]string{
			{"15-03-2024", "", ""},
			{"", "2024/03", ""},
			{"", "", "abcd"},
		} {
			_, _, err := ResolveDateWindow(args[0], args[1], args[2])
			assert.ErrorIs(t, err, ErrInvalidDateFilter)
		}
	})
}
