package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	buildingModel "gedungku_backend/internals/features/assessment/building/model"
	masterModel "gedungku_backend/internals/features/assessment/master/model"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }

func TestToBuildingResponse(t *testing.T) {
	createdAt := time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC)

	building := buildingModel.BuildingModel{
		ID:           10,
		NameBuilding: "Gedung Rektorat",
		FinalStatus:  buildingModel.FinalStatusRenovasi,
		FuzzyScore:   f64Ptr(0.42),
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
		Assessments: []buildingModel.AssessmentModel{
			{
				ID:            20,
				CategoryID:    1,
				CategoryValue: 0.4,
				Category: &masterModel.CategoryModel{
					ID:           1,
					Name:         "Struktural",
					Description:  strPtr("Komponen struktur bangunan"),
					DisplayOrder: 1,
				},
				SubcategoryAssessments: []buildingModel.SubcategoryAssessmentModel{
					{
						ID:               30,
						SubcategoryID:    2,
						SubcategoryValue: 0.35,
						Subcategory: &masterModel.SubcategoryModel{
							ID:           2,
							Name:         "Kolom",
							DisplayOrder: 1,
						},
						ItemAssessments: []buildingModel.ItemAssessmentModel{
							{
								ID:          40,
								ItemID:      7,
								DamageValue: 0.25,
								Condition:   "Rusak Ringan",
								Notes:       strPtr("retak rambut di sisi utara"),
								CreatedAt:   createdAt,
								Item:        &masterModel.ItemModel{ID: 7, Name: "Retak"},
							},
							{
								ID:          41,
								ItemID:      8,
								DamageValue: 0.05,
								Condition:   "Baik",
								Item:        &masterModel.ItemModel{ID: 8, Name: "Selimut beton"},
							},
						},
					},
				},
			},
			{
				ID:            21,
				CategoryID:    3,
				CategoryValue: 0.1,
				Category: &masterModel.CategoryModel{
					ID:           3,
					Name:         "Utilitas",
					DisplayOrder: 3,
				},
			},
		},
	}

	resp := ToBuildingResponse(building)

	assert.Equal(t, uint(10), resp.ID)
	assert.Equal(t, "Gedung Rektorat", resp.NameBuilding)
	assert.Equal(t, "Renovasi", resp.FinalStatus)
	require.NotNil(t, resp.FuzzyScore)
	assert.Equal(t, 0.42, *resp.FuzzyScore)
	assert.Equal(t, createdAt.Format(time.RFC3339Nano), resp.CreatedAt)

	// jumlah node per level tidak berubah
	require.Len(t, resp.Categories, 2)
	require.Len(t, resp.Categories[0].Subcategories, 1)
	require.Len(t, resp.Categories[0].Subcategories[0].Items, 2)
	assert.Empty(t, resp.Categories[1].Subcategories)

	cat := resp.Categories[0]
	assert.Equal(t, uint(1), cat.ID)
	assert.Equal(t, "Struktural", cat.Name)
	assert.Equal(t, 1, cat.DisplayOrder)
	assert.Equal(t, 0.4, cat.CategoryValue)

	sub := cat.Subcategories[0]
	assert.Equal(t, uint(2), sub.ID)
	assert.Equal(t, "Kolom", sub.Name)
	assert.Equal(t, 0.35, sub.SubcategoryValue)

	item := sub.Items[0]
	assert.Equal(t, uint(7), item.ID)
	assert.Equal(t, "Retak", item.Name)
	assert.Equal(t, 0.25, item.DamageValue)
	assert.Equal(t, "Rusak Ringan", item.Condition)
	require.NotNil(t, item.Notes)
	assert.Equal(t, "retak rambut di sisi utara", *item.Notes)
}

func TestToBuildingResponseEmptyTree(t *testing.T) {
	resp := ToBuildingResponse(buildingModel.BuildingModel{ID: 1, NameBuilding: "Kosong"})

	// slice kosong, bukan null, supaya JSON konsisten untuk klien
	assert.NotNil(t, resp.Categories)
	assert.Empty(t, resp.Categories)
	assert.Nil(t, resp.FuzzyScore)
}

func TestToBuildingResponses(t *testing.T) {
	out := ToBuildingResponses([]buildingModel.BuildingModel{{ID: 1}, {ID: 2}})
	require.Len(t, out, 2)
	assert.Equal(t, uint(1), out[0].ID)
	assert.Equal(t, uint(2), out[1].ID)

	assert.NotNil(t, ToBuildingResponses(nil))
	assert.Empty(t, ToBuildingResponses(nil))
}
