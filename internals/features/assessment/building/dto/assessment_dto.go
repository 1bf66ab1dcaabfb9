package dto

import (
	"time"

	buildingModel "gedungku_backend/internals/features/assessment/building/model"
)

/* ===============================
   Request (dari Flutter app)
=================================*/

type SaveAssessmentRequest struct {
	NameBuilding string                   `json:"nameBuilding"`
	FinalStatus  string                   `json:"finalStatus" validate:"omitempty,oneof=Pemeliharaan Renovasi Pembongkaran"`
	FuzzyScore   *float64                 `json:"fuzzyScore"` // pointer: angka 0 tetap dianggap terisi
	Categories   []CategoryAssessmentData `json:"categories"`
}

type CategoryAssessmentData struct {
	CategoryID    uint                        `json:"categoryId"`
	CategoryValue float64                     `json:"categoryValue"`
	Subcategories []SubcategoryAssessmentData `json:"subcategories"`
}

type SubcategoryAssessmentData struct {
	SubcategoryID    uint                 `json:"subcategoryId"`
	SubcategoryValue float64              `json:"subcategoryValue"`
	Items            []ItemAssessmentData `json:"items"`
}

type ItemAssessmentData struct {
	ItemName    string  `json:"itemName"`
	DamageValue float64 `json:"damageValue"`
	Condition   string  `json:"condition"` // opsional; kalau kosong server yang menentukan
	Notes       *string `json:"notes"`
}

/* ===============================
   Response (pohon denormalisasi)
=================================*/

type BuildingAssessmentResponse struct {
	ID           uint               `json:"id"`
	NameBuilding string             `json:"nameBuilding"`
	FinalStatus  string             `json:"finalStatus"`
	FuzzyScore   *float64           `json:"fuzzyScore"`
	CreatedAt    string             `json:"createdAt"`
	UpdatedAt    string             `json:"updatedAt"`
	Categories   []CategoryResponse `json:"categories"`
}

type CategoryResponse struct {
	ID            uint                  `json:"id"`
	Name          string                `json:"name"`
	Description   *string               `json:"description"`
	CategoryValue float64               `json:"categoryValue"`
	DisplayOrder  int                   `json:"displayOrder"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

type SubcategoryResponse struct {
	ID               uint           `json:"id"`
	Name             string         `json:"name"`
	Description      *string        `json:"description"`
	SubcategoryValue float64        `json:"subcategoryValue"`
	DisplayOrder     int            `json:"displayOrder"`
	Items            []ItemResponse `json:"items"`
}

type ItemResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	DamageValue float64 `json:"damageValue"`
	Condition   string  `json:"condition"`
	Notes       *string `json:"notes"`
	CreatedAt   string  `json:"createdAt"`
}

/* ===============================
   Transform entity graph → response
=================================*/

// ToBuildingResponse membentuk pohon response dari entity graph hasil preload.
// Dipakai bersama oleh create, get by id, list, search, dan filter tanggal.
func ToBuildingResponse(b buildingModel.BuildingModel) BuildingAssessmentResponse {
	resp := BuildingAssessmentResponse{
		ID:           b.ID,
		NameBuilding: b.NameBuilding,
		FinalStatus:  b.FinalStatus,
		FuzzyScore:   b.FuzzyScore,
		CreatedAt:    b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    b.UpdatedAt.UTC().Format(time.RFC3339Nano),
		Categories:   make([]CategoryResponse, 0, len(b.Assessments)),
	}

	for _, assessment := range b.Assessments {
		cat := CategoryResponse{
			ID:            assessment.CategoryID,
			CategoryValue: assessment.CategoryValue,
			Subcategories: make([]SubcategoryResponse, 0, len(assessment.SubcategoryAssessments)),
		}
		if assessment.Category != nil {
			cat.Name = assessment.Category.Name
			cat.Description = assessment.Category.Description
			cat.DisplayOrder = assessment.Category.DisplayOrder
		}

		for _, subAssessment := range assessment.SubcategoryAssessments {
			sub := SubcategoryResponse{
				ID:               subAssessment.SubcategoryID,
				SubcategoryValue: subAssessment.SubcategoryValue,
				Items:            make([]ItemResponse, 0, len(subAssessment.ItemAssessments)),
			}
			if subAssessment.Subcategory != nil {
				sub.Name = subAssessment.Subcategory.Name
				sub.Description = subAssessment.Subcategory.Description
				sub.DisplayOrder = subAssessment.Subcategory.DisplayOrder
			}

			for _, itemAssessment := range subAssessment.ItemAssessments {
				item := ItemResponse{
					ID:          itemAssessment.ItemID,
					DamageValue: itemAssessment.DamageValue,
					Condition:   itemAssessment.Condition,
					Notes:       itemAssessment.Notes,
					CreatedAt:   itemAssessment.CreatedAt.UTC().Format(time.RFC3339Nano),
				}
				if itemAssessment.Item != nil {
					item.Name = itemAssessment.Item.Name
				}
				sub.Items = append(sub.Items, item)
			}
			cat.Subcategories = append(cat.Subcategories, sub)
		}
		resp.Categories = append(resp.Categories, cat)
	}

	return resp
}

func ToBuildingResponses(buildings []buildingModel.BuildingModel) []BuildingAssessmentResponse {
	out := make([]BuildingAssessmentResponse, 0, len(buildings))
	for _, b := range buildings {
		out = append(out, ToBuildingResponse(b))
	}
	return out
}
