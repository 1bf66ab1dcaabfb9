package dto

type CreateCategoryRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"displayOrder"`
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"displayOrder"`
}

type CreateSubcategoryRequest struct {
	Name         string  `json:"name" validate:"required"`
	CategoryID   uint    `json:"categoryId" validate:"required"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"displayOrder"`
}

type UpdateSubcategoryRequest struct {
	Name         *string `json:"name"`
	CategoryID   *uint   `json:"categoryId"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"displayOrder"`
}
