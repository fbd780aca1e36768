package inventory

type CreateFurnitureRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateFurnitureRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddSubFurnitureRequest arrives as a multipart form alongside the image file.
// Price and Quantity are pointers so an explicit zero passes `required`.
type AddSubFurnitureRequest struct {
	Name     string   `form:"subFurnitureName" binding:"required"`
	Price    *float64 `form:"subFurniturePrice" binding:"required,gte=0"`
	Quantity *int     `form:"subFurnitureQuantity" binding:"required,gte=0"`
}

// UpdateSubFurnitureRequest carries partial-update semantics: nil fields keep
// their prior value.
type UpdateSubFurnitureRequest struct {
	Name     *string  `form:"subFurnitureName" json:"subFurnitureName"`
	Price    *float64 `form:"subFurniturePrice" json:"subFurniturePrice" binding:"omitempty,gte=0"`
	Quantity *int     `form:"subFurnitureQuantity" json:"subFurnitureQuantity" binding:"omitempty,gte=0"`
}
