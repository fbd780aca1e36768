package report

type SoldItemUpdate struct {
	SubFurnitureID string `json:"subFurnitureId" validate:"required"`
	SoldQuantity   int    `json:"soldQuantity" validate:"gte=0"`
}

type UpdateSoldItemsRequest struct {
	ItemUpdates []SoldItemUpdate `json:"itemUpdates" validate:"required,min=1,dive"`
}

type AddSignatureRequest struct {
	Signature string `json:"signature" validate:"required"`
}
