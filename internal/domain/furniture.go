package domain

// SubFurniture is an inventory line embedded in exactly one Furniture.
// IDs are generated at creation time and never reused.
type SubFurniture struct {
	ID       string  `json:"subFurnitureID"`
	Name     string  `json:"subFurnitureName"`
	Image    string  `json:"subFurnitureImage"`
	Price    float64 `json:"subFurniturePrice"`
	Quantity int     `json:"subFurnitureQuantity"`
}

// Furniture owns its sub-item collection; order is insertion order.
type Furniture struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	SubFurniture []SubFurniture `json:"subFurniture"`
}

// FindSubFurniture returns the index of the sub-item with the given ID, or -1.
func (f *Furniture) FindSubFurniture(subID string) int {
	for i := range f.SubFurniture {
		if f.SubFurniture[i].ID == subID {
			return i
		}
	}
	return -1
}
