package inventory

import "errors"

var (
	ErrValidation           = errors.New("validation error")
	ErrFurnitureNotFound    = errors.New("furniture not found")
	ErrSubFurnitureNotFound = errors.New("subfurniture not found")
	ErrImageRequired        = errors.New("image is required")
)
