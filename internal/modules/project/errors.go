package project

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrProjectNotFound = errors.New("project not found")
	ErrForbidden       = errors.New("you do not own this project")
	ErrImageLimit      = errors.New("project cannot hold more than 5 images")
	ErrImageNotFound   = errors.New("image not found on project")
)
