package local

import "errors"

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType = errors.New("file type is not allowed")
	ErrInvalidPublicID = errors.New("invalid public id")
	ErrImageNotFound   = errors.New("image not found")
)
