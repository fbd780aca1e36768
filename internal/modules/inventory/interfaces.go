package inventory

import (
	"context"
	"mime/multipart"

	"furnistore/internal/domain"
)

// FurnitureRepository — only the methods the inventory service uses
type FurnitureRepository interface {
	Create(ctx context.Context, f *domain.Furniture) error
	GetAll(ctx context.Context) ([]domain.Furniture, error)
	GetByID(ctx context.Context, id int64) (*domain.Furniture, error)
	Update(ctx context.Context, f *domain.Furniture) error
	Delete(ctx context.Context, id int64) error
}

// ImageStore is the external media host. Upload returns a durable URL;
// Delete takes the public ID derived from that URL.
type ImageStore interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, publicID string) error
}
