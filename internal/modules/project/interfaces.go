package project

import (
	"context"
	"mime/multipart"

	"furnistore/internal/domain"
)

// ProjectRepository — only the methods the project service uses
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	GetAll(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id int64) error
}

// UserReader resolves owner references to inline account data.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ImageStore is the external media host.
type ImageStore interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, publicID string) error
}
