package report

import (
	"context"
	"time"

	"furnistore/internal/domain"
)

// ReportRepository — only the methods the report service uses
type ReportRepository interface {
	Create(ctx context.Context, rep *domain.FurnitureReport) error
	GetByDay(ctx context.Context, day time.Time) (*domain.FurnitureReport, error)
	Update(ctx context.Context, rep *domain.FurnitureReport) error
	List(ctx context.Context, limit, offset int) ([]domain.FurnitureReport, int64, error)
}

// InventoryReader is the read-only view of the furniture inventory that
// snapshots are taken from.
type InventoryReader interface {
	GetAll(ctx context.Context) ([]domain.Furniture, error)
}
