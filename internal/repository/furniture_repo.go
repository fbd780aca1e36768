package repository

import (
	"context"
	"encoding/json"

	"furnistore/internal/domain"

	"gorm.io/gorm"
)

type FurnitureRepository struct {
	db *gorm.DB
}

func NewFurnitureRepository(db *gorm.DB) *FurnitureRepository {
	return &FurnitureRepository{db: db}
}

// Sub-items live as a JSON column on the parent row, an embedded-array
// document shape: one read-modify-write per furniture.
type furnitureModel struct {
	ID           int64  `gorm:"column:id;primaryKey"`
	Name         string `gorm:"column:name"`
	SubFurniture string `gorm:"column:sub_furniture;type:text"`
}

func (furnitureModel) TableName() string { return "furniture" }

func toDomainFurniture(m furnitureModel) *domain.Furniture {
	items := []domain.SubFurniture{}
	if m.SubFurniture != "" && m.SubFurniture != "[]" {
		_ = json.Unmarshal([]byte(m.SubFurniture), &items)
	}
	return &domain.Furniture{
		ID:           m.ID,
		Name:         m.Name,
		SubFurniture: items,
	}
}

func toFurnitureModel(f *domain.Furniture) furnitureModel {
	items := f.SubFurniture
	if items == nil {
		items = []domain.SubFurniture{}
	}
	data, _ := json.Marshal(items)
	return furnitureModel{
		ID:           f.ID,
		Name:         f.Name,
		SubFurniture: string(data),
	}
}

func (r *FurnitureRepository) Create(ctx context.Context, f *domain.Furniture) error {
	m := toFurnitureModel(f)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*f = *toDomainFurniture(m)
	return nil
}

func (r *FurnitureRepository) GetAll(ctx context.Context) ([]domain.Furniture, error) {
	var models []furnitureModel
	tx := r.db.WithContext(ctx).Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Furniture, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainFurniture(m))
	}
	return out, nil
}

func (r *FurnitureRepository) GetByID(ctx context.Context, id int64) (*domain.Furniture, error) {
	var m furnitureModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainFurniture(m), nil
}

// Update persists the full row, sub-item collection included.
func (r *FurnitureRepository) Update(ctx context.Context, f *domain.Furniture) error {
	m := toFurnitureModel(f)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *FurnitureRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&furnitureModel{}, id).Error
}
