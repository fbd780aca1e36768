package repository

import (
	"context"
	"time"

	"furnistore/internal/domain"
	"furnistore/internal/pkg/utils"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type projectModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ProjectID   string    `gorm:"column:project_id"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	OwnerID     int64     `gorm:"column:owner_id"`
	Images      string    `gorm:"column:images;type:text"`
	Note        string    `gorm:"column:note"`
	Duration    string    `gorm:"column:duration"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (projectModel) TableName() string { return "projects" }

func toDomainProject(m projectModel) *domain.Project {
	return &domain.Project{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Name:        m.Name,
		Description: m.Description,
		OwnerID:     m.OwnerID,
		Images:      utils.StringToImages(m.Images),
		Note:        m.Note,
		Duration:    m.Duration,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toProjectModel(p *domain.Project) projectModel {
	return projectModel{
		ID:          p.ID,
		ProjectID:   p.ProjectID,
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		Images:      utils.ImagesToString(p.Images),
		Note:        p.Note,
		Duration:    p.Duration,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	m := toProjectModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProject(m)
	return nil
}

func (r *ProjectRepository) GetAll(ctx context.Context) ([]domain.Project, error) {
	var models []projectModel
	tx := r.db.WithContext(ctx).Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Project, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainProject(m))
	}
	return out, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var m projectModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProject(m), nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	tx := r.db.WithContext(ctx).Model(&projectModel{}).Count(&total)
	return total, tx.Error
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	m := toProjectModel(p)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&projectModel{}, id).Error
}
