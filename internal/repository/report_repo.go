package repository

import (
	"context"
	"encoding/json"
	"time"

	"furnistore/internal/domain"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// The day key is stored as a YYYY-MM-DD string with a unique index: the
// database, not the application, is what enforces one report per day.
type reportModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	Date        string `gorm:"column:date;uniqueIndex"`
	ReportItems string `gorm:"column:report_items;type:text"`
	Signature   string `gorm:"column:signature"`
	CreatedBy   *int64 `gorm:"column:created_by"`
}

func (reportModel) TableName() string { return "furniture_reports" }

func toDomainReport(m reportModel) *domain.FurnitureReport {
	items := []domain.ReportItem{}
	if m.ReportItems != "" && m.ReportItems != "[]" {
		_ = json.Unmarshal([]byte(m.ReportItems), &items)
	}
	date, _ := time.ParseInLocation(domain.DayKeyLayout, m.Date, time.UTC)
	return &domain.FurnitureReport{
		ID:          m.ID,
		Date:        date,
		ReportItems: items,
		Signature:   m.Signature,
		CreatedBy:   m.CreatedBy,
	}
}

func toReportModel(rep *domain.FurnitureReport) reportModel {
	items := rep.ReportItems
	if items == nil {
		items = []domain.ReportItem{}
	}
	data, _ := json.Marshal(items)
	return reportModel{
		ID:          rep.ID,
		Date:        rep.Date.Format(domain.DayKeyLayout),
		ReportItems: string(data),
		Signature:   rep.Signature,
		CreatedBy:   rep.CreatedBy,
	}
}

func (r *ReportRepository) Create(ctx context.Context, rep *domain.FurnitureReport) error {
	m := toReportModel(rep)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rep = *toDomainReport(m)
	return nil
}

func (r *ReportRepository) GetByDay(ctx context.Context, day time.Time) (*domain.FurnitureReport, error) {
	var m reportModel
	tx := r.db.WithContext(ctx).
		Where("date = ?", day.Format(domain.DayKeyLayout)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReport(m), nil
}

// Update writes the whole report document in one statement: sold-item batches
// land atomically.
func (r *ReportRepository) Update(ctx context.Context, rep *domain.FurnitureReport) error {
	m := toReportModel(rep)
	return r.db.WithContext(ctx).Save(&m).Error
}

// List returns reports newest-day-first with skip/limit, plus the total count
// for page computation.
func (r *ReportRepository) List(ctx context.Context, limit, offset int) ([]domain.FurnitureReport, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&reportModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []reportModel
	tx := r.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Offset(offset).
		Find(&models)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.FurnitureReport, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainReport(m))
	}
	return out, total, nil
}
