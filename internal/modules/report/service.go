package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"furnistore/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Service snapshots the furniture inventory into one immutable-per-day report
// and tracks sold-vs-remaining counts against it. The clock is injected so
// "today" is a pure function of it.
type Service struct {
	reports   ReportRepository
	inventory InventoryReader
	now       func() time.Time
}

func NewService(reports ReportRepository, inventory InventoryReader, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		reports:   reports,
		inventory: inventory,
		now:       now,
	}
}

// Generate creates today's report from the current inventory. If a report for
// today already exists it is returned alongside ErrReportExists, making the
// operation idempotent per calendar day: callers get the existing snapshot,
// never a duplicate.
func (s *Service) Generate(ctx context.Context, createdBy *int64) (*domain.FurnitureReport, error) {
	day := domain.TruncateToDay(s.now())

	existing, err := s.reports.GetByDay(ctx, day)
	if err == nil {
		return existing, ErrReportExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	allFurniture, err := s.inventory.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ReportItem, 0)
	for _, f := range allFurniture {
		for _, sub := range f.SubFurniture {
			items = append(items, domain.ReportItem{
				FurnitureID:    f.ID,
				SubFurnitureID: sub.ID,
				ItemName:       fmt.Sprintf("%s - %s", f.Name, sub.Name),
				ItemNo:         sub.ID,
				InitialCount:   sub.Quantity,
				Sold:           0,
				Remaining:      sub.Quantity,
			})
		}
	}

	rep := &domain.FurnitureReport{
		Date:        day,
		ReportItems: items,
		CreatedBy:   createdBy,
	}

	if err := s.reports.Create(ctx, rep); err != nil {
		// Lost the race on the unique day key: surface the winner's report.
		if isDuplicateKey(err) {
			if existing, getErr := s.reports.GetByDay(ctx, day); getErr == nil {
				return existing, ErrReportExists
			}
		}
		return nil, err
	}

	return rep, nil
}

func (s *Service) GetToday(ctx context.Context) (*domain.FurnitureReport, error) {
	return s.getByDay(ctx, domain.TruncateToDay(s.now()))
}

func (s *Service) GetByDate(ctx context.Context, dateStr string) (*domain.FurnitureReport, error) {
	day, err := time.ParseInLocation(domain.DayKeyLayout, dateStr, time.UTC)
	if err != nil {
		return nil, ErrValidation
	}
	return s.getByDay(ctx, day)
}

// UpdateSoldItems applies a batch of sold-quantity updates to today's report
// and persists them as a single document write. For each update the matching
// item gets sold = soldQuantity and remaining = initialCount - soldQuantity;
// remaining is not clamped and may go negative. Items without a matching
// update are left unchanged.
func (s *Service) UpdateSoldItems(ctx context.Context, updates []SoldItemUpdate) (*domain.FurnitureReport, error) {
	rep, err := s.GetToday(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range updates {
		for i := range rep.ReportItems {
			if rep.ReportItems[i].SubFurnitureID == u.SubFurnitureID {
				rep.ReportItems[i].Sold = u.SoldQuantity
				rep.ReportItems[i].Remaining = rep.ReportItems[i].InitialCount - u.SoldQuantity
				break
			}
		}
	}

	if err := s.reports.Update(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *Service) List(ctx context.Context, page, limit int) ([]domain.FurnitureReport, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return s.reports.List(ctx, limit, (page-1)*limit)
}

// AddSignature signs today's report.
func (s *Service) AddSignature(ctx context.Context, signature string) (*domain.FurnitureReport, error) {
	rep, err := s.GetToday(ctx)
	if err != nil {
		return nil, err
	}

	rep.Signature = signature
	if err := s.reports.Update(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *Service) getByDay(ctx context.Context, day time.Time) (*domain.FurnitureReport, error) {
	rep, err := s.reports.GetByDay(ctx, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return rep, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
