package report

import (
	"context"
	"testing"
	"time"

	"furnistore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockReportRepo struct {
	mock.Mock
}

func (m *mockReportRepo) Create(ctx context.Context, rep *domain.FurnitureReport) error {
	args := m.Called(ctx, rep)
	if rep != nil {
		rep.ID = 1
	}
	return args.Error(0)
}

func (m *mockReportRepo) GetByDay(ctx context.Context, day time.Time) (*domain.FurnitureReport, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FurnitureReport), args.Error(1)
}

func (m *mockReportRepo) Update(ctx context.Context, rep *domain.FurnitureReport) error {
	args := m.Called(ctx, rep)
	return args.Error(0)
}

func (m *mockReportRepo) List(ctx context.Context, limit, offset int) ([]domain.FurnitureReport, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.FurnitureReport), args.Get(1).(int64), args.Error(2)
}

type mockInventoryReader struct {
	mock.Mock
}

func (m *mockInventoryReader) GetAll(ctx context.Context) ([]domain.Furniture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Furniture), args.Error(1)
}

// fixedClock pins "today" to 2024-05-01 regardless of wall time.
func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC)
}

var fixedDay = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func sampleInventory() []domain.Furniture {
	return []domain.Furniture{
		{
			ID:   1,
			Name: "Sofa",
			SubFurniture: []domain.SubFurniture{
				{ID: "sub-1", Name: "Cushion", Price: 10, Quantity: 5},
				{ID: "sub-2", Name: "Cover", Price: 25.5, Quantity: 3},
			},
		},
		{ID: 2, Name: "Dining Table"},
	}
}

func TestService_Generate_SnapshotsInventory(t *testing.T) {
	repo := new(mockReportRepo)
	inventory := new(mockInventoryReader)

	repo.On("GetByDay", mock.Anything, fixedDay).Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	inventory.On("GetAll", mock.Anything).Return(sampleInventory(), nil)

	service := NewService(repo, inventory, fixedClock)

	createdBy := int64(7)
	rep, err := service.Generate(context.Background(), &createdBy)

	require.NoError(t, err)
	assert.True(t, rep.Date.Equal(fixedDay))
	require.Len(t, rep.ReportItems, 2)

	first := rep.ReportItems[0]
	assert.Equal(t, int64(1), first.FurnitureID)
	assert.Equal(t, "sub-1", first.SubFurnitureID)
	assert.Equal(t, "Sofa - Cushion", first.ItemName)
	assert.Equal(t, "sub-1", first.ItemNo)
	assert.Equal(t, 5, first.InitialCount)
	assert.Equal(t, 0, first.Sold)
	assert.Equal(t, 5, first.Remaining)

	require.NotNil(t, rep.CreatedBy)
	assert.Equal(t, int64(7), *rep.CreatedBy)

	repo.AssertExpectations(t)
}

func TestService_Generate_ExistingReportReturned(t *testing.T) {
	repo := new(mockReportRepo)
	inventory := new(mockInventoryReader)

	existing := &domain.FurnitureReport{ID: 9, Date: fixedDay}
	repo.On("GetByDay", mock.Anything, fixedDay).Return(existing, nil)

	service := NewService(repo, inventory, fixedClock)

	rep, err := service.Generate(context.Background(), nil)

	assert.ErrorIs(t, err, ErrReportExists)
	assert.Equal(t, existing, rep)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	inventory.AssertNotCalled(t, "GetAll", mock.Anything)
}

func TestService_Generate_DuplicateRaceFallsBackToWinner(t *testing.T) {
	repo := new(mockReportRepo)
	inventory := new(mockInventoryReader)

	winner := &domain.FurnitureReport{ID: 3, Date: fixedDay}
	repo.On("GetByDay", mock.Anything, fixedDay).Return(nil, gorm.ErrRecordNotFound).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
	repo.On("GetByDay", mock.Anything, fixedDay).Return(winner, nil).Once()
	inventory.On("GetAll", mock.Anything).Return(sampleInventory(), nil)

	service := NewService(repo, inventory, fixedClock)

	rep, err := service.Generate(context.Background(), nil)

	assert.ErrorIs(t, err, ErrReportExists)
	assert.Equal(t, winner, rep)
	repo.AssertExpectations(t)
}

func TestService_GetToday_NotFound(t *testing.T) {
	repo := new(mockReportRepo)
	repo.On("GetByDay", mock.Anything, fixedDay).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo, new(mockInventoryReader), fixedClock)

	_, err := service.GetToday(context.Background())

	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestService_GetByDate_InvalidFormat(t *testing.T) {
	service := NewService(new(mockReportRepo), new(mockInventoryReader), fixedClock)

	_, err := service.GetByDate(context.Background(), "01-05-2024")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_UpdateSoldItems_RecomputesRemaining(t *testing.T) {
	repo := new(mockReportRepo)

	today := &domain.FurnitureReport{
		ID:   1,
		Date: fixedDay,
		ReportItems: []domain.ReportItem{
			{SubFurnitureID: "sub-1", ItemName: "Sofa - Cushion", InitialCount: 5, Sold: 0, Remaining: 5},
			{SubFurnitureID: "sub-2", ItemName: "Sofa - Cover", InitialCount: 7, Sold: 1, Remaining: 6},
		},
	}
	repo.On("GetByDay", mock.Anything, fixedDay).Return(today, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, new(mockInventoryReader), fixedClock)

	rep, err := service.UpdateSoldItems(context.Background(), []SoldItemUpdate{
		{SubFurnitureID: "sub-1", SoldQuantity: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, rep.ReportItems[0].Sold)
	assert.Equal(t, 3, rep.ReportItems[0].Remaining)
	// untouched item keeps its counts
	assert.Equal(t, 1, rep.ReportItems[1].Sold)
	assert.Equal(t, 6, rep.ReportItems[1].Remaining)

	repo.AssertNumberOfCalls(t, "Update", 1)
}

func TestService_UpdateSoldItems_RemainingMayGoNegative(t *testing.T) {
	repo := new(mockReportRepo)

	today := &domain.FurnitureReport{
		ID:   1,
		Date: fixedDay,
		ReportItems: []domain.ReportItem{
			{SubFurnitureID: "sub-1", InitialCount: 5, Remaining: 5},
		},
	}
	repo.On("GetByDay", mock.Anything, fixedDay).Return(today, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, new(mockInventoryReader), fixedClock)

	rep, err := service.UpdateSoldItems(context.Background(), []SoldItemUpdate{
		{SubFurnitureID: "sub-1", SoldQuantity: 9},
	})

	require.NoError(t, err)
	assert.Equal(t, 9, rep.ReportItems[0].Sold)
	assert.Equal(t, -4, rep.ReportItems[0].Remaining)
}

func TestService_UpdateSoldItems_NoReportToday(t *testing.T) {
	repo := new(mockReportRepo)
	repo.On("GetByDay", mock.Anything, fixedDay).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo, new(mockInventoryReader), fixedClock)

	_, err := service.UpdateSoldItems(context.Background(), []SoldItemUpdate{
		{SubFurnitureID: "sub-1", SoldQuantity: 1},
	})

	assert.ErrorIs(t, err, ErrReportNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_List_PaginationOffsets(t *testing.T) {
	repo := new(mockReportRepo)
	repo.On("List", mock.Anything, 5, 10).Return([]domain.FurnitureReport{}, int64(23), nil)

	service := NewService(repo, new(mockInventoryReader), fixedClock)

	_, total, err := service.List(context.Background(), 3, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(23), total)
	repo.AssertExpectations(t)
}

func TestService_List_DefaultsPageAndLimit(t *testing.T) {
	repo := new(mockReportRepo)
	repo.On("List", mock.Anything, 10, 0).Return([]domain.FurnitureReport{}, int64(0), nil)

	service := NewService(repo, new(mockInventoryReader), fixedClock)

	_, _, err := service.List(context.Background(), 0, 0)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_AddSignature(t *testing.T) {
	repo := new(mockReportRepo)

	today := &domain.FurnitureReport{ID: 1, Date: fixedDay}
	repo.On("GetByDay", mock.Anything, fixedDay).Return(today, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, new(mockInventoryReader), fixedClock)

	rep, err := service.AddSignature(context.Background(), "J. Smith")

	require.NoError(t, err)
	assert.Equal(t, "J. Smith", rep.Signature)
}

func TestService_AddSignature_NoReportToday(t *testing.T) {
	repo := new(mockReportRepo)
	repo.On("GetByDay", mock.Anything, fixedDay).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo, new(mockInventoryReader), fixedClock)

	_, err := service.AddSignature(context.Background(), "J. Smith")

	assert.ErrorIs(t, err, ErrReportNotFound)
}
