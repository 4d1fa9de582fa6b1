package reports

import (
	"context"
	"testing"

	"github.com/Domenick1991/airlineops/internal/domain"
	"github.com/Domenick1991/airlineops/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRepairRepository struct {
	mock.Mock
}

func (m *MockRepairRepository) CountPerPlane(ctx context.Context) ([]domain.PlaneRepairCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PlaneRepairCount), args.Error(1)
}

func (m *MockRepairRepository) CountPerYear(ctx context.Context) ([]domain.YearRepairCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.YearRepairCount), args.Error(1)
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) CreateReserved(ctx context.Context, customerID, flightNum int64) (*domain.Reservation, error) {
	args := m.Called(ctx, customerID, flightNum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) CreateWaitlisted(ctx context.Context, customerID, flightNum int64) (*domain.Reservation, error) {
	args := m.Called(ctx, customerID, flightNum)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) CountByStatus(ctx context.Context, flightNum int64, status domain.ReservationStatus) (int64, error) {
	args := m.Called(ctx, flightNum, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight, pilotID, planeID int64) error {
	args := m.Called(ctx, flight, pilotID, planeID)
	return args.Error(0)
}

func (m *MockFlightRepository) Exists(ctx context.Context, fnum int64) (bool, error) {
	args := m.Called(ctx, fnum)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlightRepository) Cost(ctx context.Context, fnum int64) (int, error) {
	args := m.Called(ctx, fnum)
	return args.Int(0), args.Error(1)
}

func (m *MockFlightRepository) AvailableSeats(ctx context.Context, fnum int64) (int, error) {
	args := m.Called(ctx, fnum)
	return args.Int(0), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetPlaneRepairs(ctx context.Context) ([]domain.PlaneRepairCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlaneRepairCount), args.Error(1)
}

func (m *MockCache) SetPlaneRepairs(ctx context.Context, counts []domain.PlaneRepairCount) error {
	args := m.Called(ctx, counts)
	return args.Error(0)
}

func (m *MockCache) GetYearRepairs(ctx context.Context) ([]domain.YearRepairCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.YearRepairCount), args.Error(1)
}

func (m *MockCache) SetYearRepairs(ctx context.Context, counts []domain.YearRepairCount) error {
	args := m.Called(ctx, counts)
	return args.Error(0)
}

func TestReportService_RepairsPerPlane_CacheMiss(t *testing.T) {
	repairs := &MockRepairRepository{}
	cache := &MockCache{}

	counts := []domain.PlaneRepairCount{{PlaneID: 2, Repairs: 9}, {PlaneID: 1, Repairs: 4}}
	cache.On("GetPlaneRepairs", mock.Anything).Return(nil, nil)
	repairs.On("CountPerPlane", mock.Anything).Return(counts, nil)
	cache.On("SetPlaneRepairs", mock.Anything, counts).Return(nil)

	svc := NewReportService(repairs, &MockReservationRepository{}, &MockFlightRepository{}, cache)

	got, err := svc.RepairsPerPlane(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, counts, got)
	cache.AssertCalled(t, "SetPlaneRepairs", mock.Anything, counts)
}

func TestReportService_RepairsPerPlane_CacheHit(t *testing.T) {
	repairs := &MockRepairRepository{}
	cache := &MockCache{}

	counts := []domain.PlaneRepairCount{{PlaneID: 2, Repairs: 9}}
	cache.On("GetPlaneRepairs", mock.Anything).Return(counts, nil)

	svc := NewReportService(repairs, &MockReservationRepository{}, &MockFlightRepository{}, cache)

	got, err := svc.RepairsPerPlane(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, counts, got)
	repairs.AssertNotCalled(t, "CountPerPlane", mock.Anything)
}

func TestReportService_RepairsPerYear_NoCache(t *testing.T) {
	repairs := &MockRepairRepository{}

	counts := []domain.YearRepairCount{{Year: 2021, Repairs: 2}, {Year: 2023, Repairs: 7}}
	repairs.On("CountPerYear", mock.Anything).Return(counts, nil)

	svc := NewReportService(repairs, &MockReservationRepository{}, &MockFlightRepository{}, nil)

	got, err := svc.RepairsPerYear(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, counts, got)
}

func TestReportService_PassengerCountByStatus(t *testing.T) {
	reservations := &MockReservationRepository{}
	reservations.On("CountByStatus", mock.Anything, int64(7), domain.ReservationStatusWaitlisted).Return(int64(1), nil)

	svc := NewReportService(&MockRepairRepository{}, reservations, &MockFlightRepository{}, nil)

	count, err := svc.PassengerCountByStatus(context.Background(), 7, domain.ReservationStatusWaitlisted)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestReportService_AvailableSeats(t *testing.T) {
	flights := &MockFlightRepository{}
	flights.On("AvailableSeats", mock.Anything, int64(7)).Return(12, nil)
	flights.On("AvailableSeats", mock.Anything, int64(99)).Return(0, repository.ErrNotFound)

	svc := NewReportService(&MockRepairRepository{}, &MockReservationRepository{}, flights, nil)

	available, err := svc.AvailableSeats(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, 12, available)

	_, err = svc.AvailableSeats(context.Background(), 99)
	assert.ErrorIs(t, err, ErrFlightNotFound)
}
