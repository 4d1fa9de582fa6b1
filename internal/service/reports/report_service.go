package reports

import (
	"context"
	"errors"

	"github.com/Domenick1991/airlineops/internal/domain"
	"github.com/Domenick1991/airlineops/internal/repository"
)

var ErrFlightNotFound = errors.New("flight not found")

type ReportUseCase interface {
	RepairsPerPlane(ctx context.Context) ([]domain.PlaneRepairCount, error)
	RepairsPerYear(ctx context.Context) ([]domain.YearRepairCount, error)
	PassengerCountByStatus(ctx context.Context, flightNum int64, status domain.ReservationStatus) (int64, error)
	AvailableSeats(ctx context.Context, flightNum int64) (int, error)
	FlightExists(ctx context.Context, flightNum int64) (bool, error)
}

type Cache interface {
	GetPlaneRepairs(ctx context.Context) ([]domain.PlaneRepairCount, error)
	SetPlaneRepairs(ctx context.Context, counts []domain.PlaneRepairCount) error
	GetYearRepairs(ctx context.Context) ([]domain.YearRepairCount, error)
	SetYearRepairs(ctx context.Context, counts []domain.YearRepairCount) error
}

type ReportService struct {
	repairs      repository.RepairRepository
	reservations repository.ReservationRepository
	flights      repository.FlightRepository
	cache        Cache
}

func NewReportService(
	repairs repository.RepairRepository,
	reservations repository.ReservationRepository,
	flights repository.FlightRepository,
	cache Cache,
) *ReportService {
	return &ReportService{
		repairs:      repairs,
		reservations: reservations,
		flights:      flights,
		cache:        cache,
	}
}

func (s *ReportService) RepairsPerPlane(ctx context.Context) ([]domain.PlaneRepairCount, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetPlaneRepairs(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	counts, err := s.repairs.CountPerPlane(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetPlaneRepairs(ctx, counts)
	}
	return counts, nil
}

func (s *ReportService) RepairsPerYear(ctx context.Context) ([]domain.YearRepairCount, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetYearRepairs(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	counts, err := s.repairs.CountPerYear(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetYearRepairs(ctx, counts)
	}
	return counts, nil
}

func (s *ReportService) PassengerCountByStatus(ctx context.Context, flightNum int64, status domain.ReservationStatus) (int64, error) {
	return s.reservations.CountByStatus(ctx, flightNum, status)
}

// AvailableSeats reads capacity minus sold seats straight from the store;
// report freshness matters more than latency here, so it bypasses the cache.
func (s *ReportService) AvailableSeats(ctx context.Context, flightNum int64) (int, error) {
	available, err := s.flights.AvailableSeats(ctx, flightNum)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrFlightNotFound
		}
		return 0, err
	}
	return available, nil
}

func (s *ReportService) FlightExists(ctx context.Context, flightNum int64) (bool, error) {
	return s.flights.Exists(ctx, flightNum)
}

var _ ReportUseCase = (*ReportService)(nil)
