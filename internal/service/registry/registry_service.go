package registry

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/airlineops/internal/domain"
	"github.com/Domenick1991/airlineops/internal/repository"
)

var (
	ErrPilotNotFound    = errors.New("pilot not found")
	ErrPlaneNotFound    = errors.New("plane not found")
	ErrCapacityExceeded = errors.New("seats sold exceeds plane capacity")
)

type RegistryUseCase interface {
	AddPlane(ctx context.Context, input AddPlaneInput) (*domain.Plane, error)
	AddPilot(ctx context.Context, input AddPilotInput) (*domain.Pilot, error)
	AddTechnician(ctx context.Context, fullName string) (*domain.Technician, error)
	AddFlight(ctx context.Context, input AddFlightInput) (*domain.Flight, error)
	PilotExists(ctx context.Context, id int64) (bool, error)
	PlaneExists(ctx context.Context, id int64) (bool, error)
	PlaneSeatCapacity(ctx context.Context, id int64) (int, error)
}

type AddPlaneInput struct {
	Make     string
	Model    string
	AgeYears int
	Seats    int
}

type AddPilotInput struct {
	FullName    string
	Nationality string
}

type AddFlightInput struct {
	Cost             int
	NumSold          int
	NumStops         int
	DepartureDate    time.Time
	ArrivalDate      time.Time
	ArrivalAirport   string
	DepartureAirport string
	PilotID          int64
	PlaneID          int64
}

type RegistryService struct {
	planes      repository.PlaneRepository
	pilots      repository.PilotRepository
	technicians repository.TechnicianRepository
	flights     repository.FlightRepository
}

func NewRegistryService(
	planes repository.PlaneRepository,
	pilots repository.PilotRepository,
	technicians repository.TechnicianRepository,
	flights repository.FlightRepository,
) *RegistryService {
	return &RegistryService{
		planes:      planes,
		pilots:      pilots,
		technicians: technicians,
		flights:     flights,
	}
}

func (s *RegistryService) AddPlane(ctx context.Context, input AddPlaneInput) (*domain.Plane, error) {
	plane := &domain.Plane{
		Make:     input.Make,
		Model:    input.Model,
		AgeYears: input.AgeYears,
		Seats:    input.Seats,
	}
	if err := s.planes.Create(ctx, plane); err != nil {
		return nil, err
	}
	return plane, nil
}

func (s *RegistryService) AddPilot(ctx context.Context, input AddPilotInput) (*domain.Pilot, error) {
	pilot := &domain.Pilot{
		FullName:    input.FullName,
		Nationality: input.Nationality,
	}
	if err := s.pilots.Create(ctx, pilot); err != nil {
		return nil, err
	}
	return pilot, nil
}

func (s *RegistryService) AddTechnician(ctx context.Context, fullName string) (*domain.Technician, error) {
	technician := &domain.Technician{FullName: fullName}
	if err := s.technicians.Create(ctx, technician); err != nil {
		return nil, err
	}
	return technician, nil
}

// AddFlight verifies the referenced pilot and plane exist and that the
// pre-sold seat count fits the plane before persisting the flight and its
// flightinfo binding.
func (s *RegistryService) AddFlight(ctx context.Context, input AddFlightInput) (*domain.Flight, error) {
	pilotExists, err := s.pilots.Exists(ctx, input.PilotID)
	if err != nil {
		return nil, err
	}
	if !pilotExists {
		return nil, ErrPilotNotFound
	}

	seats, err := s.planes.SeatCapacity(ctx, input.PlaneID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlaneNotFound
		}
		return nil, err
	}
	if seats < input.NumSold {
		return nil, ErrCapacityExceeded
	}

	flight := &domain.Flight{
		Cost:             input.Cost,
		NumSold:          input.NumSold,
		NumStops:         input.NumStops,
		DepartureDate:    input.DepartureDate,
		ArrivalDate:      input.ArrivalDate,
		ArrivalAirport:   input.ArrivalAirport,
		DepartureAirport: input.DepartureAirport,
	}
	if err := s.flights.Create(ctx, flight, input.PilotID, input.PlaneID); err != nil {
		return nil, err
	}
	return flight, nil
}

func (s *RegistryService) PilotExists(ctx context.Context, id int64) (bool, error) {
	return s.pilots.Exists(ctx, id)
}

func (s *RegistryService) PlaneExists(ctx context.Context, id int64) (bool, error) {
	return s.planes.Exists(ctx, id)
}

func (s *RegistryService) PlaneSeatCapacity(ctx context.Context, id int64) (int, error) {
	seats, err := s.planes.SeatCapacity(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrPlaneNotFound
		}
		return 0, err
	}
	return seats, nil
}

var _ RegistryUseCase = (*RegistryService)(nil)
