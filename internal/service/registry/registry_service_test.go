package registry

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airlineops/internal/domain"
	"github.com/Domenick1991/airlineops/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPlaneRepository struct {
	mock.Mock
}

func (m *MockPlaneRepository) Create(ctx context.Context, plane *domain.Plane) error {
	args := m.Called(ctx, plane)
	return args.Error(0)
}

func (m *MockPlaneRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaneRepository) SeatCapacity(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type MockPilotRepository struct {
	mock.Mock
}

func (m *MockPilotRepository) Create(ctx context.Context, pilot *domain.Pilot) error {
	args := m.Called(ctx, pilot)
	return args.Error(0)
}

func (m *MockPilotRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockTechnicianRepository struct {
	mock.Mock
}

func (m *MockTechnicianRepository) Create(ctx context.Context, technician *domain.Technician) error {
	args := m.Called(ctx, technician)
	return args.Error(0)
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

func newService(planes *MockPlaneRepository, pilots *MockPilotRepository, technicians *MockTechnicianRepository, flights *MockFlightRepository) *RegistryService {
	return NewRegistryService(planes, pilots, technicians, flights)
}

func flightInput() AddFlightInput {
	departure, _ := time.Parse("2006-01-02", "2024-06-01")
	arrival, _ := time.Parse("2006-01-02", "2024-06-02")
	return AddFlightInput{
		Cost:             300,
		NumSold:          10,
		NumStops:         1,
		DepartureDate:    departure,
		ArrivalDate:      arrival,
		ArrivalAirport:   "KLAX5",
		DepartureAirport: "KJFK5",
		PilotID:          3,
		PlaneID:          5,
	}
}

func TestRegistryService_AddPlane(t *testing.T) {
	planes := &MockPlaneRepository{}
	planes.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Plane).ID = 5
	}).Return(nil)

	svc := newService(planes, &MockPilotRepository{}, &MockTechnicianRepository{}, &MockFlightRepository{})

	plane, err := svc.AddPlane(context.Background(), AddPlaneInput{Make: "Boeing", Model: "737", AgeYears: 4, Seats: 180})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), plane.ID)
	assert.Equal(t, 180, plane.Seats)
}

func TestRegistryService_AddPilot(t *testing.T) {
	pilots := &MockPilotRepository{}
	pilots.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Pilot).ID = 3
	}).Return(nil)

	svc := newService(&MockPlaneRepository{}, pilots, &MockTechnicianRepository{}, &MockFlightRepository{})

	pilot, err := svc.AddPilot(context.Background(), AddPilotInput{FullName: "Jean Batten", Nationality: "NZ"})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), pilot.ID)
}

func TestRegistryService_AddTechnician(t *testing.T) {
	technicians := &MockTechnicianRepository{}
	technicians.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Technician).ID = 11
	}).Return(nil)

	svc := newService(&MockPlaneRepository{}, &MockPilotRepository{}, technicians, &MockFlightRepository{})

	technician, err := svc.AddTechnician(context.Background(), "Kelly Johnson")
	assert.NoError(t, err)
	assert.Equal(t, int64(11), technician.ID)
}

func TestRegistryService_AddFlight_Success(t *testing.T) {
	planes := &MockPlaneRepository{}
	pilots := &MockPilotRepository{}
	flights := &MockFlightRepository{}

	pilots.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	planes.On("SeatCapacity", mock.Anything, int64(5)).Return(180, nil)
	flights.On("Create", mock.Anything, mock.Anything, int64(3), int64(5)).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Flight).Num = 77
	}).Return(nil)

	svc := newService(planes, pilots, &MockTechnicianRepository{}, flights)

	flight, err := svc.AddFlight(context.Background(), flightInput())
	assert.NoError(t, err)
	assert.Equal(t, int64(77), flight.Num)
	flights.AssertExpectations(t)
}

func TestRegistryService_AddFlight_UnknownPilot(t *testing.T) {
	planes := &MockPlaneRepository{}
	pilots := &MockPilotRepository{}
	flights := &MockFlightRepository{}

	pilots.On("Exists", mock.Anything, int64(3)).Return(false, nil)

	svc := newService(planes, pilots, &MockTechnicianRepository{}, flights)

	_, err := svc.AddFlight(context.Background(), flightInput())
	assert.ErrorIs(t, err, ErrPilotNotFound)
	flights.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRegistryService_AddFlight_UnknownPlane(t *testing.T) {
	planes := &MockPlaneRepository{}
	pilots := &MockPilotRepository{}
	flights := &MockFlightRepository{}

	pilots.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	planes.On("SeatCapacity", mock.Anything, int64(5)).Return(0, repository.ErrNotFound)

	svc := newService(planes, pilots, &MockTechnicianRepository{}, flights)

	_, err := svc.AddFlight(context.Background(), flightInput())
	assert.ErrorIs(t, err, ErrPlaneNotFound)
}

func TestRegistryService_AddFlight_CapacityExceeded(t *testing.T) {
	planes := &MockPlaneRepository{}
	pilots := &MockPilotRepository{}
	flights := &MockFlightRepository{}

	pilots.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	planes.On("SeatCapacity", mock.Anything, int64(5)).Return(5, nil)

	svc := newService(planes, pilots, &MockTechnicianRepository{}, flights)

	input := flightInput()
	input.NumSold = 10

	_, err := svc.AddFlight(context.Background(), input)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	flights.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
