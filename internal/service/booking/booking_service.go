package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Domenick1991/airlineops/internal/domain"
	"github.com/Domenick1991/airlineops/internal/kafka"
	"github.com/Domenick1991/airlineops/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrFlightNotFound   = errors.New("flight not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrBookingDeclined  = errors.New("booking declined")
)

type BookingUseCase interface {
	LookupCustomer(ctx context.Context, id int64) (bool, error)
	RegisterGuest(ctx context.Context, input GuestInput) (*domain.Customer, error)
	FlightCost(ctx context.Context, flightNum int64) (int, error)
	AvailableSeats(ctx context.Context, flightNum int64) (int, error)
	Book(ctx context.Context, input BookInput) (*domain.Reservation, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// ConfirmFunc asks the operator whether to take one of the available seats.
type ConfirmFunc func(available int) (bool, error)

type BookInput struct {
	FlightNum  int64
	CustomerID int64
	Confirm    ConfirmFunc
}

type GuestInput struct {
	FirstName string
	LastName  string
	Gender    domain.Gender
	BirthDate time.Time
	Address   string
	Phone     string
	Zipcode   string
}

type BookingService struct {
	reservations repository.ReservationRepository
	customers    repository.CustomerRepository
	flights      repository.FlightRepository
	producer     Producer
	eventsTopic  string
	auditTopic   string
}

type BookingServiceOption func(*BookingService)

func WithAuditTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.auditTopic = topic
	}
}

func NewBookingService(
	reservations repository.ReservationRepository,
	customers repository.CustomerRepository,
	flights repository.FlightRepository,
	producer Producer,
	eventsTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		reservations: reservations,
		customers:    customers,
		flights:      flights,
		producer:     producer,
		eventsTopic:  eventsTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) LookupCustomer(ctx context.Context, id int64) (bool, error) {
	return s.customers.Exists(ctx, id)
}

// RegisterGuest inserts the customer and reports the store-generated id on
// the returned value. A failed insert is surfaced as-is; the booking that
// prompted the registration is abandoned by the caller.
func (s *BookingService) RegisterGuest(ctx context.Context, input GuestInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Gender:    input.Gender,
		BirthDate: input.BirthDate,
		Address:   input.Address,
		Phone:     input.Phone,
		Zipcode:   input.Zipcode,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// FlightCost doubles as the flight existence check: a missing flight is a
// rejection, never treated as zero cost.
func (s *BookingService) FlightCost(ctx context.Context, flightNum int64) (int, error) {
	cost, err := s.flights.Cost(ctx, flightNum)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrFlightNotFound
		}
		return 0, err
	}
	return cost, nil
}

func (s *BookingService) AvailableSeats(ctx context.Context, flightNum int64) (int, error) {
	available, err := s.flights.AvailableSeats(ctx, flightNum)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrFlightNotFound
		}
		return 0, err
	}
	return available, nil
}

// Book produces a reservation for the flight and customer. With seats
// available the operator must confirm; a confirmed booking is persisted as
// Reserved together with the num_sold increment. A full flight goes straight
// to the waitlist without touching the seat counter. Declining aborts with
// no side effects.
func (s *BookingService) Book(ctx context.Context, input BookInput) (*domain.Reservation, error) {
	available, err := s.AvailableSeats(ctx, input.FlightNum)
	if err != nil {
		return nil, err
	}

	if available > 0 {
		if input.Confirm != nil {
			ok, err := input.Confirm(available)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, ErrBookingDeclined
			}
		}

		reservation, err := s.reservations.CreateReserved(ctx, input.CustomerID, input.FlightNum)
		if err == nil {
			s.publish(ctx, "reservation_created", reservation)
			return reservation, nil
		}
		if !errors.Is(err, repository.ErrFlightFull) {
			return nil, err
		}
		// The last seat was taken between the availability read and the
		// guarded update; fall through to the waitlist.
	}

	reservation, err := s.reservations.CreateWaitlisted(ctx, input.CustomerID, input.FlightNum)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, "reservation_created", reservation)
	return reservation, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, reservation *domain.Reservation) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.ReservationEvent{
		Type:           eventType,
		ReservationNum: reservation.Num,
		FlightNum:      reservation.FlightNum,
		CustomerID:     reservation.CustomerID,
		Status:         string(reservation.Status),
		OccurredAt:     time.Now(),
	}
	key := uuid.NewString()
	if err := s.producer.Publish(ctx, s.eventsTopic, key, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for reservation %d: %v", eventType, reservation.Num, err)
		return
	}
	if s.auditTopic != "" {
		if err := s.producer.Publish(ctx, s.auditTopic, key, event); err != nil {
			log.Printf("WARNING: failed to publish %s audit event for reservation %d: %v", eventType, reservation.Num, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
