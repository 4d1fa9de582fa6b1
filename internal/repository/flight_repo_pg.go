package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airlineops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight, pilotID, planeID int64) error
	Exists(ctx context.Context, fnum int64) (bool, error)
	Cost(ctx context.Context, fnum int64) (int, error)
	AvailableSeats(ctx context.Context, fnum int64) (int, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

// Create persists the flight together with its flightinfo association in one
// transaction, so a flight can never exist without its pilot and plane binding.
func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight, pilotID, planeID int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO flight (cost, num_sold, num_stops, actual_departure_date, actual_arrival_date, arrival_airport, departure_airport)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING fnum`,
		flight.Cost, flight.NumSold, flight.NumStops, flight.DepartureDate, flight.ArrivalDate, flight.ArrivalAirport, flight.DepartureAirport).
		Scan(&flight.Num); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `INSERT INTO flightinfo (flight_id, pilot_id, plane_id) VALUES ($1, $2, $3)`,
		flight.Num, pilotID, planeID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Exists(ctx context.Context, fnum int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM flight WHERE fnum=$1)`, fnum).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PGFlightRepository) Cost(ctx context.Context, fnum int64) (int, error) {
	var cost int
	if err := r.db.QueryRow(ctx, `SELECT cost FROM flight WHERE fnum=$1`, fnum).Scan(&cost); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return cost, nil
}

// AvailableSeats is plane capacity minus sold seats, joined through
// flightinfo. It is recomputed from the store on every call.
func (r *PGFlightRepository) AvailableSeats(ctx context.Context, fnum int64) (int, error) {
	var available int
	if err := r.db.QueryRow(ctx, `SELECT p.seats - f.num_sold
		FROM flight f
		JOIN flightinfo fi ON fi.flight_id = f.fnum
		JOIN plane p ON p.id = fi.plane_id
		WHERE f.fnum=$1`, fnum).Scan(&available); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return available, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
