package repository

import (
	"context"

	"github.com/Domenick1991/airlineops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository interface {
	CreateReserved(ctx context.Context, customerID, flightNum int64) (*domain.Reservation, error)
	CreateWaitlisted(ctx context.Context, customerID, flightNum int64) (*domain.Reservation, error)
	CountByStatus(ctx context.Context, flightNum int64, status domain.ReservationStatus) (int64, error)
}

type PGReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{db: db}
}

// CreateReserved increments the flight's sold-seat counter and inserts the
// reservation in one transaction. The counter update is guarded by the plane
// capacity, so num_sold can never overshoot seats even under concurrent
// bookings; ErrFlightFull reports a rejected increment. The reservation
// number is assigned inside the same transaction as max(rnum)+1.
func (r *PGReservationRepository) CreateReserved(ctx context.Context, customerID, flightNum int64) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `UPDATE flight SET num_sold = num_sold + 1
		WHERE fnum=$1 AND num_sold < (
			SELECT p.seats FROM flightinfo fi JOIN plane p ON p.id = fi.plane_id WHERE fi.flight_id=$1
		)`, flightNum)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, ErrFlightFull
	}

	reservation := &domain.Reservation{
		CustomerID: customerID,
		FlightNum:  flightNum,
		Status:     domain.ReservationStatusReserved,
	}
	if err := tx.QueryRow(ctx, `INSERT INTO reservation (rnum, cid, fid, status)
		VALUES ((SELECT COALESCE(MAX(rnum), 0) + 1 FROM reservation), $1, $2, $3)
		RETURNING rnum`,
		customerID, flightNum, reservation.Status).Scan(&reservation.Num); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return reservation, nil
}

// CreateWaitlisted records the reservation without touching num_sold; a
// waitlisted passenger does not occupy a seat.
func (r *PGReservationRepository) CreateWaitlisted(ctx context.Context, customerID, flightNum int64) (*domain.Reservation, error) {
	reservation := &domain.Reservation{
		CustomerID: customerID,
		FlightNum:  flightNum,
		Status:     domain.ReservationStatusWaitlisted,
	}
	if err := r.db.QueryRow(ctx, `INSERT INTO reservation (rnum, cid, fid, status)
		VALUES ((SELECT COALESCE(MAX(rnum), 0) + 1 FROM reservation), $1, $2, $3)
		RETURNING rnum`,
		customerID, flightNum, reservation.Status).Scan(&reservation.Num); err != nil {
		return nil, err
	}
	return reservation, nil
}

func (r *PGReservationRepository) CountByStatus(ctx context.Context, flightNum int64, status domain.ReservationStatus) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservation WHERE fid=$1 AND status=$2`, flightNum, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
