package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airlineops/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlaneRepository interface {
	Create(ctx context.Context, plane *domain.Plane) error
	Exists(ctx context.Context, id int64) (bool, error)
	SeatCapacity(ctx context.Context, id int64) (int, error)
}

type PGPlaneRepository struct {
	db *pgxpool.Pool
}

func NewPlaneRepository(db *pgxpool.Pool) PlaneRepository {
	return &PGPlaneRepository{db: db}
}

func (r *PGPlaneRepository) Create(ctx context.Context, plane *domain.Plane) error {
	return r.db.QueryRow(ctx, `INSERT INTO plane (make, model, age, seats) VALUES ($1, $2, $3, $4) RETURNING id`,
		plane.Make, plane.Model, plane.AgeYears, plane.Seats).Scan(&plane.ID)
}

func (r *PGPlaneRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM plane WHERE id=$1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PGPlaneRepository) SeatCapacity(ctx context.Context, id int64) (int, error) {
	var seats int
	if err := r.db.QueryRow(ctx, `SELECT seats FROM plane WHERE id=$1`, id).Scan(&seats); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return seats, nil
}

var _ PlaneRepository = (*PGPlaneRepository)(nil)
