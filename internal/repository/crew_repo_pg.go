package repository

import (
	"context"

	"github.com/Domenick1991/airlineops/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PilotRepository interface {
	Create(ctx context.Context, pilot *domain.Pilot) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type TechnicianRepository interface {
	Create(ctx context.Context, technician *domain.Technician) error
}

type PGPilotRepository struct {
	db *pgxpool.Pool
}

func NewPilotRepository(db *pgxpool.Pool) PilotRepository {
	return &PGPilotRepository{db: db}
}

func (r *PGPilotRepository) Create(ctx context.Context, pilot *domain.Pilot) error {
	return r.db.QueryRow(ctx, `INSERT INTO pilot (fullname, nationality) VALUES ($1, $2) RETURNING id`,
		pilot.FullName, pilot.Nationality).Scan(&pilot.ID)
}

func (r *PGPilotRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM pilot WHERE id=$1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

type PGTechnicianRepository struct {
	db *pgxpool.Pool
}

func NewTechnicianRepository(db *pgxpool.Pool) TechnicianRepository {
	return &PGTechnicianRepository{db: db}
}

func (r *PGTechnicianRepository) Create(ctx context.Context, technician *domain.Technician) error {
	return r.db.QueryRow(ctx, `INSERT INTO technician (full_name) VALUES ($1) RETURNING id`,
		technician.FullName).Scan(&technician.ID)
}

var _ PilotRepository = (*PGPilotRepository)(nil)
var _ TechnicianRepository = (*PGTechnicianRepository)(nil)
