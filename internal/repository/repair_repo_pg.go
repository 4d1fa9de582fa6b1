package repository

import (
	"context"

	"github.com/Domenick1991/airlineops/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RepairRepository interface {
	CountPerPlane(ctx context.Context) ([]domain.PlaneRepairCount, error)
	CountPerYear(ctx context.Context) ([]domain.YearRepairCount, error)
}

type PGRepairRepository struct {
	db *pgxpool.Pool
}

func NewRepairRepository(db *pgxpool.Pool) RepairRepository {
	return &PGRepairRepository{db: db}
}

func (r *PGRepairRepository) CountPerPlane(ctx context.Context) ([]domain.PlaneRepairCount, error) {
	rows, err := r.db.Query(ctx, `SELECT p.id, COUNT(rp.rid)
		FROM plane p JOIN repairs rp ON rp.plane_id = p.id
		GROUP BY p.id
		ORDER BY COUNT(rp.rid) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]domain.PlaneRepairCount, 0)
	for rows.Next() {
		var c domain.PlaneRepairCount
		if err := rows.Scan(&c.PlaneID, &c.Repairs); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *PGRepairRepository) CountPerYear(ctx context.Context) ([]domain.YearRepairCount, error) {
	rows, err := r.db.Query(ctx, `SELECT EXTRACT(YEAR FROM repair_date)::int, COUNT(*)
		FROM repairs
		GROUP BY EXTRACT(YEAR FROM repair_date)
		ORDER BY COUNT(*) ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]domain.YearRepairCount, 0)
	for rows.Next() {
		var c domain.YearRepairCount
		if err := rows.Scan(&c.Year, &c.Repairs); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

var _ RepairRepository = (*PGRepairRepository)(nil)
