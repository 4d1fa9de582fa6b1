package repository

import (
	"context"

	"github.com/Domenick1991/airlineops/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type PGCustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) CustomerRepository {
	return &PGCustomerRepository{db: db}
}

// Create returns the store-generated id through RETURNING, so a guest
// registration is always attributed to the row that was actually inserted.
func (r *PGCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	return r.db.QueryRow(ctx, `INSERT INTO customer (fname, lname, gtype, dob, address, phone, zipcode)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		customer.FirstName, customer.LastName, customer.Gender, customer.BirthDate, customer.Address, customer.Phone, customer.Zipcode).
		Scan(&customer.ID)
}

func (r *PGCustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customer WHERE id=$1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

var _ CustomerRepository = (*PGCustomerRepository)(nil)
