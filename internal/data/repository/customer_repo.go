package repository

import (
	"context"
	"fmt"

	"safari-njema/internal/data/entity"
	"safari-njema/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, full_name, phone_number, id_number, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		customer.ID,
		customer.FullName,
		customer.PhoneNumber,
		customer.IDNumber,
		customer.Email,
		customer.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("phone_number", customer.PhoneNumber),
		)
		return fmt.Errorf("create customer %s: %w", customer.ID.String(), err)
	}

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := `
		SELECT id, full_name, phone_number, id_number, email, created_at
		FROM customers
		WHERE id = $1
	`

	var customer entity.Customer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.FullName,
		&customer.PhoneNumber,
		&customer.IDNumber,
		&customer.Email,
		&customer.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return nil, fmt.Errorf("find customer by ID %s: %w", id.String(), err)
	}

	return &customer, nil
}

func (r *customerRepository) FindByPhoneOrIDNumber(ctx context.Context, phoneNumber, idNumber string) (*entity.Customer, error) {
	query := `
		SELECT id, full_name, phone_number, id_number, email, created_at
		FROM customers
		WHERE phone_number = $1 OR id_number = $2
		LIMIT 1
	`

	var customer entity.Customer
	err := r.db.QueryRow(ctx, query, phoneNumber, idNumber).Scan(
		&customer.ID,
		&customer.FullName,
		&customer.PhoneNumber,
		&customer.IDNumber,
		&customer.Email,
		&customer.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by phone or ID number",
			zap.Error(err),
			zap.String("phone_number", phoneNumber),
		)
		return nil, fmt.Errorf("find customer by phone %s: %w", phoneNumber, err)
	}

	return &customer, nil
}
