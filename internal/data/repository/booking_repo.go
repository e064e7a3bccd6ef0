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

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func seatsToInt32(seats []int) []int32 {
	out := make([]int32, len(seats))
	for i, seat := range seats {
		out[i] = int32(seat)
	}
	return out
}

func seatsFromInt32(seats []int32) []int {
	out := make([]int, len(seats))
	for i, seat := range seats {
		out[i] = int(seat)
	}
	return out
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, reference, trip_id, customer_id, seat_numbers,
		                      total_amount, status, payment_status, payment_method,
		                      payment_id, confirmed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Reference,
		booking.TripID,
		booking.CustomerID,
		seatsToInt32(booking.SeatNumbers),
		booking.TotalAmount,
		booking.Status,
		booking.PaymentStatus,
		booking.PaymentMethod,
		booking.PaymentID,
		booking.ConfirmedAt,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
			zap.String("trip_id", booking.TripID),
		)
		return fmt.Errorf("create booking %s: %w", booking.Reference, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, reference, trip_id, customer_id, seat_numbers, total_amount,
		       status, payment_status, payment_method, payment_id, confirmed_at,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	var seats []int32
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.Reference,
		&booking.TripID,
		&booking.CustomerID,
		&seats,
		&booking.TotalAmount,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.PaymentMethod,
		&booking.PaymentID,
		&booking.ConfirmedAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	booking.SeatNumbers = seatsFromInt32(seats)
	return &booking, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET status = $2, payment_status = $3, payment_method = $4,
		    payment_id = $5, confirmed_at = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Status,
		booking.PaymentStatus,
		booking.PaymentMethod,
		booking.PaymentID,
		booking.ConfirmedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return errNotFound("booking", booking.ID.String())
	}

	return nil
}
