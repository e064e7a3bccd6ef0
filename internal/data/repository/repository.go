package repository

import (
	"context"

	"safari-njema/internal/data/entity"
	"safari-njema/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CityRepository interface {
	FindAll(ctx context.Context) ([]*entity.City, error)
}

type TripRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Trip, error)
	Search(ctx context.Context, fromCity, toCity string) ([]*entity.Trip, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByPhoneOrIDNumber(ctx context.Context, phoneNumber, idNumber string) (*entity.Customer, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
}

// Repository groups the injected stores. Services depend on this struct,
// never on a concrete driver.
type Repository struct {
	City     CityRepository
	Trip     TripRepository
	Customer CustomerRepository
	Booking  BookingRepository
	Payment  PaymentRepository
}

// NewRepository builds the pgx-backed driver (STORE_DRIVER=postgres).
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		City:     NewCityRepository(db, log),
		Trip:     NewTripRepository(db, log),
		Customer: NewCustomerRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		Payment:  NewPaymentRepository(db, log),
	}
}

// NewMemoryRepository builds the default in-process driver, its catalog
// pre-seeded with the demo cities and trips.
func NewMemoryRepository(log *zap.Logger) *Repository {
	return &Repository{
		City:     newMemoryCityRepository(),
		Trip:     newMemoryTripRepository(),
		Customer: newMemoryCustomerRepository(),
		Booking:  newMemoryBookingRepository(),
		Payment:  newMemoryPaymentRepository(),
	}
}
