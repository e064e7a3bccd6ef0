package repository

import (
	"context"
	"strings"
	"sync"

	"safari-njema/internal/data/entity"

	"github.com/google/uuid"
)

// In-memory driver. Each store guards its map with a RWMutex and hands out
// copies, so callers never share pointers into store state.

// ---------- cities ----------

type memoryCityRepository struct {
	mu     sync.RWMutex
	cities []*entity.City
}

func newMemoryCityRepository() CityRepository {
	return &memoryCityRepository{cities: seedCities()}
}

func (r *memoryCityRepository) FindAll(ctx context.Context) ([]*entity.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cities := make([]*entity.City, len(r.cities))
	for i, city := range r.cities {
		c := *city
		cities[i] = &c
	}
	return cities, nil
}

// ---------- trips ----------

type memoryTripRepository struct {
	mu    sync.RWMutex
	trips []*entity.Trip
}

func newMemoryTripRepository() TripRepository {
	return &memoryTripRepository{trips: seedTrips()}
}

func (r *memoryTripRepository) FindByID(ctx context.Context, id string) (*entity.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, trip := range r.trips {
		if trip.ID == id {
			t := *trip
			return &t, nil
		}
	}
	return nil, nil
}

func (r *memoryTripRepository) Search(ctx context.Context, fromCity, toCity string) ([]*entity.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var trips []*entity.Trip
	for _, trip := range r.trips {
		if strings.EqualFold(trip.FromCity, fromCity) && strings.EqualFold(trip.ToCity, toCity) {
			t := *trip
			trips = append(trips, &t)
		}
	}
	return trips, nil
}

// ---------- customers ----------

type memoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]*entity.Customer
}

func newMemoryCustomerRepository() CustomerRepository {
	return &memoryCustomerRepository{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *memoryCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *customer
	r.customers[c.ID] = &c
	return nil
}

func (r *memoryCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	c := *customer
	return &c, nil
}

func (r *memoryCustomerRepository) FindByPhoneOrIDNumber(ctx context.Context, phoneNumber, idNumber string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, customer := range r.customers {
		if customer.PhoneNumber == phoneNumber || customer.IDNumber == idNumber {
			c := *customer
			return &c, nil
		}
	}
	return nil, nil
}

// ---------- bookings ----------

type memoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]*entity.Booking
}

func newMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func copyBooking(booking *entity.Booking) *entity.Booking {
	b := *booking
	b.SeatNumbers = append([]int(nil), booking.SeatNumbers...)
	return &b
}

func (r *memoryBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings[booking.ID] = copyBooking(booking)
	return nil
}

func (r *memoryBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return copyBooking(booking), nil
}

func (r *memoryBookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID]; !ok {
		return errNotFound("booking", booking.ID.String())
	}
	r.bookings[booking.ID] = copyBooking(booking)
	return nil
}

// ---------- payments ----------

type memoryPaymentRepository struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]*entity.Payment
}

func newMemoryPaymentRepository() PaymentRepository {
	return &memoryPaymentRepository{payments: make(map[uuid.UUID]*entity.Payment)}
}

func (r *memoryPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := *payment
	r.payments[p.ID] = &p
	return nil
}

func (r *memoryPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	p := *payment
	return &p, nil
}

func (r *memoryPaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.payments[payment.ID]; !ok {
		return errNotFound("payment", payment.ID.String())
	}
	p := *payment
	r.payments[p.ID] = &p
	return nil
}
