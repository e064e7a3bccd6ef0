package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"safari-njema/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestMemoryCatalog(t *testing.T) {
	repo := NewMemoryRepository(zap.NewNop())
	ctx := context.Background()

	cities, err := repo.City.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all cities: %v", err)
	}
	if len(cities) != 15 {
		t.Errorf("expected 15 cities, got %d", len(cities))
	}

	trip, err := repo.Trip.FindByID(ctx, "2")
	if err != nil {
		t.Fatalf("find trip: %v", err)
	}
	if trip == nil || trip.Company != "Njema Bus" {
		t.Errorf("unexpected trip 2: %+v", trip)
	}

	missing, err := repo.Trip.FindByID(ctx, "999")
	if err != nil {
		t.Fatalf("find missing trip: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown trip, not an error")
	}
}

func TestMemoryCustomerLookup(t *testing.T) {
	repo := NewMemoryRepository(zap.NewNop())
	ctx := context.Background()

	customer := &entity.Customer{
		BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		FullName:    "Amina Wanjiru",
		PhoneNumber: "+254712345678",
		IDNumber:    "28374651",
	}
	if err := repo.Customer.Create(ctx, customer); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	byPhone, err := repo.Customer.FindByPhoneOrIDNumber(ctx, "+254712345678", "no-match")
	if err != nil {
		t.Fatalf("find by phone: %v", err)
	}
	if byPhone == nil || byPhone.ID != customer.ID {
		t.Error("expected match by phone number")
	}

	byID, err := repo.Customer.FindByPhoneOrIDNumber(ctx, "no-match", "28374651")
	if err != nil {
		t.Fatalf("find by id number: %v", err)
	}
	if byID == nil || byID.ID != customer.ID {
		t.Error("expected match by ID number")
	}

	none, err := repo.Customer.FindByPhoneOrIDNumber(ctx, "no-match", "no-match")
	if err != nil {
		t.Fatalf("find no match: %v", err)
	}
	if none != nil {
		t.Error("expected nil for unmatched lookup")
	}
}

func TestMemoryBookingCopies(t *testing.T) {
	repo := NewMemoryRepository(zap.NewNop())
	ctx := context.Background()

	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Reference:     "SN000123",
		TripID:        "1",
		CustomerID:    uuid.New(),
		SeatNumbers:   []int{1, 3},
		TotalAmount:   3000,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatePending,
		PaymentMethod: "mpesa",
	}
	if err := repo.Booking.Create(ctx, booking); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	// Mutating the caller's slice must not leak into the store.
	booking.SeatNumbers[0] = 99

	stored, err := repo.Booking.FindByID(ctx, booking.ID)
	if err != nil || stored == nil {
		t.Fatalf("find booking: %v", err)
	}
	if stored.SeatNumbers[0] != 1 {
		t.Errorf("store shares seat slice with caller: %v", stored.SeatNumbers)
	}

	stored.Status = entity.BookingStatusConfirmed
	if err := repo.Booking.Update(ctx, stored); err != nil {
		t.Fatalf("update booking: %v", err)
	}
	updated, _ := repo.Booking.FindByID(ctx, booking.ID)
	if updated.Status != entity.BookingStatusConfirmed {
		t.Errorf("expected confirmed after update, got %s", updated.Status)
	}
}

func TestMemoryUpdateMissing(t *testing.T) {
	repo := NewMemoryRepository(zap.NewNop())
	ctx := context.Background()

	err := repo.Booking.Update(ctx, &entity.Booking{Base: entity.Base{ID: uuid.New()}})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}

	err = repo.Payment.Update(ctx, &entity.Payment{BaseSimple: entity.BaseSimple{ID: uuid.New()}})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}
