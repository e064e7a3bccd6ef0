package usecase

import (
	"context"
	"testing"

	"safari-njema/internal/dto/request"

	"go.uber.org/zap"
)

func TestFindOrCreateCustomer(t *testing.T) {
	service := NewCustomerService(newTestRepo(), zap.NewNop())
	ctx := context.Background()

	first, err := service.FindOrCreate(ctx, testCustomerInfo())
	if err != nil {
		t.Fatalf("register customer: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected a customer id")
	}
	if first.Email == nil || *first.Email != "amina@example.com" {
		t.Error("expected email to be stored")
	}

	// Same phone number dedupes even with a different name and ID number,
	// and the stored record wins.
	again, err := service.FindOrCreate(ctx, &request.RegisterCustomerRequest{
		FullName:    "A. Wanjiru",
		PhoneNumber: "+254712345678",
		IDNumber:    "99999999",
	})
	if err != nil {
		t.Fatalf("re-register by phone: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("expected dedupe by phone, got ids %s and %s", first.ID, again.ID)
	}
	if again.FullName != "Amina Wanjiru" {
		t.Errorf("stored record must win, got name %s", again.FullName)
	}

	// Same ID number dedupes too.
	byID, err := service.FindOrCreate(ctx, &request.RegisterCustomerRequest{
		FullName:    "Someone Else",
		PhoneNumber: "+254700000000",
		IDNumber:    "28374651",
	})
	if err != nil {
		t.Fatalf("re-register by ID number: %v", err)
	}
	if byID.ID != first.ID {
		t.Errorf("expected dedupe by ID number, got ids %s and %s", first.ID, byID.ID)
	}

	// A genuinely new profile gets its own record.
	other, err := service.FindOrCreate(ctx, &request.RegisterCustomerRequest{
		FullName:    "Brian Otieno",
		PhoneNumber: "+254722000111",
		IDNumber:    "30112233",
	})
	if err != nil {
		t.Fatalf("register second customer: %v", err)
	}
	if other.ID == first.ID {
		t.Error("distinct profiles must not collide")
	}
}

func TestFindOrCreateCustomerValidation(t *testing.T) {
	service := NewCustomerService(newTestRepo(), zap.NewNop())

	_, err := service.FindOrCreate(context.Background(), &request.RegisterCustomerRequest{
		FullName: "No Phone",
		IDNumber: "12345678",
	})
	if err == nil {
		t.Fatal("expected validation error for missing phone number")
	}
}

func TestGetCustomer(t *testing.T) {
	service := NewCustomerService(newTestRepo(), zap.NewNop())
	ctx := context.Background()

	created, err := service.FindOrCreate(ctx, testCustomerInfo())
	if err != nil {
		t.Fatalf("register customer: %v", err)
	}

	got, err := service.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get customer: %v", err)
	}
	if got.PhoneNumber != "+254712345678" {
		t.Errorf("unexpected phone number %s", got.PhoneNumber)
	}

	if _, err := service.Get(ctx, "not-a-uuid"); err == nil {
		t.Error("expected error for malformed id")
	}
	if _, err := service.Get(ctx, "6f1c0a9e-7c2b-4f6d-9e3a-8b5d4c2a1f00"); err == nil {
		t.Error("expected error for unknown customer")
	}
}
