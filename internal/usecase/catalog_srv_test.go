package usecase

import (
	"context"
	"testing"

	"safari-njema/internal/dto/request"

	"go.uber.org/zap"
)

func TestCities(t *testing.T) {
	service := NewCatalogService(newTestRepo(), zap.NewNop())

	cities, err := service.Cities(context.Background())
	if err != nil {
		t.Fatalf("list cities: %v", err)
	}
	if len(cities) != 15 {
		t.Fatalf("expected 15 cities, got %d", len(cities))
	}
	if cities[0].Name != "Nairobi" {
		t.Errorf("expected Nairobi first, got %s", cities[0].Name)
	}
}

func TestSearchTrips(t *testing.T) {
	service := NewCatalogService(newTestRepo(), zap.NewNop())
	ctx := context.Background()

	trips, err := service.SearchTrips(ctx, &request.TripSearchQuery{
		From: "Nairobi",
		To:   "Mombasa",
		Date: "2026-09-15",
	})
	if err != nil {
		t.Fatalf("search trips: %v", err)
	}
	if len(trips) != 3 {
		t.Fatalf("expected 3 trips on the demo corridor, got %d", len(trips))
	}
	if trips[0].Company != "Safari Express" || trips[0].Price != 1500 {
		t.Errorf("unexpected first trip: %+v", trips[0])
	}

	// City match is case-insensitive.
	trips, err = service.SearchTrips(ctx, &request.TripSearchQuery{
		From: "nairobi",
		To:   "MOMBASA",
		Date: "2026-09-15",
	})
	if err != nil {
		t.Fatalf("search trips case-insensitive: %v", err)
	}
	if len(trips) != 3 {
		t.Errorf("expected 3 trips for case-insensitive match, got %d", len(trips))
	}

	// No trips for an unserved pair, and no error either.
	trips, err = service.SearchTrips(ctx, &request.TripSearchQuery{
		From: "Nairobi",
		To:   "Kisumu",
		Date: "2026-09-15",
	})
	if err != nil {
		t.Fatalf("search unserved pair: %v", err)
	}
	if len(trips) != 0 {
		t.Errorf("expected no trips for Nairobi-Kisumu, got %d", len(trips))
	}
}

func TestGetTrip(t *testing.T) {
	service := NewCatalogService(newTestRepo(), zap.NewNop())
	ctx := context.Background()

	trip, err := service.GetTrip(ctx, "3")
	if err != nil {
		t.Fatalf("get trip: %v", err)
	}
	if trip.Company != "Coast Shuttle" || trip.TotalSeats != 24 {
		t.Errorf("unexpected trip 3: %+v", trip)
	}

	if _, err := service.GetTrip(ctx, "999"); err == nil {
		t.Error("expected error for unknown trip")
	}
}

func TestRoutes(t *testing.T) {
	service := NewCatalogService(newTestRepo(), zap.NewNop())
	ctx := context.Background()

	routes, err := service.Routes(ctx, "", "")
	if err != nil {
		t.Fatalf("routes: %v", err)
	}
	if len(routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(routes))
	}
	if routes[0].FromCity != "Nairobi" || routes[0].ToCity != "Mombasa" {
		t.Errorf("expected default Nairobi-Mombasa corridor, got %+v", routes[0])
	}
	if routes[0].Distance != 480 {
		t.Errorf("expected 480 km, got %d", routes[0].Distance)
	}

	routes, err = service.Routes(ctx, "Nakuru", "Eldoret")
	if err != nil {
		t.Fatalf("routes with pair: %v", err)
	}
	if routes[0].FromCity != "Nakuru" || routes[0].ToCity != "Eldoret" {
		t.Errorf("expected requested pair echoed, got %+v", routes[0])
	}
}
