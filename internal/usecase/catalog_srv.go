package usecase

import (
	"context"
	"fmt"

	"safari-njema/internal/data/entity"
	"safari-njema/internal/data/repository"
	"safari-njema/internal/dto/request"
	"safari-njema/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	Cities(ctx context.Context) ([]response.CityResponse, error)
	SearchTrips(ctx context.Context, query *request.TripSearchQuery) ([]response.TripResponse, error)
	GetTrip(ctx context.Context, tripID string) (*response.TripResponse, error)
	Routes(ctx context.Context, fromCity, toCity string) ([]response.RouteResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) Cities(ctx context.Context) ([]response.CityResponse, error) {
	cities, err := s.repo.City.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list cities", zap.Error(err))
		return nil, fmt.Errorf("list cities: %w", err)
	}

	cityResponses := make([]response.CityResponse, len(cities))
	for i, city := range cities {
		cityResponses[i] = response.CityToResponse(city)
	}
	return cityResponses, nil
}

func (s *catalogService) SearchTrips(ctx context.Context, query *request.TripSearchQuery) ([]response.TripResponse, error) {
	trips, err := s.repo.Trip.Search(ctx, query.From, query.To)
	if err != nil {
		s.log.Error("Failed to search trips",
			zap.Error(err),
			zap.String("from", query.From),
			zap.String("to", query.To),
		)
		return nil, fmt.Errorf("search trips: %w", err)
	}

	// An unmatched city pair is an empty result, not an error.
	tripResponses := make([]response.TripResponse, len(trips))
	for i, trip := range trips {
		tripResponses[i] = response.TripToResponse(trip)
	}

	s.log.Info("Trips searched",
		zap.String("from", query.From),
		zap.String("to", query.To),
		zap.String("date", query.Date),
		zap.Int("count", len(trips)),
	)

	return tripResponses, nil
}

func (s *catalogService) GetTrip(ctx context.Context, tripID string) (*response.TripResponse, error) {
	trip, err := s.repo.Trip.FindByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("get trip %s: %w", tripID, err)
	}
	if trip == nil {
		return nil, fmt.Errorf("trip %s not found", tripID)
	}

	resp := response.TripToResponse(trip)
	return &resp, nil
}

// Routes mirrors the single demo corridor: whatever pair is asked for is
// echoed back with the Nairobi-Mombasa distance profile.
func (s *catalogService) Routes(ctx context.Context, fromCity, toCity string) ([]response.RouteResponse, error) {
	if fromCity == "" {
		fromCity = "Nairobi"
	}
	if toCity == "" {
		toCity = "Mombasa"
	}

	route := &entity.Route{
		ID:                "1",
		FromCity:          fromCity,
		ToCity:            toCity,
		DistanceKM:        480,
		EstimatedDuration: "8-10 hours",
	}

	return []response.RouteResponse{response.RouteToResponse(route)}, nil
}
