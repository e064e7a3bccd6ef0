package usecase

import (
	"context"
	"fmt"

	"safari-njema/internal/data/repository"
	"safari-njema/internal/dto/request"
	"safari-njema/internal/dto/response"
	"safari-njema/internal/ledger"
	"safari-njema/pkg/utils"

	"go.uber.org/zap"
)

type SeatService interface {
	Status(ctx context.Context, tripID string) ([]response.SeatRecordResponse, error)
	Reserve(ctx context.Context, req *request.ReserveSeatsRequest) (*response.ReservationResponse, error)
	Release(ctx context.Context, req *request.ReleaseSeatsRequest) error
}

type seatService struct {
	repo  *repository.Repository
	seats *ledger.Ledger
	log   *zap.Logger
}

func NewSeatService(repo *repository.Repository, seats *ledger.Ledger, log *zap.Logger) SeatService {
	return &seatService{
		repo:  repo,
		seats: seats,
		log:   log.With(zap.String("service", "seat")),
	}
}

func (s *seatService) Status(ctx context.Context, tripID string) ([]response.SeatRecordResponse, error) {
	trip, err := s.repo.Trip.FindByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("get trip %s: %w", tripID, err)
	}
	if trip == nil {
		return nil, fmt.Errorf("trip %s not found", tripID)
	}

	records := s.seats.Status(tripID, trip.TotalSeats)
	recordResponses := make([]response.SeatRecordResponse, len(records))
	for i, record := range records {
		recordResponses[i] = response.SeatRecordToResponse(record)
	}
	return recordResponses, nil
}

func (s *seatService) Reserve(ctx context.Context, req *request.ReserveSeatsRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reserve seats validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	trip, err := s.repo.Trip.FindByID(ctx, req.TripID)
	if err != nil {
		return nil, fmt.Errorf("get trip %s: %w", req.TripID, err)
	}
	if trip == nil {
		return nil, fmt.Errorf("trip %s not found", req.TripID)
	}

	hold, err := s.seats.Reserve(req.TripID, trip.TotalSeats, req.SeatNumbers)
	if err != nil {
		return nil, err
	}

	return &response.ReservationResponse{
		HoldID:        hold.ID,
		TripID:        hold.TripID,
		SeatNumbers:   hold.Seats,
		ReservedUntil: hold.ExpiresAt,
	}, nil
}

func (s *seatService) Release(ctx context.Context, req *request.ReleaseSeatsRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Release seats validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	trip, err := s.repo.Trip.FindByID(ctx, req.TripID)
	if err != nil {
		return fmt.Errorf("get trip %s: %w", req.TripID, err)
	}
	if trip == nil {
		return fmt.Errorf("trip %s not found", req.TripID)
	}

	s.seats.Release(req.TripID, req.SeatNumbers)
	return nil
}
