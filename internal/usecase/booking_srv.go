package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"safari-njema/internal/data/entity"
	"safari-njema/internal/data/repository"
	"safari-njema/internal/dto/request"
	"safari-njema/internal/dto/response"
	"safari-njema/internal/ledger"
	"safari-njema/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, *response.CustomerResponse, error)
	Confirm(ctx context.Context, bookingID string, req *request.ConfirmBookingRequest) (*response.BookingResponse, error)
	Get(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error)
}

type bookingService struct {
	repo  *repository.Repository
	seats *ledger.Ledger
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, seats *ledger.Ledger, log *zap.Logger) BookingService {
	return &bookingService{
		repo:  repo,
		seats: seats,
		log:   log.With(zap.String("service", "booking")),
	}
}

func uniqueSeats(seats []int) []int {
	seen := make(map[int]struct{}, len(seats))
	unique := make([]int, 0, len(seats))
	for _, seat := range seats {
		if _, dup := seen[seat]; dup {
			continue
		}
		seen[seat] = struct{}{}
		unique = append(unique, seat)
	}
	sort.Ints(unique)
	return unique
}

func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, *response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	trip, err := s.repo.Trip.FindByID(ctx, req.TripID)
	if err != nil {
		return nil, nil, fmt.Errorf("get trip %s: %w", req.TripID, err)
	}
	if trip == nil {
		return nil, nil, fmt.Errorf("trip %s not found", req.TripID)
	}

	customer, err := s.resolveCustomer(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	seats := uniqueSeats(req.SeatNumbers)

	// The ledger owns seat pricing truth: the client-sent total must match
	// price x seat count exactly.
	expectedAmount := trip.Price * float64(len(seats))
	if req.TotalAmount != expectedAmount {
		return nil, nil, fmt.Errorf("invalid total amount %.2f: expected %.2f for %d seats", req.TotalAmount, expectedAmount, len(seats))
	}

	// Mark seats booked first; the booking record is only written once the
	// ledger accepted every seat.
	if err := s.seats.Book(req.TripID, trip.TotalSeats, seats, req.HoldID); err != nil {
		return nil, nil, err
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "mpesa"
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:     utils.GenerateBookingReference(),
		TripID:        req.TripID,
		CustomerID:    customer.ID,
		SeatNumbers:   seats,
		TotalAmount:   expectedAmount,
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatePending,
		PaymentMethod: paymentMethod,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("trip_id", req.TripID),
			zap.String("customer_id", customer.ID.String()),
		)
		return nil, nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("trip_id", booking.TripID),
		zap.Ints("seats", seats),
		zap.Float64("total_amount", booking.TotalAmount),
	)

	bookingResp := response.BookingToResponse(booking)
	customerResp := response.CustomerToResponse(customer)
	return &bookingResp, &customerResp, nil
}

// resolveCustomer accepts either an existing customer id or an inline
// profile that is matched against the registry by phone or ID number.
func (s *bookingService) resolveCustomer(ctx context.Context, req *request.CreateBookingRequest) (*entity.Customer, error) {
	if req.CustomerID != "" {
		id, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("invalid customer ID format %s: %w", req.CustomerID, err)
		}
		customer, err := s.repo.Customer.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get customer %s: %w", req.CustomerID, err)
		}
		if customer == nil {
			return nil, fmt.Errorf("customer %s not found", req.CustomerID)
		}
		return customer, nil
	}

	if req.CustomerInfo == nil {
		return nil, fmt.Errorf("customer information required")
	}

	info := req.CustomerInfo
	if errs := utils.ValidateStruct(info); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Customer.FindByPhoneOrIDNumber(ctx, info.PhoneNumber, info.IDNumber)
	if err != nil {
		return nil, fmt.Errorf("look up customer: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	customer := &entity.Customer{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		FullName:    info.FullName,
		PhoneNumber: info.PhoneNumber,
		IDNumber:    info.IDNumber,
	}
	if info.Email != "" {
		email := info.Email
		customer.Email = &email
	}

	if err := s.repo.Customer.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

func (s *bookingService) Confirm(ctx context.Context, bookingID string, req *request.ConfirmBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Confirm booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	paymentID, err := uuid.Parse(req.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment ID format %s: %w", req.PaymentID, err)
	}

	now := time.Now()
	booking.Status = entity.BookingStatusConfirmed
	booking.PaymentStatus = entity.PaymentStateCompleted
	booking.PaymentID = &paymentID
	booking.ConfirmedAt = &now
	booking.UpdatedAt = now

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to confirm booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("confirm booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking confirmed",
		zap.String("booking_id", bookingID),
		zap.String("reference", booking.Reference),
		zap.String("payment_id", req.PaymentID),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) Get(ctx context.Context, bookingID string) (*response.BookingDetailResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	detail := &response.BookingDetailResponse{
		BookingResponse: response.BookingToResponse(booking),
	}

	if customer, _ := s.repo.Customer.FindByID(ctx, booking.CustomerID); customer != nil {
		customerResp := response.CustomerToResponse(customer)
		detail.Customer = &customerResp
	}
	if trip, _ := s.repo.Trip.FindByID(ctx, booking.TripID); trip != nil {
		tripResp := response.TripToResponse(trip)
		detail.Trip = &tripResp
	}

	return detail, nil
}
