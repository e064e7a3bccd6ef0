package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"safari-njema/internal/data/entity"
	"safari-njema/internal/data/repository"
	"safari-njema/internal/dto/request"
	"safari-njema/internal/dto/response"
	"safari-njema/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	Initiate(ctx context.Context, req *request.InitiatePaymentRequest) (*response.PaymentResponse, error)
	Status(ctx context.Context, paymentID string) (*response.PaymentResponse, error)
}

// paymentService simulates a mobile-money gateway: a payment starts
// pending and settles after a fixed delay. FailureRate injects declines
// (0 disables them, 1 declines everything).
type paymentService struct {
	repo   *repository.Repository
	config utils.PaymentConfig
	log    *zap.Logger
}

func NewPaymentService(repo *repository.Repository, config utils.PaymentConfig, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) Initiate(ctx context.Context, req *request.InitiatePaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Initiate payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", req.BookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", req.BookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", req.BookingID)
	}

	method := req.PaymentMethod
	if method == "" {
		method = "mpesa"
	}

	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID:     bookingID,
		Amount:        req.Amount,
		PhoneNumber:   req.PhoneNumber,
		Method:        method,
		Status:        entity.PaymentStatePending,
		TransactionID: utils.GenerateTransactionID(),
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, fmt.Errorf("create payment: %w", err)
	}

	// Settlement runs on its own timer, independent of this request.
	time.AfterFunc(s.config.Delay, func() {
		s.settle(payment.ID, bookingID)
	})

	s.log.Info("Payment initiated",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.String("transaction_id", payment.TransactionID),
		zap.Float64("amount", req.Amount),
		zap.Duration("settle_after", s.config.Delay),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

// settle flips the payment to its terminal state and mirrors the outcome
// onto the booking if it still exists.
func (s *paymentService) settle(paymentID, bookingID uuid.UUID) {
	ctx := context.Background()

	payment, err := s.repo.Payment.FindByID(ctx, paymentID)
	if err != nil || payment == nil {
		s.log.Error("Settlement lost its payment",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
		)
		return
	}
	if payment.Status != entity.PaymentStatePending {
		return
	}

	declined := s.config.FailureRate > 0 && rand.Float64() < s.config.FailureRate
	now := time.Now()

	if declined {
		payment.Status = entity.PaymentStateFailed
	} else {
		payment.Status = entity.PaymentStateCompleted
		payment.CompletedAt = &now
	}

	if err := s.repo.Payment.Update(ctx, payment); err != nil {
		s.log.Error("Failed to update settled payment",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
		)
		return
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil || booking == nil {
		// Booking gone; the payment record keeps its terminal state.
		return
	}

	if declined {
		booking.PaymentStatus = entity.PaymentStateFailed
	} else {
		booking.Status = entity.BookingStatusConfirmed
		booking.PaymentStatus = entity.PaymentStateCompleted
		booking.PaymentID = &payment.ID
		booking.ConfirmedAt = &now
	}
	booking.UpdatedAt = now

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking after settlement",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return
	}

	s.log.Info("Payment settled",
		zap.String("payment_id", paymentID.String()),
		zap.String("booking_id", bookingID.String()),
		zap.String("status", string(payment.Status)),
	)
}

func (s *paymentService) Status(ctx context.Context, paymentID string) (*response.PaymentResponse, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment ID format %s: %w", paymentID, err)
	}

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment %s: %w", paymentID, err)
	}
	if payment == nil {
		return nil, fmt.Errorf("payment %s not found", paymentID)
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}
