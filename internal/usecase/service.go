package usecase

import (
	"safari-njema/internal/data/repository"
	"safari-njema/internal/ledger"
	"safari-njema/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog      CatalogService
	Seat         SeatService
	Customer     CustomerService
	Booking      BookingService
	Payment      PaymentService
	Notification NotificationService
}

func NewService(repo *repository.Repository, seats *ledger.Ledger, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Catalog:      NewCatalogService(repo, log),
		Seat:         NewSeatService(repo, seats, log),
		Customer:     NewCustomerService(repo, log),
		Booking:      NewBookingService(repo, seats, log),
		Payment:      NewPaymentService(repo, config.Payment, log),
		Notification: NewNotificationService(log),
	}
}
