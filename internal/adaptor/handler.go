package adaptor

import (
	"net/http"
	"strings"

	"safari-njema/internal/usecase"
	"safari-njema/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Catalog      *CatalogHandler
	Seat         *SeatHandler
	Customer     *CustomerHandler
	Booking      *BookingHandler
	Payment      *PaymentHandler
	Notification *NotificationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Catalog:      NewCatalogHandler(service.Catalog, log),
		Seat:         NewSeatHandler(service.Seat, log),
		Customer:     NewCustomerHandler(service.Customer, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Payment:      NewPaymentHandler(service.Payment, log),
		Notification: NewNotificationHandler(service.Notification, log),
	}
}

// handleServiceError maps service error text to an HTTP status. Internal
// errors keep their detail in the log, the client sees a redacted message.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "not available"):
		log.Warn(operation+" failed - seats unavailable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "required"):
		log.Warn(operation+" failed - bad request",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
