package response

import (
	"time"

	"safari-njema/internal/data/entity"
)

type PaymentResponse struct {
	ID            string              `json:"id"`
	BookingID     string              `json:"bookingId"`
	Amount        float64             `json:"amount"`
	PhoneNumber   string              `json:"phoneNumber"`
	Method        string              `json:"method"`
	Status        entity.PaymentState `json:"status"`
	TransactionID string              `json:"transactionId"`
	CompletedAt   *time.Time          `json:"completedAt,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID.String(),
		BookingID:     payment.BookingID.String(),
		Amount:        payment.Amount,
		PhoneNumber:   payment.PhoneNumber,
		Method:        payment.Method,
		Status:        payment.Status,
		TransactionID: payment.TransactionID,
		CompletedAt:   payment.CompletedAt,
		CreatedAt:     payment.CreatedAt,
	}
}
