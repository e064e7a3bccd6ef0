package wire

import (
	"safari-njema/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	// POST /api/payments/initiate - Start a simulated payment
	r.Post("/api/payments/initiate", paymentHandler.Initiate)

	// GET /api/payments/{paymentId}/status - Poll settlement state
	r.Get("/api/payments/{paymentId}/status", paymentHandler.GetStatus)
}
