package wire

import (
	"safari-njema/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCustomer(r chi.Router, customerHandler *adaptor.CustomerHandler) {
	// POST /api/customers - Register (or find) a customer
	r.Post("/api/customers", customerHandler.Register)

	// GET /api/customers/{customerId} - Customer details
	r.Get("/api/customers/{customerId}", customerHandler.Get)
}
