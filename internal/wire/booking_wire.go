package wire

import (
	"safari-njema/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/bookings - Create a booking
	r.Post("/api/bookings", bookingHandler.Create)

	// GET /api/bookings/{bookingId} - Booking joined with customer and trip
	r.Get("/api/bookings/{bookingId}", bookingHandler.Get)

	// POST /api/bookings/{bookingId}/confirm - Confirm with an external payment
	r.Post("/api/bookings/{bookingId}/confirm", bookingHandler.Confirm)
}
