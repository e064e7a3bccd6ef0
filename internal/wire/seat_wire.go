package wire

import (
	"safari-njema/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeat(r chi.Router, seatHandler *adaptor.SeatHandler) {
	// GET /api/seats/status/{tripId} - Seat map for a trip
	r.Get("/api/seats/status/{tripId}", seatHandler.GetStatus)

	// POST /api/seats/reserve - Place a time-boxed hold
	r.Post("/api/seats/reserve", seatHandler.Reserve)

	// POST /api/seats/release - Give a hold back early
	r.Post("/api/seats/release", seatHandler.Release)
}
