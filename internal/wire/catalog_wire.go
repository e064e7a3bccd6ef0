package wire

import (
	"safari-njema/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /api/cities - List all cities
	r.Get("/api/cities", catalogHandler.GetCities)

	// GET /api/trips/search - Search trips by route and date
	r.Get("/api/trips/search", catalogHandler.SearchTrips)

	// GET /api/trips/{tripId} - Trip details
	r.Get("/api/trips/{tripId}", catalogHandler.GetTrip)

	// GET /api/routes - Route information
	r.Get("/api/routes", catalogHandler.GetRoutes)
}
