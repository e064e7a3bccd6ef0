package adaptor

import (
	"net/http"

	"safari-njema/internal/dto/request"
	"safari-njema/internal/usecase"
	"safari-njema/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetCities handles GET /api/cities
func (h *CatalogHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.Cities(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list cities")
		return
	}

	utils.ResponseSuccess(w, "", cities)
}

// SearchTrips handles GET /api/trips/search
func (h *CatalogHandler) SearchTrips(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	searchQuery := &request.TripSearchQuery{
		From: query.Get("from"),
		To:   query.Get("to"),
		Date: query.Get("date"),
	}

	if errs := utils.ValidateStruct(searchQuery); len(errs) > 0 {
		utils.ResponseBadRequest(w, "Missing required parameters: from, to, date", errs)
		return
	}

	trips, err := h.service.SearchTrips(r.Context(), searchQuery)
	if err != nil {
		handleServiceError(h.log, w, err, "search trips")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, utils.Response{
		Success:      true,
		Data:         trips,
		SearchParams: searchQuery,
	})
}

// GetTrip handles GET /api/trips/{tripId}
func (h *CatalogHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")

	trip, err := h.service.GetTrip(r.Context(), tripID)
	if err != nil {
		handleServiceError(h.log, w, err, "get trip")
		return
	}

	utils.ResponseSuccess(w, "", trip)
}

// GetRoutes handles GET /api/routes
func (h *CatalogHandler) GetRoutes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	routes, err := h.service.Routes(r.Context(), query.Get("from"), query.Get("to"))
	if err != nil {
		handleServiceError(h.log, w, err, "list routes")
		return
	}

	utils.ResponseSuccess(w, "", routes)
}
