package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"safari-njema/internal/dto/request"
	"safari-njema/internal/usecase"
	"safari-njema/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SeatHandler struct {
	service usecase.SeatService
	log     *zap.Logger
}

func NewSeatHandler(service usecase.SeatService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		service: service,
		log:     log.With(zap.String("handler", "seat")),
	}
}

// GetStatus handles GET /api/seats/status/{tripId}
func (h *SeatHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")

	records, err := h.service.Status(r.Context(), tripID)
	if err != nil {
		handleServiceError(h.log, w, err, "get seat status")
		return
	}

	utils.ResponseSuccess(w, "", records)
}

// Reserve handles POST /api/seats/reserve
func (h *SeatHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req request.ReserveSeatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request data", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid request data", validationErrors)
		return
	}

	reservation, err := h.service.Reserve(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "reserve seats")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, utils.Response{
		Success:       true,
		Message:       "Seats reserved successfully",
		Data:          reservation,
		ReservedUntil: reservation.ReservedUntil.Format(time.RFC3339),
	})
}

// Release handles POST /api/seats/release
func (h *SeatHandler) Release(w http.ResponseWriter, r *http.Request) {
	var req request.ReleaseSeatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request data", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid request data", validationErrors)
		return
	}

	if err := h.service.Release(r.Context(), &req); err != nil {
		handleServiceError(h.log, w, err, "release seats")
		return
	}

	utils.ResponseSuccess(w, "Seats released successfully", nil)
}
